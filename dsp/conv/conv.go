package conv

import (
	"fmt"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = fmt.Errorf("conv: %w: empty input", core.ErrInvalidInput)
	ErrEmptyKernel      = fmt.Errorf("conv: %w: empty kernel", core.ErrInvalidInput)
	ErrLengthMismatch   = fmt.Errorf("conv: %w: buffer length mismatch", core.ErrInvalidInput)
	ErrInvalidBlockSize = fmt.Errorf("conv: %w: invalid block size", core.ErrInvalidInput)
)

// directThreshold is the longest kernel convolved in the time domain by the
// auto-selecting functions.
const directThreshold = 64

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm suitable for short kernels.
// For longer kernels, use FFT-based methods like OverlapAdd.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	core.Zero(dst)

	m := len(b)
	for i, x := range a {
		if x == 0 {
			continue
		}
		out := dst[i : i+m]
		for j, h := range b {
			out[j] += x * h
		}
	}
}

// DirectComplex is the complex-valued counterpart of [Direct].
func DirectComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]complex128, len(a)+len(b)-1)
	DirectComplexTo(result, a, b)
	return result, nil
}

// DirectComplexTo performs direct complex convolution into dst, which must
// have length len(a) + len(b) - 1.
func DirectComplexTo(dst, a, b []complex128) {
	core.Zero(dst)

	m := len(b)
	for i, x := range a {
		if x == 0 {
			continue
		}
		out := dst[i : i+m]
		for j, h := range b {
			out[j] += x * h
		}
	}
}

// Convolve performs linear convolution with automatic algorithm selection.
// For short kernels (<= 64 samples), uses direct convolution.
// For longer kernels, uses FFT-based overlap-add.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	// Convolution commutes; keep the shorter sequence as the kernel.
	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	oa, err := NewOverlapAdd(core.ToComplex(b), 0)
	if err != nil {
		return nil, err
	}
	return oa.ProcessReal(a)
}

// ConvolveComplex performs complex linear convolution with the same algorithm
// selection as [Convolve].
func ConvolveComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return DirectComplex(a, b)
	}

	return OverlapAddConvolve(a, b)
}
