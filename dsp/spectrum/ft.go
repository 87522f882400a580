package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// Errors returned by the transform helpers.
var (
	ErrPulseTooLong      = fmt.Errorf("spectrum: %w: pulse longer than transform length", core.ErrInvalidInput)
	ErrInvalidSize       = fmt.Errorf("spectrum: %w: transform length must be > 0", core.ErrInvalidInput)
	ErrInvalidSampleRate = fmt.Errorf("spectrum: %w: sample rate must be > 0", core.ErrInvalidInput)
)

// NumericalFT approximates the continuous-time Fourier transform of the
// samples p taken at rate fs.
//
// p is zero-padded to n points, transformed with an n-point DFT, shifted so
// that index 0 corresponds to -fs/2 and scaled by 1/fs. The frequency
// resolution is fs/n; see [Frequencies] for the grid. n should be a power of
// two, other lengths fall back to a direct O(n^2) DFT.
func NumericalFT(p []float64, fs float64, n int) ([]complex128, error) {
	if err := validateFT(len(p), fs, n); err != nil {
		return nil, err
	}
	return numericalFT(core.ToComplex(p), fs, n)
}

// NumericalFTComplex is [NumericalFT] for complex sample streams.
func NumericalFTComplex(x []complex128, fs float64, n int) ([]complex128, error) {
	if err := validateFT(len(x), fs, n); err != nil {
		return nil, err
	}
	return numericalFT(x, fs, n)
}

func validateFT(length int, fs float64, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if !(fs > 0) || math.IsInf(fs, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, fs)
	}
	if length > n {
		return fmt.Errorf("%w: %d > %d", ErrPulseTooLong, length, n)
	}
	return nil
}

func numericalFT(x []complex128, fs float64, n int) ([]complex128, error) {
	padded := make([]complex128, n)
	copy(padded, x)

	bins, err := DFT(padded)
	if err != nil {
		return nil, err
	}

	out := FFTShift(bins)
	scale := complex(1/fs, 0)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

// DFT returns the unnormalized discrete Fourier transform of x.
// Power-of-two lengths use an algo-fft plan.
func DFT(x []complex128) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	out := make([]complex128, n)
	if !core.IsPowerOfTwo(n) {
		directDFT(out, x)
		return out, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}
	if err := plan.Forward(out, x); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	return out, nil
}

func directDFT(dst, x []complex128) {
	n := len(x)
	for k := range dst {
		var acc complex128
		for i, v := range x {
			// Reduce the phase index first to keep the angle small.
			idx := (k * i) % n
			acc += v * cmplx.Exp(complex(0, -2*math.Pi*float64(idx)/float64(n)))
		}
		dst[k] = acc
	}
}

// FFTShift returns a copy of x rotated so that the zero-frequency bin moves
// to index len(x)/2.
func FFTShift[T any](x []T) []T {
	n := len(x)
	out := make([]T, n)
	half := n / 2
	for i, v := range x {
		out[(i+half)%n] = v
	}
	return out
}

// Frequencies returns the frequency grid of an n-point shifted spectrum at
// sample rate fs: f[k] = (k - n/2) * fs/n. For even n, f[0] = -fs/2.
func Frequencies(fs float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	df := fs / float64(n)
	half := n / 2
	out := make([]float64, n)
	for k := range out {
		out[k] = float64(k-half) * df
	}
	return out
}

// PSD returns the frequency grid and |NumericalFT(p, fs, n)|^2.
func PSD(p []float64, fs float64, n int) (ff, ss []float64, err error) {
	bins, err := NumericalFT(p, fs, n)
	if err != nil {
		return nil, nil, err
	}
	return Frequencies(fs, n), Power(bins), nil
}
