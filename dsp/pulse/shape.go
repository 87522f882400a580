package pulse

import (
	"fmt"

	"github.com/cwbudde/algo-comms/dsp/conv"
	"github.com/cwbudde/algo-comms/dsp/core"
)

// Errors returned by the shaping functions.
var (
	ErrEmptySymbols = fmt.Errorf("pulse: %w: empty symbol sequence", core.ErrInvalidInput)
	ErrEmptyPulse   = fmt.Errorf("pulse: %w: empty pulse", core.ErrInvalidInput)
)

func validateShape(numSymbols, pulseLen, fsT int) error {
	if numSymbols == 0 {
		return ErrEmptySymbols
	}
	if pulseLen == 0 {
		return ErrEmptyPulse
	}
	if fsT <= 0 {
		return fmt.Errorf("%w: %d", ErrSamplesPerSymbol, fsT)
	}
	return nil
}

// Upsample places symbol k at index k*fsT of a zero buffer of length
// (len(symbols)-1)*fsT + 1. No trailing zeros are appended.
func Upsample[T core.Sample](symbols []T, fsT int) []T {
	if len(symbols) == 0 || fsT <= 0 {
		return nil
	}

	out := make([]T, (len(symbols)-1)*fsT+1)
	for k, s := range symbols {
		out[k*fsT] = s
	}
	return out
}

// Shape upsamples symbols by fsT and convolves the result with the real pulse p.
// The output has length (len(symbols)-1)*fsT + len(p).
func Shape(symbols []complex128, p []float64, fsT int) ([]complex128, error) {
	if err := validateShape(len(symbols), len(p), fsT); err != nil {
		return nil, err
	}
	return conv.ConvolveComplex(Upsample(symbols, fsT), core.ToComplex(p))
}

// ShapeComplex is [Shape] for complex-valued pulses.
func ShapeComplex(symbols, p []complex128, fsT int) ([]complex128, error) {
	if err := validateShape(len(symbols), len(p), fsT); err != nil {
		return nil, err
	}
	return conv.ConvolveComplex(Upsample(symbols, fsT), p)
}

// ShapeReal is [Shape] for real-valued symbol sequences such as PAM.
func ShapeReal(symbols, p []float64, fsT int) ([]float64, error) {
	if err := validateShape(len(symbols), len(p), fsT); err != nil {
		return nil, err
	}
	return conv.Convolve(Upsample(symbols, fsT), p)
}
