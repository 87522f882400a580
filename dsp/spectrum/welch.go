package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/dsp/window"
)

// ErrSignalTooShort is returned by Welch when the signal does not fill one segment.
var ErrSignalTooShort = fmt.Errorf("spectrum: %w: signal shorter than one segment", core.ErrInvalidInput)

// Welch estimates the two-sided power spectral density of x by averaging the
// periodograms of windowed segments of the given length, hopping by half a
// segment. Samples past the last full segment are ignored.
//
// The result is shifted like [PSD] and scaled as power per Hz, so
// sum(ss)*fs/segment is the mean power of x for any window.
func Welch(x []complex128, fs float64, segment int, win window.Type) (ff, ss []float64, err error) {
	if err := validateFT(0, fs, segment); err != nil {
		return nil, nil, err
	}
	if len(x) < segment {
		return nil, nil, fmt.Errorf("%w: %d < %d", ErrSignalTooShort, len(x), segment)
	}

	coeffs, err := window.Generate(win, segment, window.WithPeriodic())
	if err != nil {
		return nil, nil, err
	}

	hop := max(segment/2, 1)
	count := 1 + (len(x)-segment)/hop
	acc := make([]float64, segment)
	block := make([]complex128, segment)

	for s := 0; s < count; s++ {
		start := s * hop
		if err := window.ApplyComplexTo(block, x[start:start+segment], coeffs); err != nil {
			return nil, nil, err
		}
		bins, err := DFT(block)
		if err != nil {
			return nil, nil, err
		}
		for k, p := range Power(bins) {
			acc[k] += p
		}
	}

	scale := 1 / (fs * window.PowerSum(coeffs) * float64(count))
	for k := range acc {
		acc[k] *= scale
	}
	return Frequencies(fs, segment), FFTShift(acc), nil
}
