package bandwidth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// ZeroThreshold is the fraction of the peak below which a PSD sample counts
// as a zero for ZeroToZero.
const ZeroThreshold = 1e-4

// Errors returned by the estimators.
var (
	ErrEmpty          = fmt.Errorf("bandwidth: %w: empty spectrum", core.ErrInvalidInput)
	ErrLengthMismatch = fmt.Errorf("bandwidth: %w: frequency grid and PSD lengths differ", core.ErrInvalidInput)
	ErrAlpha          = fmt.Errorf("bandwidth: %w: alpha must satisfy 0 < alpha < 1", core.ErrInvalidInput)
	ErrScanExhausted  = fmt.Errorf("bandwidth: %w: scan reached the end of the spectrum", core.ErrOutOfRange)
)

func validate(ff, ss []float64) error {
	if len(ff) == 0 || len(ss) == 0 {
		return ErrEmpty
	}
	if len(ff) != len(ss) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(ff), len(ss))
	}
	return nil
}

// argmax returns the index of the first maximum.
func argmax(ss []float64) int {
	loc := 0
	for i, v := range ss {
		if v > ss[loc] {
			loc = i
		}
	}
	return loc
}

// ThreeDB returns 2|ff[i]| for the index i minimizing |SS[i] - peak/2|.
// The first minimizing index wins, so for an even PSD on a symmetric grid the
// negative-frequency crossing is used.
func ThreeDB(ff, ss []float64) (float64, error) {
	if err := validate(ff, ss); err != nil {
		return 0, err
	}

	half := 0.5 * ss[argmax(ss)]
	loc := 0
	best := math.Inf(1)
	for i, v := range ss {
		if d := math.Abs(v - half); d < best {
			loc, best = i, d
		}
	}
	return 2 * math.Abs(ff[loc]), nil
}

// ZeroToZero scans upward from the peak until SS drops to ZeroThreshold times
// the peak and returns twice the absolute frequency of that sample.
func ZeroToZero(ff, ss []float64) (float64, error) {
	if err := validate(ff, ss); err != nil {
		return 0, err
	}

	peakLoc := argmax(ss)
	peak := ss[peakLoc]
	loc := peakLoc
	for ss[loc] > ZeroThreshold*peak {
		loc++
		if loc == len(ss) {
			return 0, fmt.Errorf("%w: no zero above index %d", ErrScanExhausted, peakLoc)
		}
	}
	return 2 * math.Abs(ff[loc]), nil
}

// Containment returns the two-sided bandwidth holding a fraction alpha of the
// total power sum(SS). Half of the peak sample is credited to each side; the
// scan then accumulates samples above the peak until half of alpha*P is
// reached and reports the frequency one sample past the last one added.
func Containment(ff, ss []float64, alpha float64) (float64, error) {
	if err := validate(ff, ss); err != nil {
		return 0, err
	}
	if !(alpha > 0 && alpha < 1) {
		return 0, fmt.Errorf("%w: %v", ErrAlpha, alpha)
	}

	total := 0.0
	for _, v := range ss {
		total += v
	}

	peakLoc := argmax(ss)
	acc := ss[peakLoc] / 2
	loc := peakLoc + 1
	target := alpha * total / 2
	for acc < target {
		if loc >= len(ss) {
			return 0, fmt.Errorf("%w: %.3g of %.3g accumulated", ErrScanExhausted, acc, target)
		}
		acc += ss[loc]
		loc++
	}
	if loc >= len(ss) {
		return 0, fmt.Errorf("%w: band edge beyond last sample", ErrScanExhausted)
	}
	return 2 * math.Abs(ff[loc]), nil
}
