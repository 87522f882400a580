package bandwidth

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// Analysis collects the bandwidth estimates of one PSD.
type Analysis struct {
	// ThreeDB is the two-sided half-power bandwidth.
	ThreeDB float64
	// ZeroToZero is the main lobe width, or NaN when the scan found no zero.
	ZeroToZero float64
	// Containment is the alpha-containment bandwidth, or NaN when the grid
	// holds too little of the power above the peak.
	Containment float64
	// Alpha is the containment fraction used.
	Alpha float64
	// PeakFrequency is the frequency of the first PSD maximum.
	PeakFrequency float64
	// PeakDB is the PSD maximum in dB.
	PeakDB float64
	// TotalPower is sum(SS).
	TotalPower float64
}

// Analyze runs every estimator on the same spectrum. Invalid input is
// returned as an error; scans that run off the grid set the corresponding
// field to NaN instead.
func Analyze(ff, ss []float64, alpha float64) (Analysis, error) {
	if err := validate(ff, ss); err != nil {
		return Analysis{}, err
	}
	if !(alpha > 0 && alpha < 1) {
		return Analysis{}, ErrAlpha
	}

	a := Analysis{Alpha: alpha}
	peak := argmax(ss)
	a.PeakFrequency = ff[peak]
	a.PeakDB = core.LinearPowerToDB(ss[peak])
	for _, v := range ss {
		a.TotalPower += v
	}

	var err error
	if a.ThreeDB, err = ThreeDB(ff, ss); err != nil {
		return Analysis{}, err
	}
	if a.ZeroToZero, err = ZeroToZero(ff, ss); err != nil {
		if !errors.Is(err, core.ErrOutOfRange) {
			return Analysis{}, err
		}
		a.ZeroToZero = math.NaN()
	}
	if a.Containment, err = Containment(ff, ss, alpha); err != nil {
		if !errors.Is(err, core.ErrOutOfRange) {
			return Analysis{}, err
		}
		a.Containment = math.NaN()
	}
	return a, nil
}
