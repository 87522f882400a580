// Package envelope computes power statistics of complex baseband signals,
// such as the peak-to-average power ratio of a shaped symbol burst.
package envelope

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds complex-envelope statistics.
//
//nolint:revive
type Stats struct {
	Length    int
	DC        complex128 // mean
	Energy    float64    // sum of |x|^2
	Power     float64    // energy / length
	Power_dB  float64
	RMS       float64
	Peak      float64 // max |x|
	PeakPos   int
	Peak_dB   float64
	PAPR      float64 // peak power / mean power (linear)
	PAPR_dB   float64
	Variance  float64 // mean |x - DC|^2
	Magnitude float64 // mean |x|
}

// powTodB converts a power ratio to decibels: 10 * log10(value).
// Returns -Inf for zero values.
func powTodB(value float64) float64 {
	if value <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(value)
}

func emptyStats() Stats {
	return Stats{
		Power_dB: math.Inf(-1),
		Peak_dB:  math.Inf(-1),
		PAPR_dB:  math.Inf(-1),
	}
}

// instantaneous returns |x|^2 for every sample.
func instantaneous(x []complex128) []float64 {
	re := make([]float64, len(x))
	im := make([]float64, len(x))
	for i, v := range x {
		re[i] = real(v)
		im[i] = imag(v)
	}
	out := make([]float64, len(x))
	vecmath.Power(out, re, im)
	return out
}

// Calculate computes all statistics of x.
func Calculate(x []complex128) Stats {
	n := len(x)
	if n == 0 {
		return emptyStats()
	}

	p := instantaneous(x)

	var (
		s       Stats
		sum     complex128
		sumMag  float64
		peakPow = -1.0
	)
	s.Length = n
	for i, v := range p {
		s.Energy += v
		sum += x[i]
		sumMag += math.Sqrt(v)
		if v > peakPow {
			peakPow = v
			s.PeakPos = i
		}
	}

	fn := float64(n)
	s.DC = sum / complex(fn, 0)
	s.Power = s.Energy / fn
	s.Power_dB = powTodB(s.Power)
	s.RMS = math.Sqrt(s.Power)
	s.Peak = math.Sqrt(peakPow)
	s.Peak_dB = powTodB(peakPow)
	s.Magnitude = sumMag / fn

	dcPow := real(s.DC)*real(s.DC) + imag(s.DC)*imag(s.DC)
	s.Variance = math.Max(s.Power-dcPow, 0)

	if s.Power > 0 {
		s.PAPR = peakPow / s.Power
		s.PAPR_dB = powTodB(s.PAPR)
	} else {
		s.PAPR_dB = math.Inf(-1)
	}

	return s
}

// MeanPower returns the average of |x|^2, or 0 for an empty signal.
func MeanPower(x []complex128) float64 {
	if len(x) == 0 {
		return 0
	}
	var e float64
	for _, v := range instantaneous(x) {
		e += v
	}
	return e / float64(len(x))
}

// PAPR returns the peak-to-average power ratio of x in dB.
// Returns -Inf for an empty or all-zero signal.
func PAPR(x []complex128) float64 {
	return Calculate(x).PAPR_dB
}

// StreamingStats accumulates envelope statistics across blocks.
type StreamingStats struct {
	length  int
	sum     complex128
	energy  float64
	sumMag  float64
	peakPow float64
	peakPos int
}

// NewStreamingStats creates an empty accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{peakPow: -1}
}

// Update adds a block of samples.
func (s *StreamingStats) Update(x []complex128) {
	for i, v := range instantaneous(x) {
		s.energy += v
		s.sum += x[i]
		s.sumMag += math.Sqrt(v)
		if v > s.peakPow {
			s.peakPow = v
			s.peakPos = s.length + i
		}
	}
	s.length += len(x)
}

// Result returns the statistics of all samples seen so far.
func (s *StreamingStats) Result() Stats {
	if s.length == 0 {
		return emptyStats()
	}

	fn := float64(s.length)
	out := Stats{
		Length:    s.length,
		DC:        s.sum / complex(fn, 0),
		Energy:    s.energy,
		Power:     s.energy / fn,
		Peak:      math.Sqrt(s.peakPow),
		PeakPos:   s.peakPos,
		Peak_dB:   powTodB(s.peakPow),
		Magnitude: s.sumMag / fn,
	}
	out.Power_dB = powTodB(out.Power)
	out.RMS = math.Sqrt(out.Power)
	dcPow := real(out.DC)*real(out.DC) + imag(out.DC)*imag(out.DC)
	out.Variance = math.Max(out.Power-dcPow, 0)
	if out.Power > 0 {
		out.PAPR = s.peakPow / out.Power
		out.PAPR_dB = powTodB(out.PAPR)
	} else {
		out.PAPR_dB = math.Inf(-1)
	}
	return out
}

// Reset clears all accumulated data.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{peakPow: -1}
}
