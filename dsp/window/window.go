package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
)

// Errors returned by the window functions.
var (
	ErrLength         = fmt.Errorf("window: %w: length must be > 0", core.ErrInvalidInput)
	ErrUnknownType    = fmt.Errorf("window: %w: unknown window type", core.ErrInvalidInput)
	ErrLengthMismatch = fmt.Errorf("window: %w: samples and coefficients differ in length", core.ErrInvalidInput)
	ErrZeroGain       = fmt.Errorf("window: %w: coherent gain is zero", core.ErrInvalidInput)
)

type shape struct {
	name   string
	coeffs []float64
}

var shapes = [...]shape{
	TypeRectangular:    {"rectangular", []float64{1}},
	TypeHann:           {"hann", []float64{0.5, 0.5}},
	TypeHamming:        {"hamming", []float64{0.54, 0.46}},
	TypeBlackman:       {"blackman", []float64{0.42, 0.5, 0.08}},
	TypeBlackmanHarris: {"blackman-harris", []float64{0.35875, 0.48829, 0.14128, 0.01168}},
}

func (t Type) valid() bool { return t >= 0 && int(t) < len(shapes) }

// String returns the lower-case window name.
func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return shapes[t].name
}

// Types lists every window type.
func Types() []Type {
	return []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeBlackmanHarris}
}

// ParseType resolves a window by name, ignoring case.
func ParseType(name string) (Type, error) {
	for t, s := range shapes {
		if strings.EqualFold(name, s.name) {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

type config struct {
	periodic bool
}

// Option configures window generation.
type Option func(*config)

// WithPeriodic selects the periodic form, whose N-point DFT has exact
// cosine-sum bins.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns n window coefficients.
func Generate(t Type, n int, opts ...Option) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrLength, n)
	}
	if !t.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	denom := float64(n - 1)
	if cfg.periodic || n == 1 {
		denom = float64(n)
	}

	a := shapes[t].coeffs
	out := make([]float64, n)
	for i := range out {
		x := 2 * math.Pi * float64(i) / denom
		v, sign := 0.0, 1.0
		for k, ak := range a {
			v += sign * ak * math.Cos(float64(k)*x)
			sign = -sign
		}
		out[i] = v
	}
	return out, nil
}

// Apply returns samples multiplied by coeffs.
func Apply(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(samples), len(coeffs))
	}
	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)
	return out, nil
}

// ApplyComplexTo writes samples[i]*coeffs[i] into dst. All three slices must
// have the same length.
func ApplyComplexTo(dst, samples []complex128, coeffs []float64) error {
	if len(samples) != len(coeffs) || len(dst) != len(samples) {
		return fmt.Errorf("%w: %d/%d vs %d", ErrLengthMismatch, len(dst), len(samples), len(coeffs))
	}
	for i, s := range samples {
		dst[i] = complex(real(s)*coeffs[i], imag(s)*coeffs[i])
	}
	return nil
}

// PowerSum returns sum(w[n]^2), the normalization of a windowed periodogram.
func PowerSum(coeffs []float64) float64 {
	sum := 0.0
	for _, c := range coeffs {
		sum += c * c
	}
	return sum
}

// EquivalentNoiseBandwidth returns the ENBW in bins:
// N * sum(w^2) / sum(w)^2.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, ErrLength
	}
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	if sum == 0 {
		return 0, ErrZeroGain
	}
	return float64(len(coeffs)) * PowerSum(coeffs) / (sum * sum), nil
}
