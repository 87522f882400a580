package pulse

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// Type identifies a pulse shape.
type Type int

const (
	TypeRect Type = iota
	TypeHalfSine
	TypeSineSquared
)

// Errors returned by the pulse generators.
var (
	ErrSamplesPerSymbol = fmt.Errorf("pulse: %w: samples per symbol must be > 0", core.ErrInvalidInput)
	ErrSampleRate       = fmt.Errorf("pulse: %w: sample rate must be > 0", core.ErrInvalidInput)
	ErrUnknownType      = fmt.Errorf("pulse: %w: unknown pulse type", core.ErrInvalidInput)
)

var typeNames = map[Type]string{
	TypeRect:        "rect",
	TypeHalfSine:    "half-sine",
	TypeSineSquared: "sine-squared",
}

// String returns the canonical pulse name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Types lists all pulse shapes.
func Types() []Type {
	return []Type{TypeRect, TypeHalfSine, TypeSineSquared}
}

// ParseType resolves a pulse name. Matching ignores case, and "-", "_" and
// spaces are treated as equivalent.
func ParseType(name string) (Type, error) {
	norm := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(name)))
	switch norm {
	case "rect", "rectangular":
		return TypeRect, nil
	case "half-sine", "halfsine":
		return TypeHalfSine, nil
	case "sine-squared", "sinesquared", "sin2":
		return TypeSineSquared, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Option configures pulse generation.
type Option func(*config)

type config struct {
	sampleRate float64
}

func defaultConfig() config {
	return config{sampleRate: 1}
}

// WithSampleRate scales the pulse like samples of a continuous-time pulse
// taken at rate fs.
func WithSampleRate(fs float64) Option {
	return func(c *config) {
		c.sampleRate = fs
	}
}

// Generate returns fsT samples of the selected pulse.
func Generate(t Type, fsT int, opts ...Option) ([]float64, error) {
	if fsT <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSamplesPerSymbol, fsT)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fs := cfg.sampleRate
	if !(fs > 0) || math.IsInf(fs, 0) {
		return nil, fmt.Errorf("%w: %v", ErrSampleRate, fs)
	}

	n := float64(fsT)
	out := make([]float64, fsT)

	switch t {
	case TypeRect:
		amp := math.Sqrt(fs / n)
		for i := range out {
			out[i] = amp
		}
	case TypeHalfSine:
		amp := math.Sqrt(2 * fs / n)
		for i := range out {
			out[i] = amp * math.Sin(math.Pi*float64(i)/n)
		}
	case TypeSineSquared:
		amp := math.Sqrt(8 * fs / (3 * n))
		for i := range out {
			s := math.Sin(math.Pi * float64(i) / n)
			out[i] = amp * s * s
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	return out, nil
}

// SineSquared returns the pulse sqrt(8*fs/(3*fsT)) * sin^2(pi*n/fsT).
func SineSquared(fsT int, opts ...Option) ([]float64, error) {
	return Generate(TypeSineSquared, fsT, opts...)
}

// Rect returns the rectangular pulse sqrt(fs/fsT).
func Rect(fsT int, opts ...Option) ([]float64, error) {
	return Generate(TypeRect, fsT, opts...)
}

// HalfSine returns the pulse sqrt(2*fs/fsT) * sin(pi*n/fsT).
func HalfSine(fsT int, opts ...Option) ([]float64, error) {
	return Generate(TypeHalfSine, fsT, opts...)
}

// Energy returns sum(p[n]^2) / fs, the energy of the continuous-time pulse
// that p samples at rate fs. For fs=1 it is the discrete-time energy.
func Energy(p []float64, fs float64) float64 {
	if len(p) == 0 || fs <= 0 {
		return 0
	}

	sq := make([]float64, len(p))
	vecmath.MulBlock(sq, p, p)

	sum := 0.0
	for _, v := range sq {
		sum += v
	}
	return sum / fs
}
