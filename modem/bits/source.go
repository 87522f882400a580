package bits

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// ErrLength is returned when a negative sequence length is requested.
var ErrLength = fmt.Errorf("bits: %w: length must be >= 0", core.ErrInvalidInput)

// Source produces deterministic pseudo-random bit sequences.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// Option configures a Source.
type Option func(*Source)

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(s *Source) {
		s.seed = seed
	}
}

// NewSource creates a bit source. The default seed is 1.
func NewSource(opts ...Option) *Source {
	s := &Source{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	return s
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Reset rewinds the source to the start of its sequence.
func (s *Source) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
}

// Bits returns the next n bits of the sequence.
func (s *Source) Bits(n int) ([]uint8, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrLength, n)
	}
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8(s.rng.Intn(2))
	}
	return out, nil
}
