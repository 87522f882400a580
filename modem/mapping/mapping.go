package mapping

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/modem/bits"
	"github.com/cwbudde/algo-comms/modem/constellation"
)

// Errors returned by the mapping functions.
var (
	ErrBitCount   = fmt.Errorf("mapping: %w: bit count not divisible by bits-per-symbol", core.ErrInvalidInput)
	ErrInvalidBit = fmt.Errorf("mapping: %w: bit value not in {0,1}", core.ErrInvalidInput)
	ErrNilTable   = fmt.Errorf("mapping: %w: nil constellation table", core.ErrInvalidInput)
)

// Modulate maps every group of K bits to the symbol stored under the group's
// integer value. The output has len(b)/K symbols.
func Modulate(b []uint8, t *constellation.Table) ([]complex128, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	k := t.BitsPerSymbol()
	if len(b)%k != 0 {
		return nil, fmt.Errorf("%w: %d bits, K = %d", ErrBitCount, len(b), k)
	}

	out := make([]complex128, len(b)/k)
	for i := range out {
		group := b[i*k : (i+1)*k]
		for j, v := range group {
			if v > 1 {
				return nil, fmt.Errorf("%w: bits[%d] = %d", ErrInvalidBit, i*k+j, v)
			}
		}
		out[i] = t.Symbol(bits.ToInt(group))
	}
	return out, nil
}

// Decide returns the key whose symbol is closest to s. Keys are scanned in
// ascending order and only a strictly smaller distance replaces the current
// best, so ties resolve to the lowest key. A NaN input resolves to key 0.
func Decide(s complex128, t *constellation.Table) int {
	best := 0
	bestDist := math.Inf(1)
	for key := 0; key < t.Len(); key++ {
		if d := cmplx.Abs(s - t.Symbol(key)); d < bestDist {
			best, bestDist = key, d
		}
	}
	return best
}

// Keys returns the hard-decision key of every symbol.
func Keys(symbols []complex128, t *constellation.Table) []int {
	out := make([]int, len(symbols))
	for i, s := range symbols {
		out[i] = Decide(s, t)
	}
	return out
}

// Demodulate decides every symbol and expands the keys into len(symbols)*K
// bits. t must not be nil.
func Demodulate(symbols []complex128, t *constellation.Table) []uint8 {
	k := t.BitsPerSymbol()
	out := make([]uint8, len(symbols)*k)
	demodulateTo(out, symbols, t)
	return out
}

func demodulateTo(dst []uint8, symbols []complex128, t *constellation.Table) {
	k := t.BitsPerSymbol()
	for i, s := range symbols {
		bits.PutInt(dst[i*k:(i+1)*k], Decide(s, t))
	}
}
