package bits

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// Tolerance is the absolute difference above which two samples disagree.
const Tolerance = 1e-15

// ErrLengthMismatch is returned when tx and rx differ in length.
var ErrLengthMismatch = fmt.Errorf("bits: %w: sequence length mismatch", core.ErrInvalidInput)

// CountErrors returns the number of positions where |rx[i] - tx[i]| > Tolerance.
func CountErrors(tx, rx []float64) (int, error) {
	if len(tx) != len(rx) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(tx), len(rx))
	}
	n := 0
	for i := range tx {
		if math.Abs(rx[i]-tx[i]) > Tolerance {
			n++
		}
	}
	return n, nil
}

// CountSymbolErrors is [CountErrors] for complex symbol sequences.
func CountSymbolErrors(tx, rx []complex128) (int, error) {
	if len(tx) != len(rx) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(tx), len(rx))
	}
	n := 0
	for i := range tx {
		if cmplx.Abs(rx[i]-tx[i]) > Tolerance {
			n++
		}
	}
	return n, nil
}

// CountBitErrors returns the number of differing bits.
func CountBitErrors(tx, rx []uint8) (int, error) {
	if len(tx) != len(rx) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(tx), len(rx))
	}
	n := 0
	for i := range tx {
		if tx[i] != rx[i] {
			n++
		}
	}
	return n, nil
}

// ToFloat widens a bit sequence for use with [CountErrors].
func ToFloat(bits []uint8) []float64 {
	out := make([]float64, len(bits))
	for i, b := range bits {
		out[i] = float64(b)
	}
	return out
}
