// Package mapping converts between bit sequences and constellation symbol
// sequences.
//
// [Modulate] groups bits K at a time (most-significant bit first) and looks
// the resulting key up in a [constellation.Table]. [Demodulate] makes a hard
// minimum-distance decision per symbol and expands the winning key back into
// K bits. For long sequences a [Demodulator] splits the work into contiguous
// blocks decided on a bounded goroutine pool; its output is identical to the
// sequential function.
package mapping
