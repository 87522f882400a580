// Package bits converts between integers, bytes, strings and bit sequences,
// produces deterministic random bit sequences, and counts disagreements
// between transmitted and received sequences.
//
// Bit sequences are []uint8 holding 0 or 1, most-significant bit first.
package bits
