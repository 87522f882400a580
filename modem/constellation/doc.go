// Package constellation builds the mapping between K-bit patterns and symbol
// values for a fixed set of modulation schemes.
//
// A [Table] is an immutable arena of 2^K symbols indexed by the integer value
// of the bit pattern (most-significant bit first). The seven built-in tables
// are constructed once at package initialization from closed-form formulas
// (the 5G NR layouts of TS 38.211 section 5.1 without the normalization
// factor, BPSK simplified to a real antipodal pair) and may be shared freely
// between goroutines.
//
//	t := constellation.For(constellation.QAM16)
//	s := t.Symbol(0b1011)
package constellation
