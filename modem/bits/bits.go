package bits

import (
	"fmt"
	"unicode/utf8"

	"github.com/cwbudde/algo-comms/dsp/core"
)

// Errors returned by the conversion helpers.
var (
	ErrInvalidBit    = fmt.Errorf("bits: %w: bit value not in {0,1}", core.ErrInvalidInput)
	ErrByteAlignment = fmt.Errorf("bits: %w: bit count not divisible by 8", core.ErrInvalidInput)
)

// FromInt returns the k-bit binary representation of n, most-significant bit
// first. Bits of n above position k are dropped.
func FromInt(n, k int) []uint8 {
	if k <= 0 {
		return nil
	}
	out := make([]uint8, k)
	PutInt(out, n)
	return out
}

// PutInt writes the len(dst)-bit representation of n into dst, MSB first.
func PutInt(dst []uint8, n int) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = uint8(n & 1)
		n >>= 1
	}
}

// ToInt interprets bits as an unsigned integer, most-significant bit first.
// Values other than 0 and 1 have only their lowest bit considered; use
// [Validate] first when the input is untrusted.
func ToInt(bits []uint8) int {
	n := 0
	for _, b := range bits {
		n = n<<1 | int(b&1)
	}
	return n
}

// Validate returns ErrInvalidBit if any element is neither 0 nor 1.
func Validate(bits []uint8) error {
	for i, b := range bits {
		if b > 1 {
			return fmt.Errorf("%w: bits[%d] = %d", ErrInvalidBit, i, b)
		}
	}
	return nil
}

// FromBytes unpacks every byte into 8 bits, MSB first.
func FromBytes(data []byte) []uint8 {
	out := make([]uint8, len(data)*8)
	for i, b := range data {
		PutInt(out[i*8:(i+1)*8], int(b))
	}
	return out
}

// ToBytes packs groups of 8 bits, MSB first. len(bits) must be a multiple of 8.
func ToBytes(bits []uint8) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits", ErrByteAlignment, len(bits))
	}
	if err := Validate(bits); err != nil {
		return nil, err
	}

	out := make([]byte, len(bits)/8)
	for i := range out {
		out[i] = byte(ToInt(bits[i*8 : (i+1)*8]))
	}
	return out, nil
}

// FromString returns the bits of the UTF-8 encoding of s.
func FromString(s string) []uint8 {
	return FromBytes([]byte(s))
}

// ToString decodes bits as UTF-8 text. Invalid sequences are replaced with
// U+FFFD, so corrupted bits still produce a printable string.
func ToString(bits []uint8) (string, error) {
	data, err := ToBytes(bits)
	if err != nil {
		return "", err
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	out := make([]rune, 0, len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		out = append(out, r)
		data = data[size:]
	}
	return string(out), nil
}
