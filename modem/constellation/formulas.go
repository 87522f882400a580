package constellation

import (
	"math"
	"math/cmplx"
)

// SymbolFunc maps a fixed-length bit vector (MSB first) to a symbol.
type SymbolFunc func(b []uint8) complex128

// anti maps a bit to the antipodal level 1-2b.
func anti(b uint8) float64 {
	return 1 - 2*float64(b)
}

func bpskSymbol(b []uint8) complex128 {
	return complex(anti(b[0]), 0)
}

func qpskSymbol(b []uint8) complex128 {
	return complex(anti(b[0]), anti(b[1]))
}

func qam16Symbol(b []uint8) complex128 {
	return complex(
		anti(b[0])*(2-anti(b[2])),
		anti(b[1])*(2-anti(b[3])),
	)
}

func qam64Symbol(b []uint8) complex128 {
	return complex(
		anti(b[0])*(4-anti(b[2])*(2-anti(b[4]))),
		anti(b[1])*(4-anti(b[3])*(2-anti(b[5]))),
	)
}

func pam4Symbol(b []uint8) complex128 {
	return complex(anti(b[0])*(2-anti(b[1])), 0)
}

func pam8Symbol(b []uint8) complex128 {
	return complex(anti(b[0])*(4-anti(b[1])*(2-anti(b[2]))), 0)
}

// psk8Symbol places the odd multiples of pi/8 produced by the 8PAM formula
// on the unit circle.
func psk8Symbol(b []uint8) complex128 {
	level := real(pam8Symbol(b))
	return cmplx.Exp(complex(0, math.Pi/8*level))
}
