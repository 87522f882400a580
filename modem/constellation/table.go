package constellation

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/modem/bits"
)

// MaxBitsPerSymbol bounds the table size accepted by [Build].
const MaxBitsPerSymbol = 16

// Errors returned when constructing tables.
var (
	ErrBitsPerSymbol = fmt.Errorf("constellation: %w: bits per symbol out of range", core.ErrInvalidInput)
	ErrTableSize     = fmt.Errorf("constellation: %w: table size is not a power of two", core.ErrInvalidInput)
	ErrUnknownScheme = fmt.Errorf("constellation: %w: unknown scheme", core.ErrInvalidInput)
	ErrNilSymbolFunc = fmt.Errorf("constellation: %w: nil symbol function", core.ErrInvalidInput)
)

// Table maps every key in [0, 2^K) to a symbol. Tables are immutable.
type Table struct {
	name   string
	k      int
	points []complex128
}

// Build evaluates fn on the K-bit pattern of every key n in [0, 2^K) and
// stores the result under n.
func Build(k int, fn SymbolFunc) (*Table, error) {
	if k < 1 || k > MaxBitsPerSymbol {
		return nil, fmt.Errorf("%w: %d", ErrBitsPerSymbol, k)
	}
	if fn == nil {
		return nil, ErrNilSymbolFunc
	}

	points := make([]complex128, 1<<k)
	pattern := make([]uint8, k)
	for n := range points {
		bits.PutInt(pattern, n)
		points[n] = fn(pattern)
	}
	return &Table{k: k, points: points}, nil
}

// New builds a table from explicit points, where points[n] is the symbol of
// key n. len(points) must be a power of two of at least 2.
func New(points []complex128) (*Table, error) {
	k, ok := core.Log2Exact(len(points))
	if !ok || k == 0 {
		return nil, fmt.Errorf("%w: %d", ErrTableSize, len(points))
	}
	if k > MaxBitsPerSymbol {
		return nil, fmt.Errorf("%w: %d", ErrBitsPerSymbol, k)
	}
	return &Table{k: k, points: append([]complex128(nil), points...)}, nil
}

// Name returns the scheme name for built-in tables and "" otherwise.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of symbols, 2^K.
func (t *Table) Len() int {
	return len(t.points)
}

// BitsPerSymbol returns K.
func (t *Table) BitsPerSymbol() int {
	return t.k
}

// Symbol returns the symbol stored under key. It panics if key is outside
// [0, Len()).
func (t *Table) Symbol(key int) complex128 {
	return t.points[key]
}

// Points returns a copy of the symbols in key order.
func (t *Table) Points() []complex128 {
	return append([]complex128(nil), t.points...)
}

// IsReal reports whether every symbol has a zero imaginary part.
func (t *Table) IsReal() bool {
	for _, p := range t.points {
		if imag(p) != 0 {
			return false
		}
	}
	return true
}

// AverageEnergy returns the mean of |s|^2 over all symbols.
func (t *Table) AverageEnergy() float64 {
	sum := 0.0
	for _, p := range t.points {
		sum += real(p)*real(p) + imag(p)*imag(p)
	}
	return sum / float64(len(t.points))
}

// MaxAmplitude returns the largest |s| in the table.
func (t *Table) MaxAmplitude() float64 {
	m := 0.0
	for _, p := range t.points {
		m = math.Max(m, cmplx.Abs(p))
	}
	return m
}

// MinDistance returns the smallest Euclidean distance between two distinct
// keys. A zero result means the mapping is not injective.
func (t *Table) MinDistance() float64 {
	m := math.Inf(1)
	for i := range t.points {
		for j := i + 1; j < len(t.points); j++ {
			m = math.Min(m, cmplx.Abs(t.points[i]-t.points[j]))
		}
	}
	return m
}

var builtin = func() [len(schemes)]*Table {
	var tables [len(schemes)]*Table
	for s, info := range schemes {
		t, err := Build(info.bits, info.symbol)
		if err != nil {
			panic(fmt.Sprintf("constellation: building %s: %v", info.name, err))
		}
		t.name = info.name
		tables[s] = t
	}
	return tables
}()

// For returns the pre-built table of scheme s, or nil for an unknown scheme.
func For(s Scheme) *Table {
	if !s.valid() {
		return nil
	}
	return builtin[s]
}

// Lookup resolves a scheme name and returns its table.
func Lookup(name string) (*Table, error) {
	s, err := ParseScheme(name)
	if err != nil {
		return nil, err
	}
	return For(s), nil
}

// Tables returns the pre-built tables in [Schemes] order.
func Tables() []*Table {
	out := make([]*Table, 0, len(builtin))
	for _, s := range Schemes() {
		out = append(out, For(s))
	}
	return out
}
