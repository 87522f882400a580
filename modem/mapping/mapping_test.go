package mapping

import (
	"errors"
	"math"
	"math/cmplx"
	"slices"
	"testing"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/modem/bits"
	"github.com/cwbudde/algo-comms/modem/constellation"
)

func randomBits(t *testing.T, seed int64, n int) []uint8 {
	t.Helper()
	b, err := bits.NewSource(bits.WithSeed(seed)).Bits(n)
	if err != nil {
		t.Fatalf("Bits(%d): %v", n, err)
	}
	return b
}

func TestModulateKnownSymbols(t *testing.T) {
	qpsk := constellation.For(constellation.QPSK)
	got, err := Modulate([]uint8{0, 0, 0, 1, 1, 0, 1, 1}, qpsk)
	if err != nil {
		t.Fatalf("Modulate: %v", err)
	}
	want := []complex128{1 + 1i, 1 - 1i, -1 + 1i, -1 - 1i}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestModulateValidation(t *testing.T) {
	qam16 := constellation.For(constellation.QAM16)

	_, err := Modulate(make([]uint8, 6), qam16)
	if !errors.Is(err, ErrBitCount) || !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrBitCount", err)
	}

	_, err = Modulate([]uint8{0, 1, 2, 0}, qam16)
	if !errors.Is(err, ErrInvalidBit) {
		t.Fatalf("err = %v, want ErrInvalidBit", err)
	}

	if _, err := Modulate([]uint8{0}, nil); !errors.Is(err, ErrNilTable) {
		t.Fatalf("err = %v, want ErrNilTable", err)
	}
}

func TestModulateEmpty(t *testing.T) {
	got, err := Modulate(nil, constellation.For(constellation.PSK8))
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v", got, err)
	}
	if out := Demodulate(nil, constellation.For(constellation.PSK8)); len(out) != 0 {
		t.Fatalf("Demodulate(nil) = %v", out)
	}
}

func TestRoundTripAllTables(t *testing.T) {
	for _, tab := range constellation.Tables() {
		t.Run(tab.Name(), func(t *testing.T) {
			k := tab.BitsPerSymbol()
			in := randomBits(t, 7, 120*k)
			symbols, err := Modulate(in, tab)
			if err != nil {
				t.Fatalf("Modulate: %v", err)
			}
			if len(symbols) != 120 {
				t.Fatalf("len = %d, want 120", len(symbols))
			}
			out := Demodulate(symbols, tab)
			if !slices.Equal(in, out) {
				t.Fatal("round trip mismatch")
			}
		})
	}
}

func TestRoundTripBuiltTables(t *testing.T) {
	for _, k := range []int{1, 2, 3, 4, 6} {
		tab, err := constellation.Build(k, func(b []uint8) complex128 {
			return complex(float64(bits.ToInt(b)), 0)
		})
		if err != nil {
			t.Fatalf("Build(%d): %v", k, err)
		}
		in := randomBits(t, int64(k), 50*k)
		symbols, err := Modulate(in, tab)
		if err != nil {
			t.Fatalf("Modulate: %v", err)
		}
		if got := Demodulate(symbols, tab); !slices.Equal(in, got) {
			t.Fatalf("K=%d: round trip mismatch", k)
		}
	}
}

func TestRoundTrip988(t *testing.T) {
	in := bits.FromInt(988, 12)
	for _, tab := range constellation.Tables() {
		if 12%tab.BitsPerSymbol() != 0 {
			t.Fatalf("%s: 12 not divisible by K", tab.Name())
		}
		symbols, err := Modulate(in, tab)
		if err != nil {
			t.Fatalf("%s: %v", tab.Name(), err)
		}
		if got := bits.ToInt(Demodulate(symbols, tab)); got != 988 {
			t.Fatalf("%s: got %d, want 988", tab.Name(), got)
		}
	}
}

func TestDecideTiesGoToLowestKey(t *testing.T) {
	tests := []struct {
		scheme constellation.Scheme
		s      complex128
		want   int
	}{
		{constellation.BPSK, 0, 0},
		{constellation.BPSK, 2i, 0},
		{constellation.QPSK, 0, 0},
		{constellation.QPSK, 1, 0},
		{constellation.QPSK, -1, 2},
		{constellation.PAM4, 2, 0},
		{constellation.PAM4, -2, 2},
	}
	for _, tt := range tests {
		if got := Decide(tt.s, constellation.For(tt.scheme)); got != tt.want {
			t.Errorf("%s Decide(%v) = %d, want %d", tt.scheme, tt.s, got, tt.want)
		}
	}
}

func TestDecideNaN(t *testing.T) {
	if got := Decide(cmplx.NaN(), constellation.For(constellation.QAM16)); got != 0 {
		t.Fatalf("Decide(NaN) = %d, want 0", got)
	}
}

func TestDemodulateNoisySymbols(t *testing.T) {
	tab := constellation.For(constellation.QAM16)
	in := randomBits(t, 3, 400)
	symbols, err := Modulate(in, tab)
	if err != nil {
		t.Fatalf("Modulate: %v", err)
	}
	// Perturbations below half the minimum distance never cross a boundary.
	for i := range symbols {
		a := 0.9 * 2 * math.Pi * float64(i) / float64(len(symbols))
		symbols[i] += cmplx.Rect(0.9, a)
	}
	if got := Demodulate(symbols, tab); !slices.Equal(in, got) {
		t.Fatal("decisions changed under small noise")
	}
}

func TestKeys(t *testing.T) {
	tab := constellation.For(constellation.PAM8)
	got := Keys([]complex128{3, 1, 5.2, -6.9}, tab)
	want := []int{0, 1, 2, 7}
	if !slices.Equal(got, want) {
		t.Fatalf("Keys = %v, want %v", got, want)
	}
}
