package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-comms/dsp/core"
	"github.com/cwbudde/algo-comms/internal/testutil"
)

func TestFFTShift(t *testing.T) {
	even := FFTShift([]int{0, 1, 2, 3})
	wantEven := []int{2, 3, 0, 1}
	for i := range wantEven {
		if even[i] != wantEven[i] {
			t.Fatalf("even shift = %v, want %v", even, wantEven)
		}
	}

	odd := FFTShift([]int{0, 1, 2, -2, -1})
	wantOdd := []int{-2, -1, 0, 1, 2}
	for i := range wantOdd {
		if odd[i] != wantOdd[i] {
			t.Fatalf("odd shift = %v, want %v", odd, wantOdd)
		}
	}
}

func TestFrequencies(t *testing.T) {
	ff := Frequencies(8, 8)
	want := []float64{-4, -3, -2, -1, 0, 1, 2, 3}
	for i := range want {
		if ff[i] != want[i] {
			t.Fatalf("Frequencies(8, 8) = %v, want %v", ff, want)
		}
	}

	odd := Frequencies(5, 5)
	if odd[0] != -2 || odd[2] != 0 || odd[4] != 2 {
		t.Fatalf("Frequencies(5, 5) = %v", odd)
	}

	if Frequencies(1, 0) != nil {
		t.Fatal("expected nil grid for n=0")
	}
}

func TestDFTMatchesDirect(t *testing.T) {
	x := testutil.ComplexNoise(3, 1, 32)

	fast, err := DFT(x)
	if err != nil {
		t.Fatalf("DFT error: %v", err)
	}

	slow := make([]complex128, len(x))
	directDFT(slow, x)

	testutil.RequireComplexSliceNearlyEqual(t, fast, slow, 1e-9)
}

func TestDFTOfPhasor(t *testing.T) {
	bins, err := DFT(testutil.Phasor(3, 16, 16))
	if err != nil {
		t.Fatalf("DFT error: %v", err)
	}
	want := make([]complex128, 16)
	want[3] = 16
	testutil.RequireComplexSliceNearlyEqual(t, bins, want, 1e-9)
}

func TestDFTNonPowerOfTwo(t *testing.T) {
	// DFT of an impulse is flat.
	x := []complex128{1, 0, 0, 0, 0, 0}

	bins, err := DFT(x)
	if err != nil {
		t.Fatalf("DFT error: %v", err)
	}

	for i, b := range bins {
		if cmplx.Abs(b-1) > 1e-12 {
			t.Fatalf("bin %d = %v, want 1", i, b)
		}
	}
}

func TestNumericalFTRectPulse(t *testing.T) {
	// Rectangular pulse of four samples with unit energy.
	p := []float64{0.5, 0.5, 0.5, 0.5}

	bins, err := NumericalFT(p, 1, 16)
	if err != nil {
		t.Fatalf("NumericalFT error: %v", err)
	}

	if len(bins) != 16 {
		t.Fatalf("len = %d, want 16", len(bins))
	}

	// Zero frequency sits at the center index and carries the pulse area.
	if cmplx.Abs(bins[8]-2) > 1e-12 {
		t.Fatalf("DC bin = %v, want 2", bins[8])
	}

	pow := Power(bins)
	total := 0.0
	for _, v := range pow {
		total += v
	}

	// Parseval: sum |X|^2 = N * sum |x|^2.
	if math.Abs(total-16) > 1e-9 {
		t.Fatalf("total energy = %v, want 16", total)
	}

	central := 0.0
	for k := 8 - 3; k <= 8+3; k++ {
		central += pow[k]
	}
	if central/total < 0.9 {
		t.Fatalf("central bins hold %.3f of the energy, want > 0.9", central/total)
	}

	// The first spectral null of a 4-sample rectangle is at fs/4.
	if pow[8+4] > 1e-20 || pow[8-4] > 1e-20 {
		t.Fatalf("expected nulls at +-fs/4, got %v and %v", pow[12], pow[4])
	}
}

func TestNumericalFTScalesBySampleRate(t *testing.T) {
	p := []float64{1, 1}

	bins, err := NumericalFT(p, 4, 8)
	if err != nil {
		t.Fatalf("NumericalFT error: %v", err)
	}

	if cmplx.Abs(bins[4]-0.5) > 1e-12 {
		t.Fatalf("DC bin = %v, want 0.5", bins[4])
	}
}

func TestNumericalFTErrors(t *testing.T) {
	_, err := NumericalFT(make([]float64, 17), 1, 16)
	if !errors.Is(err, ErrPulseTooLong) {
		t.Fatalf("expected ErrPulseTooLong, got %v", err)
	}
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("expected core.ErrInvalidInput, got %v", err)
	}

	if _, err := NumericalFT([]float64{1}, 1, 0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}

	if _, err := NumericalFT([]float64{1}, 0, 8); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("expected ErrInvalidSampleRate, got %v", err)
	}

	if _, err := NumericalFTComplex([]complex128{1}, math.NaN(), 8); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("expected ErrInvalidSampleRate for NaN, got %v", err)
	}
}

func TestPSD(t *testing.T) {
	ff, ss, err := PSD([]float64{1}, 1, 4)
	if err != nil {
		t.Fatalf("PSD error: %v", err)
	}

	if len(ff) != 4 || len(ss) != 4 {
		t.Fatalf("unexpected lengths: %d, %d", len(ff), len(ss))
	}

	for i, v := range ss {
		if math.Abs(v-1) > 1e-12 {
			t.Fatalf("ss[%d] = %v, want 1", i, v)
		}
	}
}
