package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-comms/dsp/window"
	"github.com/cwbudde/algo-comms/internal/testutil"
)

func TestWelchPhasorPeak(t *testing.T) {
	const (
		fs      = 64.0
		segment = 64
	)
	x := testutil.Phasor(8, fs, 1024)

	ff, ss, err := Welch(x, fs, segment, window.TypeHann)
	if err != nil {
		t.Fatalf("Welch: %v", err)
	}
	if len(ff) != segment || len(ss) != segment {
		t.Fatalf("lengths = %d, %d", len(ff), len(ss))
	}

	peak := 0
	for k := range ss {
		if ss[k] > ss[peak] {
			peak = k
		}
	}
	if ff[peak] != 8 {
		t.Fatalf("peak at %v Hz, want 8", ff[peak])
	}
}

func TestWelchPreservesPower(t *testing.T) {
	const fs = 2.0
	x := testutil.ComplexNoise(9, 1, 8192)
	mean := 0.0
	for _, v := range x {
		mean += real(v)*real(v) + imag(v)*imag(v)
	}
	mean /= float64(len(x))

	for _, win := range []window.Type{window.TypeRectangular, window.TypeHann, window.TypeBlackman} {
		_, ss, err := Welch(x, fs, 128, win)
		if err != nil {
			t.Fatalf("%s: %v", win, err)
		}
		testutil.RequireFinite(t, ss)

		total := 0.0
		for _, v := range ss {
			total += v
		}
		total *= fs / 128
		if math.Abs(total-mean)/mean > 0.05 {
			t.Errorf("%s: integrated power %v, want ~%v", win, total, mean)
		}
	}
}

func TestWelchErrors(t *testing.T) {
	x := make([]complex128, 16)
	if _, _, err := Welch(x, 1, 32, window.TypeHann); !errors.Is(err, ErrSignalTooShort) {
		t.Fatalf("err = %v, want ErrSignalTooShort", err)
	}
	if _, _, err := Welch(x, 0, 8, window.TypeHann); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("err = %v, want ErrInvalidSampleRate", err)
	}
	if _, _, err := Welch(x, 1, 0, window.TypeHann); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
	if _, _, err := Welch(x, 1, 8, window.Type(42)); !errors.Is(err, window.ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
}
