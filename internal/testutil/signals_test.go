package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 64)
	b := DeterministicNoise(42, 0.5, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
		if math.Abs(a[i]) > 0.5 {
			t.Fatalf("index %d: %v exceeds amplitude", i, a[i])
		}
	}
}

func TestComplexNoiseBounded(t *testing.T) {
	x := ComplexNoise(7, 0.25, 128)
	if len(x) != 128 {
		t.Fatalf("len = %d, want 128", len(x))
	}
	for i, v := range x {
		if math.Abs(real(v)) > 0.25 || math.Abs(imag(v)) > 0.25 {
			t.Fatalf("index %d: %v exceeds amplitude", i, v)
		}
	}
	if y := ComplexNoise(7, 0.25, 128); y[17] != x[17] {
		t.Fatal("not reproducible")
	}
}

func TestPhasor(t *testing.T) {
	x := Phasor(1, 4, 5)
	want := []complex128{1, 1i, -1, -1i, 1}
	for i := range want {
		if cmplx.Abs(x[i]-want[i]) > 1e-15 {
			t.Fatalf("index %d: got %v, want %v", i, x[i], want[i])
		}
	}
}

func TestImpulse(t *testing.T) {
	x := Impulse(4, 2)
	if x[2] != 1 || x[0] != 0 || x[1] != 0 || x[3] != 0 {
		t.Fatalf("Impulse(4, 2) = %v", x)
	}
	if y := Impulse(4, 9); y[0] != 0 || y[3] != 0 {
		t.Fatalf("out-of-range position should give zeros: %v", y)
	}
}
