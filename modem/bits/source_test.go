package bits

import (
	"errors"
	"testing"
)

func TestSourceDeterministic(t *testing.T) {
	a, err := NewSource(WithSeed(42)).Bits(256)
	if err != nil {
		t.Fatalf("Bits error: %v", err)
	}
	b, err := NewSource(WithSeed(42)).Bits(256)
	if err != nil {
		t.Fatalf("Bits error: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequence not deterministic at %d", i)
		}
	}

	if err := Validate(a); err != nil {
		t.Fatalf("invalid bits produced: %v", err)
	}
}

func TestSourceBalanced(t *testing.T) {
	const n = 10000
	b, _ := NewSource().Bits(n)

	ones := 0
	for _, v := range b {
		ones += int(v)
	}
	if ones < 4500 || ones > 5500 {
		t.Fatalf("ones = %d of %d, expected roughly half", ones, n)
	}
}

func TestSourceReset(t *testing.T) {
	s := NewSource(WithSeed(7))
	if s.Seed() != 7 {
		t.Fatalf("Seed() = %d, want 7", s.Seed())
	}

	first, _ := s.Bits(64)
	s.Reset()
	again, _ := s.Bits(64)

	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("Reset did not rewind at %d", i)
		}
	}
}

func TestSourceLength(t *testing.T) {
	s := NewSource()

	b, err := s.Bits(0)
	if err != nil || len(b) != 0 {
		t.Fatalf("Bits(0) = %v, %v", b, err)
	}

	if _, err := s.Bits(-1); !errors.Is(err, ErrLength) {
		t.Fatalf("expected ErrLength, got %v", err)
	}
}
