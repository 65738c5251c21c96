package riichi

import "testing"

func TestNewRNGIsDeterministicForFixedSeed(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		x, y := a.Intn(1000), b.Intn(1000)
		if x != y {
			t.Fatalf("draw %d diverged: %d != %d for identical seeds", i, x, y)
		}
	}
}

func TestNewRNGDiffersAcrossSeeds(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)
	same := true
	for i := 0; i < 50; i++ {
		if a.Intn(1_000_000) != b.Intn(1_000_000) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to eventually diverge over 50 draws")
	}
}

func TestNewRNGStaysInRange(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		n := r.Intn(34)
		if n < 0 || n >= 34 {
			t.Fatalf("Intn(34) = %d, out of range", n)
		}
	}
}
