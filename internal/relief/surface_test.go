package relief

import (
	"slices"
	"testing"
)

func TestSurfaceDeterministic(t *testing.T) {
	a := Surface(64, 48, 0.3, 2, 42)
	b := Surface(64, 48, 0.3, 2, 42)
	if !slices.Equal(a.Values(), b.Values()) {
		t.Fatal("same seed and parameters must produce a bit-identical field")
	}
}

func TestSurfaceSeedChangesField(t *testing.T) {
	a := Surface(64, 48, 0.3, 2, 42)
	b := Surface(64, 48, 0.3, 2, 43)
	if slices.Equal(a.Values(), b.Values()) {
		t.Fatal("different seeds produced identical fields")
	}
}

func TestSurfaceRange(t *testing.T) {
	for _, scale := range []float64{0, 0.3, 1} {
		f := Surface(40, 30, scale, 3, 7)
		for i, v := range f.Values() {
			if v < 0 || v > scale {
				t.Fatalf("scale %v: sample[%d] = %v outside [0,%v]", scale, i, v, scale)
			}
		}
	}
}

func TestSurfaceSpansItsScale(t *testing.T) {
	// Min/max normalization pins the extremes of a non-trivial field.
	f := Surface(64, 64, 0.5, 2, 3)
	lo, hi := f.MinMax()
	if lo != 0 {
		t.Fatalf("minimum = %v, want 0", lo)
	}
	if hi != 0.5 {
		t.Fatalf("maximum = %v, want 0.5", hi)
	}
}

func TestSurfaceSpatiallyCoherent(t *testing.T) {
	// Neighboring samples of coherent noise must not jump across most of
	// the amplitude range the way independent per-pixel randomness would.
	f := Surface(128, 128, 1.0, 2, 99)
	for y := 0; y < f.H; y++ {
		for x := 1; x < f.W; x++ {
			delta := f.At(x, y) - f.At(x-1, y)
			if delta < 0 {
				delta = -delta
			}
			if delta > 0.25 {
				t.Fatalf("adjacent samples at (%d,%d) differ by %v", x, y, delta)
			}
		}
	}
}

func TestSurfaceZeroArea(t *testing.T) {
	f := Surface(0, 0, 0.3, 2, 1)
	if f.W != 0 || f.H != 0 || len(f.Values()) != 0 {
		t.Fatalf("zero-area surface produced %dx%d field", f.W, f.H)
	}
}
