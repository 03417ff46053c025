package relief

import (
	"testing"

	"voronoi-relief/internal/field"
)

func rampField(w, h int) *field.Field {
	f := field.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.Set(x, y, float64(x)/float64(w-1))
		}
	}
	return f
}

func TestCompositeClamped(t *testing.T) {
	bulge := rampField(16, 8)
	surface := Surface(16, 8, 1.0, 2, 5)

	out := Composite(bulge, surface, 1.0, true)
	for i, v := range out.Values() {
		if v < 0 || v > 1 {
			t.Fatalf("combined[%d] = %v outside [0,1]", i, v)
		}
	}
}

func TestCompositeSurfaceDisabled(t *testing.T) {
	bulge := rampField(16, 8)
	surface := Surface(16, 8, 1.0, 2, 5)

	out := Composite(bulge, surface, 0.5, false)
	for i, v := range out.Values() {
		want := bulge.Values()[i] * 0.5
		if v != want {
			t.Fatalf("disabled surface leaked into combined[%d]: got %v, want %v", i, v, want)
		}
	}
}

func TestCompositeNilSurface(t *testing.T) {
	bulge := rampField(8, 8)
	out := Composite(bulge, nil, 1.0, true)
	for i, v := range out.Values() {
		if v != bulge.Values()[i] {
			t.Fatalf("nil surface changed combined[%d]", i)
		}
	}
}

func TestCompositeBulgeStrengthMonotonic(t *testing.T) {
	bulge := rampField(32, 16)
	surface := Surface(32, 16, 0.3, 2, 11)

	prevMax := -1.0
	for _, strength := range []float64{0, 0.25, 0.5, 0.75, 1} {
		out := Composite(bulge, surface, strength, true)
		_, hi := out.MinMax()
		if hi < prevMax {
			t.Fatalf("max height dropped from %v to %v when strength rose to %v", prevMax, hi, strength)
		}
		prevMax = hi
	}
}

func TestCompositeLeavesInputsUntouched(t *testing.T) {
	bulge := rampField(8, 4)
	surface := Surface(8, 4, 0.4, 2, 2)
	bulgeCopy := bulge.Clone()
	surfaceCopy := surface.Clone()

	Composite(bulge, surface, 0.7, true)

	for i := range bulge.Values() {
		if bulge.Values()[i] != bulgeCopy.Values()[i] {
			t.Fatal("composite mutated the bulge field")
		}
	}
	for i := range surface.Values() {
		if surface.Values()[i] != surfaceCopy.Values()[i] {
			t.Fatal("composite mutated the surface field")
		}
	}
}
