package relief

import (
	"testing"

	"voronoi-relief/internal/field"
)

// blockMask builds a w*h mask whose interior is the centered rectangle of
// the given size; everything else is border.
func blockMask(w, h, innerW, innerH int) *field.Mask {
	m := field.NewMask(w, h)
	x0 := (w - innerW) / 2
	y0 := (h - innerH) / 2
	for y := y0; y < y0+innerH; y++ {
		for x := x0; x < x0+innerW; x++ {
			m.SetInside(x, y, true)
		}
	}
	return m
}

func TestDistanceTransformBorderIsZero(t *testing.T) {
	m := blockMask(4, 4, 2, 2)
	d := distanceTransform(m)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v := d.At(x, y)
			if m.Inside(x, y) {
				if v <= 0 {
					t.Fatalf("interior pixel (%d,%d) distance %v, want > 0", x, y, v)
				}
			} else if v != 0 {
				t.Fatalf("border pixel (%d,%d) distance %v, want 0", x, y, v)
			}
		}
	}
}

func TestDistanceTransformCenterHighest(t *testing.T) {
	m := blockMask(8, 8, 6, 6)
	d := distanceTransform(m)

	center := d.At(3, 3)
	nearBorder := d.At(1, 1)
	if center <= nearBorder {
		t.Fatalf("center distance %v not above near-border distance %v", center, nearBorder)
	}
}

func TestBulgeHeightPreservesOrdering(t *testing.T) {
	// The roundness power curve is monotonic, so the relative ordering of
	// interior heights must match the raw distance ordering.
	m := blockMask(16, 16, 12, 12)
	d := distanceTransform(m)
	h := BulgeHeight(m, 2.0, 5)

	type pair struct{ ax, ay, bx, by int }
	pairs := []pair{
		{7, 7, 3, 3},
		{7, 7, 2, 7},
		{6, 6, 2, 2},
	}
	for _, p := range pairs {
		if d.At(p.ax, p.ay) <= d.At(p.bx, p.by) {
			t.Fatalf("test pair (%d,%d)/(%d,%d) has no raw distance gap", p.ax, p.ay, p.bx, p.by)
		}
		if h.At(p.ax, p.ay) <= h.At(p.bx, p.by) {
			t.Fatalf("height ordering flipped at (%d,%d) vs (%d,%d): %v <= %v",
				p.ax, p.ay, p.bx, p.by, h.At(p.ax, p.ay), h.At(p.bx, p.by))
		}
	}
}

func TestBulgeHeightRange(t *testing.T) {
	cases := []struct {
		name      string
		mask      *field.Mask
		roundness float64
		smooth    int
	}{
		{"small block", blockMask(4, 4, 2, 2), 2.0, 5},
		{"sharp", blockMask(32, 24, 28, 20), 0.5, 7},
		{"flat domes", blockMask(32, 24, 28, 20), 5.0, 31},
	}
	for _, tc := range cases {
		h := BulgeHeight(tc.mask, tc.roundness, tc.smooth)
		for i, v := range h.Values() {
			if v < 0 || v > 1 {
				t.Fatalf("%s: height[%d] = %v outside [0,1]", tc.name, i, v)
			}
		}
	}
}

func TestBulgeHeightNoInterior(t *testing.T) {
	m := field.NewMask(10, 8)
	h := BulgeHeight(m, 2.0, 5)
	for i, v := range h.Values() {
		if v != 0 {
			t.Fatalf("all-border mask produced height[%d] = %v, want 0", i, v)
		}
	}
}

func TestBulgeHeightZeroArea(t *testing.T) {
	m := field.NewMask(0, 0)
	h := BulgeHeight(m, 2.0, 5)
	if h.W != 0 || h.H != 0 || len(h.Values()) != 0 {
		t.Fatalf("zero-area mask produced %dx%d field", h.W, h.H)
	}
}
