package relief

import (
	"slices"
	"testing"

	"voronoi-relief/internal/field"
)

func TestEnhanceStretchesToFullRange(t *testing.T) {
	img := field.NewImage(4, 1, 1)
	copy(img.Pix, []float64{0.2, 0.4, 0.5, 0.6})

	out := Enhance(img)
	want := []float64{0, 0.5, 0.75, 1}
	for i := range want {
		if diff := out.Pix[i] - want[i]; diff > 1e-12 || diff < -1e-12 {
			t.Fatalf("stretched[%d] = %v, want %v", i, out.Pix[i], want[i])
		}
	}
}

func TestEnhanceIdempotent(t *testing.T) {
	img := field.NewImage(8, 4, 3)
	for i := range img.Pix {
		img.Pix[i] = 0.1 + 0.8*float64(i)/float64(len(img.Pix)-1)
	}

	once := Enhance(img)
	twice := Enhance(once)
	if !slices.Equal(once.Pix, twice.Pix) {
		t.Fatal("enhance is not idempotent on a stretched image")
	}
}

func TestEnhanceFullRangeUnchanged(t *testing.T) {
	img := field.NewImage(3, 1, 1)
	copy(img.Pix, []float64{0, 0.5, 1})

	out := Enhance(img)
	if !slices.Equal(out.Pix, img.Pix) {
		t.Fatalf("full-range image changed: %v", out.Pix)
	}
}

func TestEnhanceConstantImageUnchanged(t *testing.T) {
	img := field.NewImage(5, 5, 3)
	for i := range img.Pix {
		img.Pix[i] = 0.42
	}

	out := Enhance(img)
	if !slices.Equal(out.Pix, img.Pix) {
		t.Fatal("constant image must pass through unchanged")
	}
}

func TestEnhanceDoesNotMutateInput(t *testing.T) {
	img := field.NewImage(4, 1, 1)
	copy(img.Pix, []float64{0.2, 0.4, 0.5, 0.6})
	before := slices.Clone(img.Pix)

	Enhance(img)
	if !slices.Equal(img.Pix, before) {
		t.Fatal("enhance mutated its input")
	}
}
