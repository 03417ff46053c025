package render

import (
	"image/color"
	"testing"

	"voronoi-relief/internal/field"
)

func TestToRGBAGrayscaleReplicates(t *testing.T) {
	img := field.NewImage(2, 1, 1)
	img.Pix[0] = 0
	img.Pix[1] = 1

	out := ToRGBA(img)
	if out.Pix[0] != 0 || out.Pix[1] != 0 || out.Pix[2] != 0 || out.Pix[3] != 0xff {
		t.Fatalf("black pixel converted to %v", out.Pix[0:4])
	}
	if out.Pix[4] != 0xff || out.Pix[5] != 0xff || out.Pix[6] != 0xff {
		t.Fatalf("white pixel converted to %v", out.Pix[4:8])
	}
}

func TestToRGBAClampsOutOfRange(t *testing.T) {
	img := field.NewImage(2, 1, 3)
	img.Pix[0] = -0.5
	img.Pix[3] = 1.5

	out := ToRGBA(img)
	if out.Pix[0] != 0 {
		t.Fatalf("negative channel mapped to %d, want 0", out.Pix[0])
	}
	if out.Pix[4] != 0xff {
		t.Fatalf("overrange channel mapped to %d, want 255", out.Pix[4])
	}
}

func TestInvertRoundTrips(t *testing.T) {
	m := field.NewMask(3, 2)
	m.SetInside(1, 1, true)
	img := MaskToRGBA(m, color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBA{A: 255})
	orig := append([]uint8(nil), img.Pix...)

	Invert(img)
	Invert(img)
	for i := range img.Pix {
		if img.Pix[i] != orig[i] {
			t.Fatalf("double inversion changed pixel byte %d", i)
		}
	}
}

func TestFitIntoPreservesAspect(t *testing.T) {
	img := ToRGBA(field.NewImage(400, 200, 1))
	out := FitInto(img, 100, 100)
	b := out.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("scaled to %dx%d, want 100x50", b.Dx(), b.Dy())
	}
}

func TestFitIntoNeverUpscales(t *testing.T) {
	img := ToRGBA(field.NewImage(40, 20, 1))
	out := FitInto(img, 100, 100)
	if out != img {
		t.Fatal("small image should pass through untouched")
	}
}
