package relief

import (
	"errors"
	"slices"
	"testing"

	"voronoi-relief/internal/field"
)

func TestRenderRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Roundness = 0

	_, err := Render(blockMask(8, 8, 4, 4), nil, cfg)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
}

func TestRenderDimensionMismatch(t *testing.T) {
	base := field.NewImage(4, 4, 3)
	_, err := Render(blockMask(8, 8, 4, 4), base, DefaultConfig())
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestRenderDeterministicWithSeed(t *testing.T) {
	seed := int64(42)
	cfg := DefaultConfig()
	cfg.SurfaceSeed = &seed

	mask := blockMask(32, 24, 26, 18)
	a, err := Render(mask, nil, cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := Render(mask, nil, cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !slices.Equal(a.Pix, b.Pix) {
		t.Fatal("seeded renders are not reproducible")
	}
}

func TestRenderAllBorderMaskFlat(t *testing.T) {
	// No interior pixels: zero bulge, flat normals, so the shaded output
	// is uniform ambient-style lighting (the contrast stage leaves a
	// constant image alone).
	cfg := DefaultConfig()
	cfg.SurfaceEnabled = false

	out, err := Render(field.NewMask(16, 12), nil, cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	first := out.Pix[0]
	for i, v := range out.Pix {
		if v != first {
			t.Fatalf("all-border mask is not uniformly lit: pix[%d] = %v, pix[0] = %v", i, v, first)
		}
	}
}

func TestRenderZeroAreaMask(t *testing.T) {
	out, err := Render(field.NewMask(0, 0), nil, DefaultConfig())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out.Pix) != 0 {
		t.Fatalf("zero-area render produced %d samples", len(out.Pix))
	}
}

func TestRenderOutputInRange(t *testing.T) {
	seed := int64(7)
	cfg := DefaultConfig()
	cfg.SurfaceSeed = &seed

	out, err := Render(blockMask(40, 30, 34, 24), nil, cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.C != 3 {
		t.Fatalf("rendered image has %d channels, want 3", out.C)
	}
	for i, v := range out.Pix {
		if v < 0 || v > 1 {
			t.Fatalf("pix[%d] = %v outside [0,1]", i, v)
		}
	}
}

func TestRenderHonorsBaseImage(t *testing.T) {
	seed := int64(3)
	cfg := DefaultConfig()
	cfg.SurfaceSeed = &seed
	cfg.Wetness = 0

	mask := blockMask(16, 16, 12, 12)
	red := field.NewImage(16, 16, 3)
	for i := 0; i < len(red.Pix); i += 3 {
		red.Pix[i] = 1
	}

	out, err := Render(mask, red, cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// With a pure red base and wetness 0 the green/blue channels carry no
	// light at all.
	for i := 0; i < len(out.Pix); i += 3 {
		if out.Pix[i+1] != 0 || out.Pix[i+2] != 0 {
			t.Fatalf("pixel %d picked up non-red light: %v", i/3, out.Pix[i:i+3])
		}
	}
}
