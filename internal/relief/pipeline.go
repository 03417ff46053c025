// Package relief turns a flat cell/border mask into a pseudo-3D shaded
// render: distance-transform bulge heights, optional coherent-noise base
// surface, Sobel normal estimation, a diffuse + Blinn-Phong wet-look shader
// and a final histogram stretch. Every stage is a pure function over 2D
// arrays; the pipeline composes them strictly left to right.
package relief

import (
	"fmt"
	"math/rand/v2"

	"voronoi-relief/internal/field"
)

// Render runs the full pipeline over a cell mask. base optionally supplies a
// per-pixel base color (same dimensions as the mask, 1 or 3 channels); when
// nil, cfg.BaseColor fills every pixel. The returned image is W×H with 3
// channels in [0,1].
//
// Configuration problems surface as *ConfigError and a base/mask size
// disagreement as ErrDimensionMismatch, both before any array work. A mask
// without interior pixels is not an error: it renders as a flat,
// uniformly lit plate.
func Render(mask *field.Mask, base *field.Image, cfg Config) (*field.Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if base != nil && (base.W != mask.W || base.H != mask.H) {
		return nil, fmt.Errorf("%w: mask %dx%d, base %dx%d",
			ErrDimensionMismatch, mask.W, mask.H, base.W, base.H)
	}
	if mask.W == 0 || mask.H == 0 {
		return field.NewImage(mask.W, mask.H, 3), nil
	}

	height := Heightfield(mask, cfg)
	normals := Normals(height, cfg.GradientStrength())
	shaded := Shade(normals, height, cfg.Light(), base, cfg.BaseColor)
	return Enhance(shaded), nil
}

// Heightfield computes the composited height the shader works from: the
// distance-transform bulge blended with the optional noise surface. cfg must
// already be valid.
func Heightfield(mask *field.Mask, cfg Config) *field.Field {
	bulge := BulgeHeight(mask, cfg.Roundness, cfg.Smoothness)

	var surface *field.Field
	if cfg.SurfaceEnabled {
		seed := resolveSeed(cfg.SurfaceSeed)
		surface = Surface(mask.W, mask.H, cfg.SurfaceScale, cfg.SurfaceComplexity, seed)
	}

	return Composite(bulge, surface, cfg.BulgeStrength, cfg.SurfaceEnabled)
}

// resolveSeed honors an explicit surface seed and draws a fresh one when the
// caller left it unset, which makes unseeded renders intentionally
// non-reproducible.
func resolveSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return rand.Int64()
}
