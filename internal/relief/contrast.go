package relief

import "voronoi-relief/internal/field"

// Enhance applies a linear histogram stretch: the observed [lo,hi] intensity
// range is remapped to [0,1] across all channels at once. A constant image
// is returned unchanged, and an image that already spans the full range maps
// to itself, which makes the stretch idempotent.
func Enhance(img *field.Image) *field.Image {
	out := img.Clone()
	lo, hi := out.MinMax()
	if hi == lo {
		return out
	}
	span := hi - lo
	for i, v := range out.Pix {
		out.Pix[i] = (v - lo) / span
	}
	return out
}
