package relief

import "voronoi-relief/internal/field"

// Composite blends the bulge and base-surface height fields into the
// combined elevation consumed by the normal stage:
// clamp01(bulge*bulgeStrength + surface). The surface term is dropped when
// surfaceEnabled is false or no surface field was generated. Elementwise and
// stateless; both inputs are left untouched.
func Composite(bulge, surface *field.Field, bulgeStrength float64, surfaceEnabled bool) *field.Field {
	out := field.New(bulge.W, bulge.H)
	dst := out.Values()
	src := bulge.Values()

	for i, v := range src {
		dst[i] = v * bulgeStrength
	}
	if surfaceEnabled && surface != nil {
		for i, v := range surface.Values() {
			dst[i] += v
		}
	}
	out.Clamp01()
	return out
}
