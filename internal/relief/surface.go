package relief

import (
	"github.com/aquilax/go-perlin"

	"voronoi-relief/internal/field"
)

// Perlin fractal parameters: each octave halves the amplitude and doubles
// the frequency.
const (
	noisePersistence = 2.0
	noiseLacunarity  = 2.0
)

// Surface synthesizes the undulating base height field: coherent Perlin
// noise summed over complexity octaves, min/max normalized to [0,1] and
// scaled by scale. The field is a pure function of its arguments — the same
// seed and parameters always produce a bit-identical result.
func Surface(w, h int, scale float64, complexity int, seed int64) *field.Field {
	f := field.New(w, h)
	if w == 0 || h == 0 {
		return f
	}

	noise := perlin.NewPerlin(noisePersistence, noiseLacunarity, int32(complexity), seed)

	// Sample the noise across [0,complexity] in each axis so higher
	// complexity both adds octaves and tightens the undulation.
	sx := float64(complexity) / float64(w)
	sy := float64(complexity) / float64(h)

	vals := f.Values()
	for y := 0; y < h; y++ {
		ny := float64(y) * sy
		for x := 0; x < w; x++ {
			vals[y*w+x] = noise.Noise2D(float64(x)*sx, ny)
		}
	}

	lo, hi := f.MinMax()
	if hi == lo {
		for i := range vals {
			vals[i] = 0
		}
		return f
	}
	span := hi - lo
	for i, v := range vals {
		vals[i] = (v - lo) / span * scale
	}
	return f
}
