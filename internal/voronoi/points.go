package voronoi

import (
	"math"

	"github.com/fogleman/delaunay"

	"voronoi-relief/pkg/core"
)

// gridJitter is the sigma of the random offset applied to grid points, as a
// fraction of the smaller image dimension.
const gridJitter = 0.02

// SamplePoints places the seed points for a tessellation using the provided
// RNG. Grid placement is jittered so the cells stay irregular.
func SamplePoints(p Params, rng *core.RNG) []delaunay.Point {
	switch p.Distribution {
	case DistGrid:
		return gridPoints(p, rng)
	default:
		return randomPoints(p, rng)
	}
}

func randomPoints(p Params, rng *core.RNG) []delaunay.Point {
	pts := make([]delaunay.Point, p.NumPoints)
	for i := range pts {
		pts[i] = delaunay.Point{
			X: rng.Float64() * float64(p.Width),
			Y: rng.Float64() * float64(p.Height),
		}
	}
	return pts
}

func gridPoints(p Params, rng *core.RNG) []delaunay.Point {
	w := float64(p.Width)
	h := float64(p.Height)
	cols := int(math.Ceil(math.Sqrt(float64(p.NumPoints) * w / h)))
	if cols < 1 {
		cols = 1
	}
	rows := (p.NumPoints + cols - 1) / cols

	sigma := gridJitter * math.Min(w, h)
	pts := make([]delaunay.Point, 0, p.NumPoints)
	for r := 0; r < rows && len(pts) < p.NumPoints; r++ {
		for c := 0; c < cols && len(pts) < p.NumPoints; c++ {
			x := w * float64(c) / float64(max(cols-1, 1))
			y := h * float64(r) / float64(max(rows-1, 1))
			pts = append(pts, delaunay.Point{
				X: x + rng.NormFloat64()*sigma,
				Y: y + rng.NormFloat64()*sigma,
			})
		}
	}
	return pts
}

// ghostCorners returns four sites far outside the frame so every visible
// region is bounded and the diagram covers the whole image.
func ghostCorners(p Params) []delaunay.Point {
	w := float64(p.Width)
	h := float64(p.Height)
	return []delaunay.Point{
		{X: -w, Y: -h},
		{X: -w, Y: 2 * h},
		{X: 2 * w, Y: -h},
		{X: 2 * w, Y: 2 * h},
	}
}
