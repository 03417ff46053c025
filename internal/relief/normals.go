package relief

import (
	"math"

	"voronoi-relief/internal/field"
)

// Normals differentiates a height field into per-pixel unit surface normals.
// Gradients come from 3x3 Sobel kernels with replicated borders, scaled by
// gradientStrength; the unnormalized normal is (-dz/dx, -dz/dy, 1). Flat
// regions yield the vertical normal (0,0,1).
func Normals(height *field.Field, gradientStrength float64) *field.Normals {
	n := field.NewNormals(height.W, height.H)
	for y := 0; y < height.H; y++ {
		for x := 0; x < height.W; x++ {
			gx, gy := sobelAt(height, x, y)
			gx *= gradientStrength
			gy *= gradientStrength

			inv := 1 / math.Sqrt(gx*gx+gy*gy+1)
			i := n.Index(x, y)
			n.X[i] = -gx * inv
			n.Y[i] = -gy * inv
			n.Z[i] = inv
		}
	}
	return n
}

// sobelAt evaluates the horizontal and vertical 3x3 Sobel kernels at (x, y).
func sobelAt(f *field.Field, x, y int) (gx, gy float64) {
	tl := f.AtClamped(x-1, y-1)
	tc := f.AtClamped(x, y-1)
	tr := f.AtClamped(x+1, y-1)
	ml := f.AtClamped(x-1, y)
	mr := f.AtClamped(x+1, y)
	bl := f.AtClamped(x-1, y+1)
	bc := f.AtClamped(x, y+1)
	br := f.AtClamped(x+1, y+1)

	gx = (tr + 2*mr + br) - (tl + 2*ml + bl)
	gy = (bl + 2*bc + br) - (tl + 2*tc + tr)
	return gx, gy
}
