package relief

import (
	"math"

	"voronoi-relief/internal/field"
)

// BulgeHeight turns a cell/border mask into a normalized bulge height field.
// Interior pixels receive their chamfer distance to the nearest border pixel,
// normalized by the image-wide maximum, raised to 1/roundness and smoothed
// with a separable Gaussian of odd kernel width smoothness. Values stay in
// [0,1]. A mask with no interior pixels yields an all-zero field.
func BulgeHeight(mask *field.Mask, roundness float64, smoothness int) *field.Field {
	h := distanceTransform(mask)
	if h.W == 0 || h.H == 0 {
		return h
	}

	_, maxDist := h.MinMax()
	if maxDist == 0 {
		return h
	}

	inv := 1 / roundness
	vals := h.Values()
	for i, v := range vals {
		vals[i] = math.Pow(v/maxDist, inv)
	}

	gaussianBlur(h, smoothness)
	h.Clamp01()
	return h
}

// distanceTransform computes a two-pass 3-4 chamfer distance from every
// interior pixel to the nearest border pixel. Border pixels get distance 0.
// The chamfer weights approximate Euclidean distance after dividing by 3.
func distanceTransform(mask *field.Mask) *field.Field {
	w, h := mask.W, mask.H
	d := field.New(w, h)
	if w == 0 || h == 0 {
		return d
	}

	const (
		straight = 3.0
		diagonal = 4.0
	)
	inf := math.Inf(1)

	vals := d.Values()
	cells := mask.Cells()
	for i, c := range cells {
		if c != 0 {
			vals[i] = inf
		}
	}

	// Forward pass: left, up and the two upper diagonals.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			v := vals[i]
			if v == 0 {
				continue
			}
			if x > 0 && vals[i-1]+straight < v {
				v = vals[i-1] + straight
			}
			if y > 0 {
				if vals[i-w]+straight < v {
					v = vals[i-w] + straight
				}
				if x > 0 && vals[i-w-1]+diagonal < v {
					v = vals[i-w-1] + diagonal
				}
				if x < w-1 && vals[i-w+1]+diagonal < v {
					v = vals[i-w+1] + diagonal
				}
			}
			vals[i] = v
		}
	}

	// Backward pass: right, down and the two lower diagonals.
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			i := y*w + x
			v := vals[i]
			if v == 0 {
				continue
			}
			if x < w-1 && vals[i+1]+straight < v {
				v = vals[i+1] + straight
			}
			if y < h-1 {
				if vals[i+w]+straight < v {
					v = vals[i+w] + straight
				}
				if x < w-1 && vals[i+w+1]+diagonal < v {
					v = vals[i+w+1] + diagonal
				}
				if x > 0 && vals[i+w-1]+diagonal < v {
					v = vals[i+w-1] + diagonal
				}
			}
			vals[i] = v
		}
	}

	// An all-interior mask leaves +Inf cells (no border anywhere); treat the
	// whole frame as one flat plateau.
	for i, v := range vals {
		if math.IsInf(v, 1) {
			vals[i] = 0
		} else {
			vals[i] = v / straight
		}
	}
	return d
}

// gaussianBlur smooths the field in place with a separable Gaussian kernel of
// the given odd width, replicating samples at the border.
func gaussianBlur(f *field.Field, ksize int) {
	if ksize < 3 || f.W == 0 || f.H == 0 {
		return
	}
	kernel := gaussianKernel(ksize)
	radius := ksize / 2

	tmp := field.New(f.W, f.H)

	// Horizontal pass.
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			sum := 0.0
			for k := -radius; k <= radius; k++ {
				sum += kernel[k+radius] * f.AtClamped(x+k, y)
			}
			tmp.Set(x, y, sum)
		}
	}

	// Vertical pass.
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			sum := 0.0
			for k := -radius; k <= radius; k++ {
				sum += kernel[k+radius] * tmp.AtClamped(x, y+k)
			}
			f.Set(x, y, sum)
		}
	}
}

// gaussianKernel builds a normalized 1D Gaussian with sigma derived from the
// kernel width the same way OpenCV derives it when sigma is left at 0.
func gaussianKernel(ksize int) []float64 {
	sigma := 0.3*(float64(ksize-1)*0.5-1) + 0.8
	radius := ksize / 2
	kernel := make([]float64, ksize)
	sum := 0.0
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
