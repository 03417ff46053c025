// Package field holds the 2D array types the relief pipeline passes between
// stages: scalar height fields, binary masks, normal maps and float images.
package field

// Field stores a 2D grid of float64 samples in row-major order. Height
// fields keep their values in [0,1]; intermediate gradients may leave that
// range until clamped.
type Field struct {
	W, H int
	data []float64
}

// New allocates a field with the given dimensions. Non-positive dimensions
// collapse to zero so degenerate inputs stay representable.
func New(w, h int) *Field {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so callers can read/write samples directly.
func (f *Field) Values() []float64 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// At returns the sample at (x, y).
func (f *Field) At(x, y int) float64 { return f.data[y*f.W+x] }

// Set stores v at (x, y).
func (f *Field) Set(x, y int, v float64) { f.data[y*f.W+x] = v }

// AtClamped returns the sample at (x, y) with coordinates clamped to the
// field bounds, which gives convolution kernels a replicated border.
func (f *Field) AtClamped(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x >= f.W {
		x = f.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= f.H {
		y = f.H - 1
	}
	return f.data[y*f.W+x]
}

// Clamp01 clamps every sample to [0,1] in place.
func (f *Field) Clamp01() {
	for i, v := range f.data {
		if v < 0 {
			f.data[i] = 0
		} else if v > 1 {
			f.data[i] = 1
		}
	}
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	c := &Field{W: f.W, H: f.H, data: make([]float64, len(f.data))}
	copy(c.data, f.data)
	return c
}

// MinMax returns the smallest and largest sample. An empty field reports
// (0, 0).
func (f *Field) MinMax() (lo, hi float64) {
	if len(f.data) == 0 {
		return 0, 0
	}
	lo, hi = f.data[0], f.data[0]
	for _, v := range f.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
