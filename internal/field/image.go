package field

// Image stores a 2D grid of float pixel values with 1 (grayscale) or 3 (RGB)
// interleaved channels, row-major, nominally in [0,1]. The byte conversion
// for encoders lives in internal/render.
type Image struct {
	W, H, C int
	Pix     []float64
}

// NewImage allocates an image with the given dimensions and channel count.
func NewImage(w, h, c int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if c != 1 && c != 3 {
		c = 1
	}
	return &Image{W: w, H: h, C: c, Pix: make([]float64, w*h*c)}
}

// Index returns the slice index of the first channel of pixel (x, y).
func (img *Image) Index(x, y int) int { return (y*img.W + x) * img.C }

// Clamp01 clamps every channel to [0,1] in place.
func (img *Image) Clamp01() {
	for i, v := range img.Pix {
		if v < 0 {
			img.Pix[i] = 0
		} else if v > 1 {
			img.Pix[i] = 1
		}
	}
}

// MinMax returns the smallest and largest channel value across the whole
// image. An empty image reports (0, 0).
func (img *Image) MinMax() (lo, hi float64) {
	if len(img.Pix) == 0 {
		return 0, 0
	}
	lo, hi = img.Pix[0], img.Pix[0]
	for _, v := range img.Pix[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	c := &Image{W: img.W, H: img.H, C: img.C, Pix: make([]float64, len(img.Pix))}
	copy(c.Pix, img.Pix)
	return c
}
