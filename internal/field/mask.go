package field

// Mask stores a 2D grid of byte-sized cell flags in row-major order.
// Non-zero means the pixel lies inside a cell; zero marks a border pixel.
type Mask struct {
	W, H int
	data []uint8
}

// NewMask allocates a mask with the given dimensions.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write flags directly.
func (m *Mask) Cells() []uint8 { return m.data }

// Index returns the linear slice index for coordinates (x, y).
func (m *Mask) Index(x, y int) int { return y*m.W + x }

// Inside reports whether (x, y) is a cell-interior pixel.
func (m *Mask) Inside(x, y int) bool { return m.data[y*m.W+x] != 0 }

// SetInside marks (x, y) as interior (true) or border (false).
func (m *Mask) SetInside(x, y int, inside bool) {
	if inside {
		m.data[y*m.W+x] = 1
	} else {
		m.data[y*m.W+x] = 0
	}
}

// Fill marks every pixel as interior (true) or border (false).
func (m *Mask) Fill(inside bool) {
	v := uint8(0)
	if inside {
		v = 1
	}
	for i := range m.data {
		m.data[i] = v
	}
}
