package field

// Normals stores one unit surface normal per pixel as three row-major
// component planes. Keeping the planes separate avoids a []Vec3 allocation
// per pixel and keeps each convolution pass cache-friendly.
type Normals struct {
	W, H    int
	X, Y, Z []float64
}

// NewNormals allocates a normal map with every vector pointing straight up,
// the orientation of a flat surface.
func NewNormals(w, h int) *Normals {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := &Normals{
		W: w, H: h,
		X: make([]float64, w*h),
		Y: make([]float64, w*h),
		Z: make([]float64, w*h),
	}
	for i := range n.Z {
		n.Z[i] = 1
	}
	return n
}

// Index returns the linear plane index for coordinates (x, y).
func (n *Normals) Index(x, y int) int { return y*n.W + x }

// At returns the normal vector at (x, y).
func (n *Normals) At(x, y int) Vec3 {
	i := y*n.W + x
	return Vec3{X: n.X[i], Y: n.Y[i], Z: n.Z[i]}
}

// Set stores the vector v at (x, y).
func (n *Normals) Set(x, y int, v Vec3) {
	i := y*n.W + x
	n.X[i], n.Y[i], n.Z[i] = v.X, v.Y, v.Z
}
