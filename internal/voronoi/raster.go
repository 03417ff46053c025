package voronoi

import (
	"image"
	"image/color"

	"voronoi-relief/internal/field"
)

func fillRGBA(img *image.RGBA, c color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

// clipSegment clips s to the rectangle [minX,maxX]x[minY,maxY] with the
// Liang-Barsky algorithm. The second return value is false when the segment
// lies entirely outside the rectangle.
func clipSegment(s Segment, minX, minY, maxX, maxY float64) (Segment, bool) {
	dx := s.X1 - s.X0
	dy := s.Y1 - s.Y0
	t0, t1 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{s.X0 - minX, maxX - s.X0, s.Y0 - minY, maxY - s.Y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return Segment{}, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return Segment{}, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return Segment{}, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	return Segment{
		X0: s.X0 + t0*dx,
		Y0: s.Y0 + t0*dy,
		X1: s.X0 + t1*dx,
		Y1: s.Y0 + t1*dy,
	}, true
}

// drawLine rasterizes a segment with Bresenham stepping, stamping a disc of
// the given thickness at every step. Pixels outside the frame are dropped;
// mask may be nil when only the flat image should be touched.
func drawLine(img *image.RGBA, mask *field.Mask, s Segment, c color.RGBA, thickness int) {
	x0, y0 := int(s.X0), int(s.Y0)
	x1, y1 := int(s.X1), int(s.Y1)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	radius := thickness / 2
	for {
		if radius == 0 {
			setPixel(img, mask, x0, y0, c)
		} else {
			drawDisc(img, mask, x0, y0, radius, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawDisc stamps a filled circle of the given radius.
func drawDisc(img *image.RGBA, mask *field.Mask, cx, cy, radius int, c color.RGBA) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y > radius*radius {
				continue
			}
			setPixel(img, mask, cx+x, cy+y, c)
		}
	}
}

func setPixel(img *image.RGBA, mask *field.Mask, x, y int, c color.RGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	i := img.PixOffset(x, y)
	img.Pix[i+0] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
	if mask != nil {
		mask.SetInside(x, y, false)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
