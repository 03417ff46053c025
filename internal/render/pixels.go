// Package render converts the pipeline's float images into byte-range
// pixels, inverts flat renders for saved pairs, and handles PNG encoding and
// display scaling.
package render

import (
	"image"
	"image/color"

	"voronoi-relief/internal/field"
)

// ToRGBA converts a float image with values in [0,1] into byte-range RGBA
// pixels. Grayscale inputs replicate their single channel; values outside
// [0,1] are clamped during conversion.
func ToRGBA(img *field.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.W, img.H))
	for i := 0; i < img.W*img.H; i++ {
		base := i * 4
		src := i * img.C
		if img.C == 1 {
			v := toByte(img.Pix[src])
			out.Pix[base+0] = v
			out.Pix[base+1] = v
			out.Pix[base+2] = v
		} else {
			out.Pix[base+0] = toByte(img.Pix[src+0])
			out.Pix[base+1] = toByte(img.Pix[src+1])
			out.Pix[base+2] = toByte(img.Pix[src+2])
		}
		out.Pix[base+3] = 0xff
	}
	return out
}

// MaskToRGBA renders a cell mask as a binary image: interior pixels take the
// on color, border pixels the off color.
func MaskToRGBA(m *field.Mask, on, off color.RGBA) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, m.W, m.H))
	for i, c := range m.Cells() {
		base := i * 4
		col := off
		if c != 0 {
			col = on
		}
		out.Pix[base+0] = col.R
		out.Pix[base+1] = col.G
		out.Pix[base+2] = col.B
		out.Pix[base+3] = col.A
	}
	return out
}

// Invert flips every color channel of the image in place, leaving alpha
// untouched. Saved pairs store the flat diagram inverted: black background,
// white cell borders.
func Invert(img *image.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 0xff - img.Pix[i+0]
		img.Pix[i+1] = 0xff - img.Pix[i+1]
		img.Pix[i+2] = 0xff - img.Pix[i+2]
	}
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}

// CloneRGBA returns a deep copy of img.
func CloneRGBA(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}
