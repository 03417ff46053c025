//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImagePainter uploads RGBA frames into a reusable ebiten texture. The
// texture is reallocated only when the frame size changes.
type ImagePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewImagePainter allocates a painter for frames of size w*h.
func NewImagePainter(w, h int) *ImagePainter {
	return &ImagePainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads src and draws it onto dst at the given scale.
func (p *ImagePainter) Blit(dst *ebiten.Image, src *image.RGBA, scale float64) {
	b := src.Bounds()
	if b.Dx() != p.w || b.Dy() != p.h {
		p.w, p.h = b.Dx(), b.Dy()
		p.img = ebiten.NewImage(p.w, p.h)
	}
	p.img.WritePixels(src.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying texture.
func (p *ImagePainter) Size() (int, int) { return p.w, p.h }
