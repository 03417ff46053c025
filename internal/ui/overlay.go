//go:build ebiten

package ui

import (
	"image/color"

	"voronoi-relief/internal/field"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the rendered texture:
// a tint over the border mask and a grayscale view of the height field.
type Overlay struct {
	mask   *field.Mask
	height *field.Field

	showMask   bool
	showHeight bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// SetFields replaces the inspected fields after a regeneration.
func (o *Overlay) SetFields(mask *field.Mask, height *field.Field) {
	o.mask = mask
	o.height = height
}

// Update handles the overlay toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showMask = !o.showMask
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHeight = !o.showHeight
	}
}

// Draw renders the active overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showHeight && o.height != nil {
		o.drawHeight(screen)
	}
	if o.showMask && o.mask != nil {
		o.drawMask(screen)
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image) {
	w, h := o.mask.W, o.mask.H
	o.ensure(w, h)
	tint := color.RGBA{R: 255, G: 120, B: 40}
	cells := o.mask.Cells()
	for i, total := 0, w*h; i < total; i++ {
		base := 4 * i
		if cells[i] != 0 {
			o.buf[base+0] = tint.R
			o.buf[base+1] = tint.G
			o.buf[base+2] = tint.B
			o.buf[base+3] = 160
		} else {
			o.buf[base+0] = 0
			o.buf[base+1] = 0
			o.buf[base+2] = 0
			o.buf[base+3] = 0
		}
	}
	o.img.WritePixels(o.buf)
	screen.DrawImage(o.img, nil)
}

func (o *Overlay) drawHeight(screen *ebiten.Image) {
	w, h := o.height.W, o.height.H
	o.ensure(w, h)
	for i, v := range o.height.Values() {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		g := byte(v*255 + 0.5)
		base := 4 * i
		o.buf[base+0] = g
		o.buf[base+1] = g
		o.buf[base+2] = g
		o.buf[base+3] = 255
	}
	o.img.WritePixels(o.buf)
	screen.DrawImage(o.img, nil)
}

func (o *Overlay) ensure(w, h int) {
	if o.img == nil || o.img.Bounds().Dx() != w || o.img.Bounds().Dy() != h {
		o.img = ebiten.NewImage(w, h)
		o.buf = make([]byte, 4*w*h)
	}
}
