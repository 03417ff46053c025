//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 14
)

// HUD renders the parameter panel in the corner of the viewer window.
type HUD struct {
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a HUD. It starts visible.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update toggles panel visibility on the H key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the given lines onto a translucent panel anchored top-left.
func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	if h == nil || !h.visible || len(lines) == 0 {
		return
	}

	width := 0
	for _, line := range lines {
		if w := text.BoundString(basicfont.Face7x13, line).Dx(); w > width {
			width = w
		}
	}
	width += 2 * hudPadding
	height := len(lines)*hudLineHeight + 2*hudPadding

	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 208})

	y := hudPadding + basicfont.Face7x13.Ascent
	for _, line := range lines {
		text.Draw(h.panel, line, basicfont.Face7x13, hudPadding, y, color.White)
		y += hudLineHeight
	}

	screen.DrawImage(h.panel, nil)
}
