//go:build ebiten

package app

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"voronoi-relief/internal/config"
	"voronoi-relief/internal/field"
	"voronoi-relief/internal/logger"
	"voronoi-relief/internal/relief"
	"voronoi-relief/internal/render"
	"voronoi-relief/internal/ui"
	"voronoi-relief/internal/voronoi"
	"voronoi-relief/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game is the interactive viewer: it renders one texture pair at a time and
// regenerates it in place as parameters and seeds change.
type Game struct {
	vparams voronoi.Params
	effect  relief.Config

	pointSeed   int64
	surfaceSeed int64

	flat     *image.RGBA
	shaded   *image.RGBA
	mask     *field.Mask
	showFlat bool

	painter *render.ImagePainter
	hud     *ui.HUD
	overlay *ui.Overlay

	saveCounter int
}

// New constructs a Game from the loaded configuration and renders the first
// pair.
func New(cfg *config.Config) (*Game, error) {
	vp := cfg.Voronoi.VoronoiParams()
	ec := cfg.Effect.ReliefConfig()
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if err := ec.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		vparams:     vp,
		effect:      ec,
		pointSeed:   cfg.Voronoi.Seed,
		surfaceSeed: time.Now().UnixNano(),
		painter:     render.NewImagePainter(vp.Width, vp.Height),
		hud:         ui.NewHUD(),
		overlay:     ui.NewOverlay(),
	}
	if s := cfg.Effect.SurfaceSeed; s != nil {
		g.surfaceSeed = *s
	}
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// regenerate renders the pair for the current parameters and seeds.
func (g *Game) regenerate() error {
	d, err := voronoi.Generate(g.vparams, core.NewRNG(g.pointSeed))
	if err != nil {
		return err
	}

	ec := g.effect
	seed := g.surfaceSeed
	ec.SurfaceSeed = &seed
	if err := ec.Validate(); err != nil {
		return err
	}

	height := relief.Heightfield(d.Mask, ec)
	normals := relief.Normals(height, ec.GradientStrength())
	shaded := relief.Enhance(relief.Shade(normals, height, ec.Light(), nil, ec.BaseColor))

	g.flat = d.Flat
	g.shaded = render.ToRGBA(shaded)
	g.mask = d.Mask
	g.overlay.SetFields(d.Mask, height)
	return nil
}

// rotateLight spins the light direction around the view axis.
func (g *Game) rotateLight(angle float64) {
	sin, cos := math.Sincos(angle)
	d := g.effect.LightDirection
	g.effect.LightDirection.X = d.X*cos - d.Y*sin
	g.effect.LightDirection.Y = d.X*sin + d.Y*cos
}

// reseed draws fresh point and surface seeds.
func (g *Game) reseed() {
	now := time.Now().UnixNano()
	g.pointSeed = now
	g.surfaceSeed = now + 1
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dirty := false
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.reseed()
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showFlat = !g.showFlat
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.effect.BulgeStrength = clampStep(g.effect.BulgeStrength+0.05, 0, 1)
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.effect.BulgeStrength = clampStep(g.effect.BulgeStrength-0.05, 0, 1)
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.effect.Wetness = clampStep(g.effect.Wetness+0.05, 0, 1)
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.effect.Wetness = clampStep(g.effect.Wetness-0.05, 0, 1)
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.rotateLight(-math.Pi / 12)
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.rotateLight(math.Pi / 12)
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.vparams.NumPoints += 5
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.vparams.NumPoints > 7 {
		g.vparams.NumPoints -= 5
		dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.savePair()
	}

	g.hud.Update()
	g.overlay.Update()

	if dirty {
		if err := g.regenerate(); err != nil {
			logger.Sugar.Errorw("regenerate failed", "error", err)
		}
	}
	return nil
}

func (g *Game) savePair() {
	name := fmt.Sprintf("viewer_pair_%04d", g.saveCounter)
	g.saveCounter++

	inverted := render.CloneRGBA(g.flat)
	render.Invert(inverted)
	if err := render.SavePNG(name+"_original.png", inverted); err != nil {
		logger.Sugar.Errorw("save failed", "error", err)
		return
	}
	if err := render.SavePNG(name+"_3d_effect.png", g.shaded); err != nil {
		logger.Sugar.Errorw("save failed", "error", err)
		return
	}
	maskImg := render.MaskToRGBA(g.mask,
		color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBA{A: 255})
	if err := render.SavePNG(name+"_mask.png", maskImg); err != nil {
		logger.Sugar.Errorw("save failed", "error", err)
		return
	}
	logger.Sugar.Infow("pair saved", "name", name)
}

// Draw renders the current texture and overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.showFlat {
		g.painter.Blit(screen, g.flat, 1)
	} else {
		g.painter.Blit(screen, g.shaded, 1)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.hudLines())
}

func (g *Game) hudLines() []string {
	view := "shaded"
	if g.showFlat {
		view = "flat"
	}
	return []string{
		fmt.Sprintf("view      %s  (tab)", view),
		fmt.Sprintf("points    %d  (-/+)", g.vparams.NumPoints),
		fmt.Sprintf("bulge     %.2f  (up/down)", g.effect.BulgeStrength),
		fmt.Sprintf("wetness   %.2f  (left/right)", g.effect.Wetness),
		fmt.Sprintf("light     %.2f,%.2f  (a/d)", g.effect.LightDirection.X, g.effect.LightDirection.Y),
		fmt.Sprintf("seed      %d", g.pointSeed),
		"r regen   s reseed   p save   q quit",
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.vparams.Width, g.vparams.Height
}

func clampStep(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
