// Package voronoi computes and rasterizes the cell tessellation the relief
// pipeline shades: seed-point sampling, the Voronoi diagram via the Delaunay
// dual, and edge/point rasterization into a flat image plus the cell/border
// mask.
package voronoi

import (
	"fmt"
	"image/color"
)

// Distribution selects how seed points are placed.
type Distribution string

const (
	// DistRandom scatters points uniformly over the frame.
	DistRandom Distribution = "random"
	// DistGrid lays points on a jittered regular grid.
	DistGrid Distribution = "grid"
)

// Params controls one tessellation render.
type Params struct {
	Width  int
	Height int

	NumPoints    int
	Distribution Distribution

	ShowPoints    bool
	EdgeThickness int
	PointSize     int

	EdgeColor       color.RGBA
	PointColor      color.RGBA
	BackgroundColor color.RGBA
}

// DefaultParams returns the standard tessellation settings.
func DefaultParams() Params {
	return Params{
		Width:           800,
		Height:          600,
		NumPoints:       50,
		Distribution:    DistRandom,
		ShowPoints:      false,
		EdgeThickness:   1,
		PointSize:       3,
		EdgeColor:       color.RGBA{A: 255},
		PointColor:      color.RGBA{R: 255, A: 255},
		BackgroundColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Validate checks the parameters before any geometry work.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("voronoi: image size %dx%d must be positive", p.Width, p.Height)
	}
	if p.NumPoints < 3 {
		return fmt.Errorf("voronoi: need at least 3 points, got %d", p.NumPoints)
	}
	if p.Distribution != DistRandom && p.Distribution != DistGrid {
		return fmt.Errorf("voronoi: unknown point distribution %q", p.Distribution)
	}
	if p.EdgeThickness < 1 {
		return fmt.Errorf("voronoi: edge thickness %d must be at least 1", p.EdgeThickness)
	}
	if p.PointSize < 1 {
		return fmt.Errorf("voronoi: point size %d must be at least 1", p.PointSize)
	}
	return nil
}
