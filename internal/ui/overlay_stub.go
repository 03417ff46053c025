//go:build !ebiten

package ui

import "voronoi-relief/internal/field"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// SetFields is a no-op in headless builds.
func (o *Overlay) SetFields(*field.Mask, *field.Field) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
