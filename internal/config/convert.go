package config

import (
	"image/color"

	"voronoi-relief/internal/field"
	"voronoi-relief/internal/relief"
	"voronoi-relief/internal/voronoi"
)

// ReliefConfig converts the effect section into the pipeline's validated
// parameter set. Byte colors map onto [0,1] channels.
func (e EffectConfig) ReliefConfig() relief.Config {
	return relief.Config{
		BulgeStrength: e.BulgeStrength,
		Roundness:     e.Roundness,
		Smoothness:    e.Smoothness,
		ShadowDepth:   e.ShadowDepth,
		LightDirection: field.Vec3{
			X: e.LightDirection[0],
			Y: e.LightDirection[1],
			Z: e.LightDirection[2],
		},
		LightIntensity:    e.LightIntensity,
		AmbientLight:      e.AmbientLight,
		SurfaceEnabled:    e.SurfaceEnabled,
		SurfaceScale:      e.SurfaceScale,
		SurfaceComplexity: e.SurfaceComplexity,
		SurfaceSeed:       e.SurfaceSeed,
		Wetness:           e.Wetness,
		SpecularIntensity: e.SpecularIntensity,
		SpecularPower:     e.SpecularPower,
		ReflectionColor:   bytesToChannels(e.ReflectionColor),
		BaseColor:         bytesToChannels(e.BaseColor),
	}
}

// VoronoiParams converts the tessellation section into voronoi.Params.
func (v VoronoiConfig) VoronoiParams() voronoi.Params {
	return voronoi.Params{
		Width:           v.Width,
		Height:          v.Height,
		NumPoints:       v.NumPoints,
		Distribution:    voronoi.Distribution(v.Distribution),
		ShowPoints:      v.ShowPoints,
		EdgeThickness:   v.EdgeThickness,
		PointSize:       v.PointSize,
		EdgeColor:       rgb(v.EdgeColor),
		PointColor:      rgb(v.PointColor),
		BackgroundColor: rgb(v.Background),
	}
}

func bytesToChannels(c [3]uint8) [3]float64 {
	return [3]float64{
		float64(c[0]) / 255,
		float64(c[1]) / 255,
		float64(c[2]) / 255,
	}
}

func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
