package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Record is one row of the parameter sheet written next to the generated
// pairs. Field order matches the CSV header.
type Record struct {
	ImageName         string
	Width             int
	Height            int
	NumPoints         int
	Distribution      string
	EdgeThickness     int
	PointSeed         int64
	BulgeStrength     float64
	Roundness         float64
	Smoothness        int
	ShadowDepth       float64
	LightIntensity    float64
	AmbientLight      float64
	SurfaceEnabled    bool
	SurfaceScale      float64
	SurfaceComplexity int
	SurfaceSeed       int64
	Wetness           float64
	SpecularIntensity float64
	SpecularPower     float64
	LightDirX         float64
	LightDirY         float64
	LightDirZ         float64
}

var csvHeader = []string{
	"image_name", "width", "height", "num_points", "distribution",
	"edge_thickness", "point_seed", "bulge_strength", "roundness",
	"smoothness", "shadow_depth", "light_intensity", "ambient_light",
	"surface_enabled", "surface_scale", "surface_complexity", "surface_seed",
	"wetness", "specular_intensity", "specular_power",
	"light_dir_x", "light_dir_y", "light_dir_z",
}

func (r Record) row() []string {
	return []string{
		r.ImageName,
		strconv.Itoa(r.Width),
		strconv.Itoa(r.Height),
		strconv.Itoa(r.NumPoints),
		r.Distribution,
		strconv.Itoa(r.EdgeThickness),
		strconv.FormatInt(r.PointSeed, 10),
		formatFloat(r.BulgeStrength),
		formatFloat(r.Roundness),
		strconv.Itoa(r.Smoothness),
		formatFloat(r.ShadowDepth),
		formatFloat(r.LightIntensity),
		formatFloat(r.AmbientLight),
		strconv.FormatBool(r.SurfaceEnabled),
		formatFloat(r.SurfaceScale),
		strconv.Itoa(r.SurfaceComplexity),
		strconv.FormatInt(r.SurfaceSeed, 10),
		formatFloat(r.Wetness),
		formatFloat(r.SpecularIntensity),
		formatFloat(r.SpecularPower),
		formatFloat(r.LightDirX),
		formatFloat(r.LightDirY),
		formatFloat(r.LightDirZ),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// WriteSheet writes the parameter records as a CSV file at path.
func WriteSheet(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return fmt.Errorf("write sheet header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(r.row()); err != nil {
			f.Close()
			return fmt.Errorf("write sheet row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush sheet: %w", err)
	}
	return f.Close()
}

func newRecord(j job) Record {
	return Record{
		ImageName:         pairName(j.index),
		Width:             j.voronoi.Width,
		Height:            j.voronoi.Height,
		NumPoints:         j.voronoi.NumPoints,
		Distribution:      string(j.voronoi.Distribution),
		EdgeThickness:     j.voronoi.EdgeThickness,
		PointSeed:         j.pointSeed,
		BulgeStrength:     j.effect.BulgeStrength,
		Roundness:         j.effect.Roundness,
		Smoothness:        j.effect.Smoothness,
		ShadowDepth:       j.effect.ShadowDepth,
		LightIntensity:    j.effect.LightIntensity,
		AmbientLight:      j.effect.AmbientLight,
		SurfaceEnabled:    j.effect.SurfaceEnabled,
		SurfaceScale:      j.effect.SurfaceScale,
		SurfaceComplexity: j.effect.SurfaceComplexity,
		SurfaceSeed:       j.surfaceSeed,
		Wetness:           j.effect.Wetness,
		SpecularIntensity: j.effect.SpecularIntensity,
		SpecularPower:     j.effect.SpecularPower,
		LightDirX:         j.effect.LightDirection.X,
		LightDirY:         j.effect.LightDirection.Y,
		LightDirZ:         j.effect.LightDirection.Z,
	}
}
