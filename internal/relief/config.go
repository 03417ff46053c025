package relief

import (
	"fmt"

	"voronoi-relief/internal/field"
)

// Config is the full validated parameter set for one render. It is built
// once, checked with Validate, and passed by value through the pipeline;
// no stage mutates it.
type Config struct {
	// Bulge shape.
	BulgeStrength float64 // height multiplier for cell bulges, [0,1]
	Roundness     float64 // power-curve exponent, [0.5,5]; smaller = sharper peaks
	Smoothness    int     // blur kernel width, odd, 5..31

	// Lighting.
	LightDirection field.Vec3 // need not be pre-normalized, must be non-zero
	LightIntensity float64    // [0.1,2]
	AmbientLight   float64    // [0,1]
	ShadowDepth    float64    // valley darkening, [0,1]

	// Base-surface undulation.
	SurfaceEnabled    bool
	SurfaceScale      float64 // undulation amplitude, [0,1]
	SurfaceComplexity int     // noise octaves, 1..5
	SurfaceSeed       *int64  // nil means draw a fresh seed per render

	// Wet-look specular.
	Wetness           float64    // diffuse/specular blend weight, [0,1]
	SpecularIntensity float64    // [0,2]
	SpecularPower     float64    // Blinn-Phong exponent, [1,100]
	ReflectionColor   [3]float64 // highlight tint, channels in [0,1]

	// Fill color used when no base image is supplied, channels in [0,1].
	BaseColor [3]float64
}

// DefaultConfig returns the standard render parameters.
func DefaultConfig() Config {
	return Config{
		BulgeStrength:     0.5,
		Roundness:         2.0,
		Smoothness:        15,
		LightDirection:    field.Vec3{X: 0.5, Y: 0.5, Z: 1.0},
		LightIntensity:    1.2,
		AmbientLight:      0.3,
		ShadowDepth:       0.7,
		SurfaceEnabled:    true,
		SurfaceScale:      0.3,
		SurfaceComplexity: 2,
		Wetness:           0.7,
		SpecularIntensity: 1.0,
		SpecularPower:     30.0,
		ReflectionColor:   [3]float64{1, 1, 1},
		BaseColor:         [3]float64{1, 1, 1},
	}
}

// Validate checks every parameter against its documented range and returns a
// *ConfigError for the first violation. It runs before any array work.
func (c Config) Validate() error {
	if c.BulgeStrength < 0 || c.BulgeStrength > 1 {
		return &ConfigError{Field: "bulge_strength", Reason: fmt.Sprintf("%v outside [0,1]", c.BulgeStrength)}
	}
	if c.Roundness < 0.5 || c.Roundness > 5 {
		return &ConfigError{Field: "roundness", Reason: fmt.Sprintf("%v outside [0.5,5]", c.Roundness)}
	}
	if c.Smoothness < 5 || c.Smoothness > 31 {
		return &ConfigError{Field: "smoothness", Reason: fmt.Sprintf("%d outside 5..31", c.Smoothness)}
	}
	if c.Smoothness%2 == 0 {
		return &ConfigError{Field: "smoothness", Reason: fmt.Sprintf("%d is even, kernel width must be odd", c.Smoothness)}
	}
	if c.LightDirection.Length() == 0 {
		return &ConfigError{Field: "light_direction", Reason: "zero-length vector"}
	}
	if c.LightIntensity < 0.1 || c.LightIntensity > 2 {
		return &ConfigError{Field: "light_intensity", Reason: fmt.Sprintf("%v outside [0.1,2]", c.LightIntensity)}
	}
	if c.AmbientLight < 0 || c.AmbientLight > 1 {
		return &ConfigError{Field: "ambient_light", Reason: fmt.Sprintf("%v outside [0,1]", c.AmbientLight)}
	}
	if c.ShadowDepth < 0 || c.ShadowDepth > 1 {
		return &ConfigError{Field: "shadow_depth", Reason: fmt.Sprintf("%v outside [0,1]", c.ShadowDepth)}
	}
	if c.SurfaceScale < 0 || c.SurfaceScale > 1 {
		return &ConfigError{Field: "surface_scale", Reason: fmt.Sprintf("%v outside [0,1]", c.SurfaceScale)}
	}
	if c.SurfaceComplexity < 1 || c.SurfaceComplexity > 5 {
		return &ConfigError{Field: "surface_complexity", Reason: fmt.Sprintf("%d outside 1..5", c.SurfaceComplexity)}
	}
	if c.Wetness < 0 || c.Wetness > 1 {
		return &ConfigError{Field: "wetness", Reason: fmt.Sprintf("%v outside [0,1]", c.Wetness)}
	}
	if c.SpecularIntensity < 0 || c.SpecularIntensity > 2 {
		return &ConfigError{Field: "specular_intensity", Reason: fmt.Sprintf("%v outside [0,2]", c.SpecularIntensity)}
	}
	if c.SpecularPower < 1 || c.SpecularPower > 100 {
		return &ConfigError{Field: "specular_power", Reason: fmt.Sprintf("%v outside [1,100]", c.SpecularPower)}
	}
	for i, v := range c.ReflectionColor {
		if v < 0 || v > 1 {
			return &ConfigError{Field: "reflection_color", Reason: fmt.Sprintf("channel %d = %v outside [0,1]", i, v)}
		}
	}
	for i, v := range c.BaseColor {
		if v < 0 || v > 1 {
			return &ConfigError{Field: "base_color", Reason: fmt.Sprintf("channel %d = %v outside [0,1]", i, v)}
		}
	}
	return nil
}

// GradientStrength scales the Sobel gradients so the rendered relief tracks
// the visible bulge height: taller bulges steepen the normals, flatter
// roundness settings soften them.
func (c Config) GradientStrength() float64 {
	return 4 * c.BulgeStrength / c.Roundness
}

// Light collects the per-render lighting parameters for the shader.
func (c Config) Light() Light {
	return Light{
		Direction:         c.LightDirection,
		Intensity:         c.LightIntensity,
		Ambient:           c.AmbientLight,
		ShadowDepth:       c.ShadowDepth,
		Wetness:           c.Wetness,
		SpecularIntensity: c.SpecularIntensity,
		SpecularPower:     c.SpecularPower,
		Reflection:        c.ReflectionColor,
	}
}
