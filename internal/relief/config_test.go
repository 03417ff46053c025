package relief

import (
	"errors"
	"testing"

	"voronoi-relief/internal/field"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative bulge", func(c *Config) { c.BulgeStrength = -0.1 }, "bulge_strength"},
		{"bulge above one", func(c *Config) { c.BulgeStrength = 1.5 }, "bulge_strength"},
		{"roundness too small", func(c *Config) { c.Roundness = 0.4 }, "roundness"},
		{"roundness too large", func(c *Config) { c.Roundness = 6 }, "roundness"},
		{"even smoothness", func(c *Config) { c.Smoothness = 14 }, "smoothness"},
		{"smoothness below range", func(c *Config) { c.Smoothness = 3 }, "smoothness"},
		{"smoothness above range", func(c *Config) { c.Smoothness = 33 }, "smoothness"},
		{"zero light direction", func(c *Config) { c.LightDirection = field.Vec3{} }, "light_direction"},
		{"dim light", func(c *Config) { c.LightIntensity = 0.05 }, "light_intensity"},
		{"ambient above one", func(c *Config) { c.AmbientLight = 1.1 }, "ambient_light"},
		{"negative shadow", func(c *Config) { c.ShadowDepth = -0.2 }, "shadow_depth"},
		{"negative surface scale", func(c *Config) { c.SurfaceScale = -0.1 }, "surface_scale"},
		{"zero complexity", func(c *Config) { c.SurfaceComplexity = 0 }, "surface_complexity"},
		{"wetness above one", func(c *Config) { c.Wetness = 1.2 }, "wetness"},
		{"specular intensity", func(c *Config) { c.SpecularIntensity = 2.5 }, "specular_intensity"},
		{"specular power below one", func(c *Config) { c.SpecularPower = 0.5 }, "specular_power"},
		{"reflection channel", func(c *Config) { c.ReflectionColor[1] = 1.5 }, "reflection_color"},
		{"base channel", func(c *Config) { c.BaseColor[0] = -0.5 }, "base_color"},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)

		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			t.Fatalf("%s: error %v is not a *ConfigError", tc.name, err)
		}
		if cerr.Field != tc.field {
			t.Fatalf("%s: reported field %q, want %q", tc.name, cerr.Field, tc.field)
		}
	}
}
