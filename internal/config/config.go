// Package config handles generator configuration: defaults, YAML files and
// command-line flag overrides.
package config

// Config holds all generator settings.
type Config struct {
	Voronoi VoronoiConfig `yaml:"voronoi"`
	Effect  EffectConfig  `yaml:"effect"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// VoronoiConfig holds tessellation settings.
type VoronoiConfig struct {
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	NumPoints     int      `yaml:"num_points"`
	Distribution  string   `yaml:"distribution"`
	ShowPoints    bool     `yaml:"show_points"`
	EdgeThickness int      `yaml:"edge_thickness"`
	PointSize     int      `yaml:"point_size"`
	EdgeColor     [3]uint8 `yaml:"edge_color"`
	PointColor    [3]uint8 `yaml:"point_color"`
	Background    [3]uint8 `yaml:"background_color"`
	Seed          int64    `yaml:"seed"`
}

// EffectConfig holds the relief-shading parameters.
type EffectConfig struct {
	BulgeStrength float64 `yaml:"bulge_strength"`
	Roundness     float64 `yaml:"roundness"`
	Smoothness    int     `yaml:"smoothness"`
	ShadowDepth   float64 `yaml:"shadow_depth"`

	LightDirection [3]float64 `yaml:"light_direction"`
	LightIntensity float64    `yaml:"light_intensity"`
	AmbientLight   float64    `yaml:"ambient_light"`

	SurfaceEnabled    bool    `yaml:"surface_enabled"`
	SurfaceScale      float64 `yaml:"surface_scale"`
	SurfaceComplexity int     `yaml:"surface_complexity"`
	SurfaceSeed       *int64  `yaml:"surface_seed"`

	Wetness           float64  `yaml:"wetness"`
	SpecularIntensity float64  `yaml:"specular_intensity"`
	SpecularPower     float64  `yaml:"specular_power"`
	ReflectionColor   [3]uint8 `yaml:"reflection_color"`
	BaseColor         [3]uint8 `yaml:"base_color"`
}

// BatchConfig holds pair-generation settings.
type BatchConfig struct {
	NumImages int    `yaml:"num_images"`
	OutputDir string `yaml:"output_dir"`
	Workers   int    `yaml:"workers"`
	Seed      int64  `yaml:"seed"`

	// ThumbMax, when positive, also saves a preview of each shaded render
	// scaled down to fit within a ThumbMax square.
	ThumbMax int `yaml:"thumb_max"`

	// Randomize draws each image's parameters from Ranges instead of using
	// the static Voronoi/Effect sections.
	Randomize bool         `yaml:"randomize"`
	Ranges    EffectRanges `yaml:"ranges"`
}

// IntRange is an inclusive integer interval for randomized parameters.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRange is an inclusive float interval for randomized parameters.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// EffectRanges bounds every randomizable parameter for batch generation.
type EffectRanges struct {
	Width         IntRange `yaml:"width"`
	Height        IntRange `yaml:"height"`
	NumPoints     IntRange `yaml:"num_points"`
	EdgeThickness IntRange `yaml:"edge_thickness"`

	BulgeStrength FloatRange `yaml:"bulge_strength"`
	Roundness     FloatRange `yaml:"roundness"`
	Smoothness    IntRange   `yaml:"smoothness"`
	ShadowDepth   FloatRange `yaml:"shadow_depth"`

	LightIntensity FloatRange `yaml:"light_intensity"`
	AmbientLight   FloatRange `yaml:"ambient_light"`

	SurfaceScale      FloatRange `yaml:"surface_scale"`
	SurfaceComplexity IntRange   `yaml:"surface_complexity"`

	Wetness           FloatRange `yaml:"wetness"`
	SpecularIntensity FloatRange `yaml:"specular_intensity"`
	SpecularPower     FloatRange `yaml:"specular_power"`

	LightDirectionX FloatRange `yaml:"light_direction_x"`
	LightDirectionY FloatRange `yaml:"light_direction_y"`
	LightDirectionZ FloatRange `yaml:"light_direction_z"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Voronoi: VoronoiConfig{
			Width:         800,
			Height:        600,
			NumPoints:     50,
			Distribution:  "random",
			ShowPoints:    false,
			EdgeThickness: 1,
			PointSize:     3,
			EdgeColor:     [3]uint8{0, 0, 0},
			PointColor:    [3]uint8{255, 0, 0},
			Background:    [3]uint8{255, 255, 255},
			Seed:          42,
		},
		Effect: EffectConfig{
			BulgeStrength:     0.5,
			Roundness:         2.0,
			Smoothness:        15,
			ShadowDepth:       0.7,
			LightDirection:    [3]float64{0.5, 0.5, 1.0},
			LightIntensity:    1.2,
			AmbientLight:      0.3,
			SurfaceEnabled:    true,
			SurfaceScale:      0.3,
			SurfaceComplexity: 2,
			Wetness:           0.7,
			SpecularIntensity: 1.0,
			SpecularPower:     30.0,
			ReflectionColor:   [3]uint8{255, 255, 255},
			BaseColor:         [3]uint8{255, 255, 255},
		},
		Batch: BatchConfig{
			NumImages: 10,
			OutputDir: "voronoi_pairs",
			Workers:   0, // 0 means one worker per CPU
			ThumbMax:  0, // 0 disables thumbnails
			Seed:      0, // 0 means derive from the clock
			Randomize: false,
			Ranges: EffectRanges{
				Width:             IntRange{Min: 800, Max: 800},
				Height:            IntRange{Min: 600, Max: 600},
				NumPoints:         IntRange{Min: 20, Max: 100},
				EdgeThickness:     IntRange{Min: 1, Max: 3},
				BulgeStrength:     FloatRange{Min: 0.3, Max: 1.0},
				Roundness:         FloatRange{Min: 1.0, Max: 3.0},
				Smoothness:        IntRange{Min: 5, Max: 31},
				ShadowDepth:       FloatRange{Min: 0.4, Max: 0.9},
				LightIntensity:    FloatRange{Min: 0.8, Max: 1.6},
				AmbientLight:      FloatRange{Min: 0.1, Max: 0.5},
				SurfaceScale:      FloatRange{Min: 0.1, Max: 0.6},
				SurfaceComplexity: IntRange{Min: 1, Max: 4},
				Wetness:           FloatRange{Min: 0.2, Max: 1.0},
				SpecularIntensity: FloatRange{Min: 0.5, Max: 1.5},
				SpecularPower:     FloatRange{Min: 10, Max: 60},
				LightDirectionX:   FloatRange{Min: 0.2, Max: 0.8},
				LightDirectionY:   FloatRange{Min: 0.2, Max: 0.8},
				LightDirectionZ:   FloatRange{Min: 0.8, Max: 1.2},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
