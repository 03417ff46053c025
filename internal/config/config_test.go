package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Voronoi.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Voronoi.Width)
	}
	if cfg.Voronoi.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Voronoi.Height)
	}
	if cfg.Voronoi.NumPoints != 50 {
		t.Errorf("expected 50 points, got %d", cfg.Voronoi.NumPoints)
	}
	if cfg.Effect.Roundness != 2.0 {
		t.Errorf("expected roundness 2.0, got %f", cfg.Effect.Roundness)
	}
	if cfg.Effect.Smoothness%2 == 0 {
		t.Errorf("default smoothness %d must be odd", cfg.Effect.Smoothness)
	}
	if !cfg.Effect.SurfaceEnabled {
		t.Error("expected surface to be enabled by default")
	}
	if cfg.Effect.SurfaceSeed != nil {
		t.Error("expected no default surface seed")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Effect.ReliefConfig().Validate(); err != nil {
		t.Fatalf("default effect section invalid: %v", err)
	}
	if err := cfg.Voronoi.VoronoiParams().Validate(); err != nil {
		t.Fatalf("default voronoi section invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
voronoi:
  width: 1024
  height: 768
  num_points: 80
  distribution: grid

effect:
  bulge_strength: 0.9
  wetness: 0.25
  surface_seed: 1234

batch:
  num_images: 3
  output_dir: out
  randomize: true

logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Voronoi.Width != 1024 || cfg.Voronoi.Height != 768 {
		t.Errorf("size not loaded: %dx%d", cfg.Voronoi.Width, cfg.Voronoi.Height)
	}
	if cfg.Voronoi.Distribution != "grid" {
		t.Errorf("distribution not loaded: %s", cfg.Voronoi.Distribution)
	}
	if cfg.Effect.BulgeStrength != 0.9 {
		t.Errorf("bulge strength not loaded: %f", cfg.Effect.BulgeStrength)
	}
	if cfg.Effect.SurfaceSeed == nil || *cfg.Effect.SurfaceSeed != 1234 {
		t.Errorf("surface seed not loaded: %v", cfg.Effect.SurfaceSeed)
	}
	// Values absent from the file keep their defaults.
	if cfg.Effect.Roundness != 2.0 {
		t.Errorf("roundness default lost: %f", cfg.Effect.Roundness)
	}
	if !cfg.Batch.Randomize || cfg.Batch.NumImages != 3 {
		t.Errorf("batch section not loaded: %+v", cfg.Batch)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level not loaded: %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	if err := fs.Parse([]string{"-width", "320", "-points", "12", "-wetness", "0.1"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Voronoi.Width != 320 {
		t.Errorf("width flag not applied: %d", cfg.Voronoi.Width)
	}
	if cfg.Voronoi.NumPoints != 12 {
		t.Errorf("points flag not applied: %d", cfg.Voronoi.NumPoints)
	}
	if cfg.Effect.Wetness != 0.1 {
		t.Errorf("wetness flag not applied: %f", cfg.Effect.Wetness)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Voronoi.NumPoints = 77

	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Voronoi.NumPoints != 77 {
		t.Fatalf("round trip lost num_points: %d", loaded.Voronoi.NumPoints)
	}
}
