// Package batch renders collections of voronoi texture pairs, one flat
// diagram and one relief-shaded rendering per image, and records the
// parameters of every pair in a CSV sheet.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"voronoi-relief/internal/config"
	"voronoi-relief/internal/logger"
	"voronoi-relief/internal/relief"
	"voronoi-relief/internal/render"
	"voronoi-relief/internal/voronoi"
	"voronoi-relief/pkg/core"
)

// Run generates cfg.Batch.NumImages image pairs under cfg.Batch.OutputDir
// and writes parameters.csv alongside them. Sampling happens up front on a
// single RNG, so a nonzero batch seed makes the run reproducible; rendering
// is spread over cfg.Batch.Workers goroutines.
func Run(cfg *config.Config) error {
	if cfg.Batch.NumImages < 1 {
		return fmt.Errorf("batch: num_images must be at least 1, got %d", cfg.Batch.NumImages)
	}
	if err := cfg.Effect.ReliefConfig().Validate(); err != nil {
		return err
	}
	if err := cfg.Voronoi.VoronoiParams().Validate(); err != nil {
		return err
	}
	if cfg.Batch.Randomize && !hasOdd(cfg.Batch.Ranges.Smoothness) {
		r := cfg.Batch.Ranges.Smoothness
		return fmt.Errorf("batch: smoothness range [%d,%d] contains no odd value", r.Min, r.Max)
	}

	seed := cfg.Batch.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := cfg.Batch.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if err := os.MkdirAll(cfg.Batch.OutputDir, 0o755); err != nil {
		return fmt.Errorf("batch: output dir: %w", err)
	}

	log := logger.Sugar
	log.Infow("batch started",
		"images", cfg.Batch.NumImages,
		"workers", workers,
		"seed", seed,
		"out", cfg.Batch.OutputDir,
	)

	s := newSampler(cfg, core.NewRNG(seed))
	jobs := make([]job, cfg.Batch.NumImages)
	for i := range jobs {
		jobs[i] = s.next(i)
	}

	start := time.Now()
	records := make([]Record, len(jobs))
	var g errgroup.Group
	g.SetLimit(workers)
	for _, j := range jobs {
		g.Go(func() error {
			if err := renderPair(cfg.Batch.OutputDir, j, cfg.Batch.ThumbMax); err != nil {
				return fmt.Errorf("batch: pair %04d: %w", j.index, err)
			}
			records[j.index] = newRecord(j)
			log.Debugw("pair rendered", "index", j.index,
				"size", fmt.Sprintf("%dx%d", j.voronoi.Width, j.voronoi.Height))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sheet := filepath.Join(cfg.Batch.OutputDir, "parameters.csv")
	if err := WriteSheet(sheet, records); err != nil {
		return err
	}
	log.Infow("batch finished",
		"images", len(records),
		"elapsed", time.Since(start).Round(time.Millisecond),
		"sheet", sheet,
	)
	return nil
}

func pairName(index int) string {
	return fmt.Sprintf("voronoi_pair_%04d", index)
}

// renderPair draws the diagram, runs the relief pipeline on its border mask
// and saves both images, plus an optional scaled-down preview.
func renderPair(dir string, j job, thumbMax int) error {
	d, err := voronoi.Generate(j.voronoi, core.NewRNG(j.pointSeed))
	if err != nil {
		return err
	}

	shaded, err := relief.Render(d.Mask, nil, j.effect)
	if err != nil {
		return err
	}
	rgba := render.ToRGBA(shaded)

	render.Invert(d.Flat)
	name := pairName(j.index)
	if err := render.SavePNG(filepath.Join(dir, name+"_original.png"), d.Flat); err != nil {
		return err
	}
	if err := render.SavePNG(filepath.Join(dir, name+"_3d_effect.png"), rgba); err != nil {
		return err
	}
	if thumbMax > 0 {
		thumb := render.FitInto(rgba, thumbMax, thumbMax)
		if err := render.SavePNG(filepath.Join(dir, name+"_thumb.png"), thumb); err != nil {
			return err
		}
	}
	return nil
}
