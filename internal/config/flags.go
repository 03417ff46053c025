package config

import "flag"

// Bind attaches the flag-overridable settings to the provided FlagSet.
// Values default to whatever the file layer produced, so flags win.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Voronoi.Width, "width", c.Voronoi.Width, "image width in pixels")
	fs.IntVar(&c.Voronoi.Height, "height", c.Voronoi.Height, "image height in pixels")
	fs.IntVar(&c.Voronoi.NumPoints, "points", c.Voronoi.NumPoints, "number of cell seed points")
	fs.StringVar(&c.Voronoi.Distribution, "distribution", c.Voronoi.Distribution, "point distribution: random or grid")
	fs.Int64Var(&c.Voronoi.Seed, "seed", c.Voronoi.Seed, "seed for point sampling")

	fs.Float64Var(&c.Effect.BulgeStrength, "bulge", c.Effect.BulgeStrength, "bulge strength [0,1]")
	fs.Float64Var(&c.Effect.Wetness, "wetness", c.Effect.Wetness, "wet-look blend weight [0,1]")

	fs.StringVar(&c.Logging.Level, "log-level", c.Logging.Level, "log level: debug, info, warn, error")
	fs.StringVar(&c.Logging.LogFile, "log-file", c.Logging.LogFile, "optional rotating log file path")
}

// BindBatch attaches the batch-only flags to the provided FlagSet.
func (c *Config) BindBatch(fs *flag.FlagSet) {
	fs.IntVar(&c.Batch.NumImages, "n", c.Batch.NumImages, "number of image pairs to generate")
	fs.StringVar(&c.Batch.OutputDir, "out", c.Batch.OutputDir, "directory for generated image pairs")
	fs.IntVar(&c.Batch.Workers, "workers", c.Batch.Workers, "parallel workers (0 = one per CPU)")
	fs.IntVar(&c.Batch.ThumbMax, "thumbs", c.Batch.ThumbMax, "save preview thumbnails fitting this square size (0 = off)")
	fs.Int64Var(&c.Batch.Seed, "batch-seed", c.Batch.Seed, "master seed for the batch (0 = from clock)")
	fs.BoolVar(&c.Batch.Randomize, "randomize", c.Batch.Randomize, "randomize parameters per image within the configured ranges")
}
