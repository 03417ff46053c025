package batch

import (
	"fmt"
	"hash/fnv"

	"voronoi-relief/internal/config"
	"voronoi-relief/internal/relief"
	"voronoi-relief/internal/voronoi"
	"voronoi-relief/pkg/core"
)

// maxSampleAttempts bounds the retries spent looking for a parameter set the
// batch has not produced yet.
const maxSampleAttempts = 20

// job is one fully sampled image pair: everything a worker needs to render
// it without touching shared state.
type job struct {
	index       int
	voronoi     voronoi.Params
	effect      relief.Config
	pointSeed   int64
	surfaceSeed int64
}

// sampler draws per-image parameter sets from the configured ranges and
// rejects duplicates by fingerprint. It runs on a single RNG before any
// worker starts, so a batch seed fixes the whole batch.
type sampler struct {
	cfg  *config.Config
	rng  *core.RNG
	seen map[uint64]struct{}
}

func newSampler(cfg *config.Config, rng *core.RNG) *sampler {
	return &sampler{cfg: cfg, rng: rng, seen: make(map[uint64]struct{})}
}

// next samples the parameters for image i, retrying a bounded number of
// times when the fingerprint collides with an earlier image.
func (s *sampler) next(i int) job {
	var j job
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		j = s.draw(i)
		fp := fingerprint(j)
		if _, dup := s.seen[fp]; !dup {
			s.seen[fp] = struct{}{}
			return j
		}
	}
	// Give up on uniqueness after the attempt budget, like the duplicate
	// warning path of the range generator.
	return j
}

func (s *sampler) draw(i int) job {
	vp := s.cfg.Voronoi.VoronoiParams()
	ec := s.cfg.Effect.ReliefConfig()
	r := s.cfg.Batch.Ranges

	// Every image gets its own geometry: point count, placement and seeds
	// vary even when the effect parameters are static.
	vp.Width = s.rng.IntBetween(r.Width.Min, r.Width.Max)
	vp.Height = s.rng.IntBetween(r.Height.Min, r.Height.Max)
	vp.NumPoints = s.rng.IntBetween(r.NumPoints.Min, r.NumPoints.Max)
	if s.rng.Bool() {
		vp.Distribution = voronoi.DistGrid
	} else {
		vp.Distribution = voronoi.DistRandom
	}

	if s.cfg.Batch.Randomize {
		vp.EdgeThickness = s.rng.IntBetween(r.EdgeThickness.Min, r.EdgeThickness.Max)

		ec.BulgeStrength = s.uniform(r.BulgeStrength)
		ec.Roundness = s.uniform(r.Roundness)
		ec.Smoothness = s.oddBetween(r.Smoothness)
		ec.ShadowDepth = s.uniform(r.ShadowDepth)
		ec.LightIntensity = s.uniform(r.LightIntensity)
		ec.AmbientLight = s.uniform(r.AmbientLight)
		ec.SurfaceScale = s.uniform(r.SurfaceScale)
		ec.SurfaceComplexity = s.rng.IntBetween(r.SurfaceComplexity.Min, r.SurfaceComplexity.Max)
		ec.Wetness = s.uniform(r.Wetness)
		ec.SpecularIntensity = s.uniform(r.SpecularIntensity)
		ec.SpecularPower = s.uniform(r.SpecularPower)
		ec.LightDirection.X = s.uniform(r.LightDirectionX)
		ec.LightDirection.Y = s.uniform(r.LightDirectionY)
		ec.LightDirection.Z = s.uniform(r.LightDirectionZ)
	}

	surfaceSeed := s.rng.Int64()
	ec.SurfaceSeed = &surfaceSeed

	return job{
		index:       i,
		voronoi:     vp,
		effect:      ec,
		pointSeed:   s.rng.Int64(),
		surfaceSeed: surfaceSeed,
	}
}

func (s *sampler) uniform(r config.FloatRange) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return s.rng.Uniform(r.Min, r.Max)
}

// oddBetween samples an odd integer from the range, nudging even draws to a
// neighbor inside the range; blur kernels need odd widths. Run rejects
// ranges without an odd value before any sampling happens.
func (s *sampler) oddBetween(r config.IntRange) int {
	v := s.rng.IntBetween(r.Min, r.Max)
	if v%2 == 0 {
		switch {
		case v < r.Max:
			v++
		case v-1 >= r.Min:
			v--
		}
	}
	return v
}

// hasOdd reports whether the range contains at least one odd value. A range
// spanning two or more values always does; only a collapsed even range is
// odd-free (IntBetween collapses Max <= Min to Min).
func hasOdd(r config.IntRange) bool {
	return r.Max > r.Min || r.Min%2 != 0
}

// fingerprint hashes the parameters that make two images visually distinct.
func fingerprint(j job) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%dx%d_%d_%s_%d_", j.voronoi.Width, j.voronoi.Height,
		j.voronoi.NumPoints, j.voronoi.Distribution, j.voronoi.EdgeThickness)
	fmt.Fprintf(h, "%.3f_%.3f_%d_%.3f_%.3f_%.3f_",
		j.effect.BulgeStrength, j.effect.Roundness, j.effect.Smoothness,
		j.effect.ShadowDepth, j.effect.LightIntensity, j.effect.AmbientLight)
	fmt.Fprintf(h, "%.3f_%d_%d_", j.effect.SurfaceScale, j.effect.SurfaceComplexity, j.surfaceSeed)
	fmt.Fprintf(h, "%.3f_%.3f_%.3f_", j.effect.Wetness, j.effect.SpecularIntensity, j.effect.SpecularPower)
	fmt.Fprintf(h, "%.3f_%.3f_%.3f", j.effect.LightDirection.X, j.effect.LightDirection.Y, j.effect.LightDirection.Z)
	return h.Sum64()
}
