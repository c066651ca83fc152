package automation

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/molview/internal/analysis"
	"github.com/san-kum/molview/internal/config"
	"github.com/san-kum/molview/internal/metrics"
	"github.com/san-kum/molview/internal/scene"
	"github.com/san-kum/molview/internal/viewer"
	"golang.org/x/sync/errgroup"
)

// SpinSweep runs one headless viewer per spin value in [Min, Max].
type SpinSweep struct {
	Min, Max float64
	Steps    int
	Ticks    int
	Base     *config.Config
}

// SweepResult is one viewer's outcome. Period is the dominant period of the
// first peripheral atom's height, in ticks; Expected is 2π/spin.
type SweepResult struct {
	Spin     float64
	Rotation scene.Euler
	Period   float64
	Expected float64
	Metrics  map[string]float64
}

// Values returns the spin of each run, evenly spaced.
func (s *SpinSweep) Values() []float64 {
	if s.Steps <= 1 {
		return []float64{s.Min}
	}
	step := (s.Max - s.Min) / float64(s.Steps-1)
	out := make([]float64, s.Steps)
	for i := range out {
		out[i] = s.Min + float64(i)*step
	}
	out[0], out[len(out)-1] = s.Min, s.Max
	return out
}

// RunSweep runs every spin value concurrently and returns results in Values
// order. The first failing run cancels the others and its error is returned.
func RunSweep(ctx context.Context, s *SpinSweep) ([]SweepResult, error) {
	if s.Ticks < analysis.MinSamples {
		return nil, fmt.Errorf("sweep needs at least %d ticks, got %d", analysis.MinSamples, s.Ticks)
	}
	base := s.Base
	if base == nil {
		base = config.DefaultConfig()
	}

	spins := s.Values()
	results := make([]SweepResult, len(spins))

	g, ctx := errgroup.WithContext(ctx)
	for i, spin := range spins {
		i, spin := i, spin
		g.Go(func() error {
			cfg := base.Clone()
			cfg.Spin = spin
			res, err := runOne(ctx, cfg, s.Ticks)
			if err != nil {
				return fmt.Errorf("spin %.4f: %w", spin, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, cfg *config.Config, ticks int) (SweepResult, error) {
	if err := cfg.Validate(); err != nil {
		return SweepResult{}, err
	}
	v, err := viewer.New(cfg, &viewer.Headless{}, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return SweepResult{}, err
	}
	rec := viewer.NewRecorder(1)
	v.AddSampler(rec)
	ms := metrics.Standard()
	for _, m := range ms {
		v.AddSampler(m)
	}

	for n := 0; n < ticks; n++ {
		if err := ctx.Err(); err != nil {
			return SweepResult{}, err
		}
		v.Tick()
	}

	heights := make([]float64, len(rec.Samples))
	for i, smp := range rec.Samples {
		heights[i] = smp.Atoms[0].Y()
	}
	peak, err := analysis.DominantPeriod(heights, 1)
	if err != nil {
		return SweepResult{}, err
	}

	res := SweepResult{
		Spin:     cfg.Spin,
		Rotation: v.Molecule.Rotation,
		Period:   peak.Period,
		Metrics:  metrics.Collect(ms),
	}
	if cfg.Spin > 0 {
		res.Expected = 2 * math.Pi / cfg.Spin
	}
	return res, nil
}
