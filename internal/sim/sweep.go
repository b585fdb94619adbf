package sim

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/rollka/tiltring/internal/output"
	"github.com/rollka/tiltring/internal/render"
	"github.com/rollka/tiltring/internal/sensor"
	"github.com/rollka/tiltring/internal/track"
)

// SweepSpec is one variant in a parameter sweep.
type SweepSpec struct {
	Label    string
	Geometry track.Geometry
	Seed     int64
}

// SweepOptions is shared across all variants. Metrics is a factory so
// each concurrent run observes through its own instances.
type SweepOptions struct {
	Layout    render.Layout
	Amplitude float64
	Step      float64
	Config    Config
	Metrics   func() []Metric
	Logger    *zap.Logger
}

type SweepResult struct {
	Label  string
	Result *Result
}

// Sweep runs every variant concurrently against its own seeded
// wandering tilt and collects the results in spec order.
func Sweep(ctx context.Context, specs []SweepSpec, opts SweepOptions) ([]SweepResult, error) {
	results := make([]SweepResult, len(specs))
	errs := make([]error, len(specs))

	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(idx int, spec SweepSpec) {
			defer wg.Done()

			physics, err := track.New(spec.Geometry)
			if err != nil {
				errs[idx] = err
				return
			}

			source := sensor.NewWander(spec.Seed, opts.Amplitude, opts.Step)
			runner := New(physics, render.NewRenderer(opts.Layout), source, output.Null{}, opts.Logger)
			if opts.Metrics != nil {
				for _, m := range opts.Metrics() {
					runner.AddMetric(m)
				}
			}

			res, err := runner.Run(ctx, track.Marble{}, opts.Config)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx] = SweepResult{Label: spec.Label, Result: res}
		}(i, spec)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
