package sim

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rollka/tiltring/internal/output"
	"github.com/rollka/tiltring/internal/render"
	"github.com/rollka/tiltring/internal/sensor"
	"github.com/rollka/tiltring/internal/track"
	"github.com/rollka/tiltring/internal/vecmath"
)

// Runner drives the whole pipeline: sample the tilt, resolve it into a
// gravity vector, advance the marble and push the rendered frame to the
// output device. The tick step is always the nominal 1/rate regardless
// of how long the wall clock took.
type Runner struct {
	physics   *track.Physics
	renderer  *render.Renderer
	source    sensor.Source
	device    output.Device
	logger    *zap.Logger
	metrics   []Metric
	observers []Observer
	marble    track.Marble
}

func New(physics *track.Physics, renderer *render.Renderer, source sensor.Source, device output.Device, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		physics:   physics,
		renderer:  renderer,
		source:    source,
		device:    device,
		logger:    logger,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, start track.Marble, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	dt := 1.0 / float64(cfg.TickRate)
	total := 0
	if cfg.Duration > 0 {
		total = int(cfg.Duration * float64(cfg.TickRate))
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	var pace *time.Ticker
	if cfg.RealTime {
		pace = time.NewTicker(time.Second / time.Duration(cfg.TickRate))
		defer pace.Stop()
	}

	r.logger.Info("run starting",
		zap.Int("tick_rate", cfg.TickRate),
		zap.Float64("duration", cfg.Duration),
		zap.Bool("real_time", cfg.RealTime),
	)

	r.marble = start
	ticks := 0

	for total == 0 || ticks < total {
		if pace != nil {
			select {
			case <-ctx.Done():
				return r.finish(ticks, dt), ctx.Err()
			case <-pace.C:
			}
		} else {
			select {
			case <-ctx.Done():
				return r.finish(ticks, dt), ctx.Err()
			default:
			}
		}

		reading, err := r.source.Sample()
		if err != nil {
			return r.finish(ticks, dt), fmt.Errorf("sim: sample tilt: %w", err)
		}

		g := track.Gravity{
			Direction: vecmath.ResultantDirection(reading.X, reading.Y),
			Magnitude: vecmath.ResultantMagnitude(reading.X, reading.Y),
		}

		r.marble = r.physics.Tick(r.marble, g, dt)
		ticks++
		t := float64(ticks) * dt

		if err := r.device.Write(r.renderer.Render(r.marble.Position)); err != nil {
			return r.finish(ticks, dt), fmt.Errorf("sim: write frame: %w", err)
		}

		for _, m := range r.metrics {
			m.Observe(r.marble, g, t)
		}
		for _, obs := range r.observers {
			obs.OnStep(r.marble, g, t)
		}

		if cfg.SnapshotEvery > 0 && ticks%cfg.SnapshotEvery == 0 {
			r.logger.Debug("tick snapshot",
				zap.Int("tick", ticks),
				zap.Float64("time", t),
				zap.Float64("gravity_dir", g.Direction),
				zap.Float64("gravity_mag", g.Magnitude),
				zap.Float64("speed", r.marble.Speed),
				zap.Float64("position", r.marble.Position),
			)
		}
	}

	result := r.finish(ticks, dt)
	r.logger.Info("run finished",
		zap.Int("ticks", result.Ticks),
		zap.Float64("position", result.Final.Position),
	)
	return result, nil
}

func (r *Runner) finish(ticks int, dt float64) *Result {
	result := &Result{
		Ticks:    ticks,
		Duration: float64(ticks) * dt,
		Final:    r.marble,
		Metrics:  make(map[string]float64),
	}
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result
}

func validateConfig(cfg Config) error {
	if cfg.TickRate <= 0 {
		return fmt.Errorf("sim: tick rate must be positive, got %d", cfg.TickRate)
	}
	if cfg.Duration < 0 {
		return fmt.Errorf("sim: duration must not be negative, got %f", cfg.Duration)
	}
	if cfg.SnapshotEvery < 0 {
		return fmt.Errorf("sim: snapshot interval must not be negative, got %d", cfg.SnapshotEvery)
	}
	return nil
}
