package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rollka/tiltring/internal/output"
	"github.com/rollka/tiltring/internal/render"
	"github.com/rollka/tiltring/internal/sensor"
	"github.com/rollka/tiltring/internal/track"
)

func testRunner(t *testing.T, src sensor.Source, dev output.Device) *Runner {
	t.Helper()

	physics, err := track.New(track.Geometry{Diameter: 0.035, Friction: 0.01, GravityScale: 1})
	if err != nil {
		t.Fatalf("physics: %v", err)
	}
	layout, err := render.NewLayout([]float64{30, 60, 90, 120, 150, 210, 240, 270, 300, 330})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	return New(physics, render.NewRenderer(layout), src, dev, nil)
}

type testMetric struct {
	count int
}

func (m *testMetric) Name() string { return "test" }
func (m *testMetric) Observe(track.Marble, track.Gravity, float64) {
	m.count++
}
func (m *testMetric) Value() float64 { return float64(m.count) }
func (m *testMetric) Reset()         { m.count = 0 }

type testObserver struct {
	times []float64
}

func (o *testObserver) OnStep(m track.Marble, g track.Gravity, t float64) {
	o.times = append(o.times, t)
}

type erroringSource struct {
	err error
}

func (s erroringSource) Sample() (sensor.Reading, error) { return sensor.Reading{}, s.err }
func (s erroringSource) Close() error                    { return nil }

type erroringDevice struct {
	err error
}

func (d erroringDevice) Write(render.Frame) error { return d.err }
func (d erroringDevice) Close() error             { return nil }

func TestRunnerTickCount(t *testing.T) {
	capture := &output.Capture{}
	r := testRunner(t, sensor.Static{X: 0, Y: -9.8}, capture)

	result, err := r.Run(context.Background(), track.Marble{}, Config{TickRate: 60, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Ticks != 60 {
		t.Errorf("expected 60 ticks, got %d", result.Ticks)
	}
	if math.Abs(result.Duration-1.0) > 1e-9 {
		t.Errorf("expected duration 1.0, got %f", result.Duration)
	}
	if capture.Frames != 60 {
		t.Errorf("expected 60 frames written, got %d", capture.Frames)
	}
	if len(capture.Last) != 10 {
		t.Errorf("expected frames with 10 pixels, got %d", len(capture.Last))
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	r := testRunner(t, sensor.Static{}, output.Null{})

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero tick rate", Config{TickRate: 0, Duration: 1.0}},
		{"negative tick rate", Config{TickRate: -60, Duration: 1.0}},
		{"negative duration", Config{TickRate: 60, Duration: -1.0}},
		{"negative snapshot interval", Config{TickRate: 60, SnapshotEvery: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Run(context.Background(), track.Marble{}, tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunnerContextCancel(t *testing.T) {
	r := testRunner(t, sensor.Static{}, output.Null{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, track.Marble{}, Config{TickRate: 60})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result == nil {
		t.Fatal("expected a partial result")
	}
	if result.Ticks != 0 {
		t.Errorf("expected 0 ticks, got %d", result.Ticks)
	}
}

func TestRunnerMetrics(t *testing.T) {
	r := testRunner(t, sensor.Static{X: 0, Y: -9.8}, output.Null{})

	metric := &testMetric{}
	r.AddMetric(metric)

	result, err := r.Run(context.Background(), track.Marble{}, Config{TickRate: 60, Duration: 0.5})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if metric.count != 30 {
		t.Errorf("expected 30 observations, got %d", metric.count)
	}
	if got, ok := result.Metrics["test"]; !ok || got != 30 {
		t.Errorf("expected metric value 30 in result, got %v", result.Metrics)
	}
}

func TestRunnerMetricsResetBetweenRuns(t *testing.T) {
	r := testRunner(t, sensor.Static{}, output.Null{})

	metric := &testMetric{}
	r.AddMetric(metric)

	cfg := Config{TickRate: 60, Duration: 0.5}
	if _, err := r.Run(context.Background(), track.Marble{}, cfg); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	result, err := r.Run(context.Background(), track.Marble{}, cfg)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if result.Metrics["test"] != 30 {
		t.Errorf("expected metrics to reset between runs, got %f", result.Metrics["test"])
	}
}

func TestRunnerObserver(t *testing.T) {
	r := testRunner(t, sensor.Static{X: 2, Y: 1}, output.Null{})

	obs := &testObserver{}
	r.AddObserver(obs)

	result, err := r.Run(context.Background(), track.Marble{}, Config{TickRate: 100, Duration: 0.1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(obs.times) != result.Ticks {
		t.Fatalf("expected %d steps observed, got %d", result.Ticks, len(obs.times))
	}
	for i := 1; i < len(obs.times); i++ {
		if obs.times[i] <= obs.times[i-1] {
			t.Fatalf("expected strictly increasing times, got %v", obs.times)
		}
	}
	if math.Abs(obs.times[0]-0.01) > 1e-9 {
		t.Errorf("expected first observation at 0.01, got %f", obs.times[0])
	}
}

func TestRunnerSourceError(t *testing.T) {
	sourceErr := errors.New("sensor unplugged")
	r := testRunner(t, erroringSource{err: sourceErr}, output.Null{})

	_, err := r.Run(context.Background(), track.Marble{}, Config{TickRate: 60, Duration: 1.0})
	if !errors.Is(err, sourceErr) {
		t.Errorf("expected the source error, got %v", err)
	}
}

func TestRunnerDeviceError(t *testing.T) {
	deviceErr := errors.New("strip disconnected")
	r := testRunner(t, sensor.Static{}, erroringDevice{err: deviceErr})

	_, err := r.Run(context.Background(), track.Marble{}, Config{TickRate: 60, Duration: 1.0})
	if !errors.Is(err, deviceErr) {
		t.Errorf("expected the device error, got %v", err)
	}
}

func TestSweep(t *testing.T) {
	specs := []SweepSpec{
		{Label: "ice", Geometry: track.Geometry{Diameter: 0.035, Friction: 0.001, GravityScale: 1}, Seed: 1},
		{Label: "classic", Geometry: track.Geometry{Diameter: 0.035, Friction: 0.01, GravityScale: 1}, Seed: 1},
		{Label: "honey", Geometry: track.Geometry{Diameter: 0.035, Friction: 0.15, GravityScale: 1}, Seed: 1},
	}

	layout, err := render.NewLayout([]float64{30, 60, 90, 120, 150, 210, 240, 270, 300, 330})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	results, err := Sweep(context.Background(), specs, SweepOptions{
		Layout:    layout,
		Amplitude: 6,
		Step:      0.01,
		Config:    Config{TickRate: 60, Duration: 0.5},
		Metrics:   func() []Metric { return []Metric{&testMetric{}} },
	})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Label != specs[i].Label {
			t.Errorf("expected label %s at %d, got %s", specs[i].Label, i, res.Label)
		}
		if res.Result == nil || res.Result.Ticks != 30 {
			t.Errorf("%s: expected 30 ticks, got %+v", res.Label, res.Result)
		}
		if res.Result.Metrics["test"] != 30 {
			t.Errorf("%s: expected per-run metric instances, got %f", res.Label, res.Result.Metrics["test"])
		}
	}
}

func TestSweepPropagatesGeometryError(t *testing.T) {
	specs := []SweepSpec{
		{Label: "broken", Geometry: track.Geometry{Diameter: -1, Friction: 0.01, GravityScale: 1}},
	}

	layout, err := render.NewLayout([]float64{30})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	if _, err := Sweep(context.Background(), specs, SweepOptions{
		Layout: layout,
		Config: Config{TickRate: 60, Duration: 0.1},
	}); err == nil {
		t.Error("expected error for invalid geometry")
	}
}
