package sim

import "github.com/rollka/tiltring/internal/track"

// Metric condenses a run into a single number, observed tick by tick.
type Metric interface {
	Name() string
	Observe(m track.Marble, g track.Gravity, t float64)
	Value() float64
	Reset()
}

// Observer sees every tick as it happens, after the marble has moved.
type Observer interface {
	OnStep(m track.Marble, g track.Gravity, t float64)
}

type Config struct {
	TickRate      int
	Duration      float64 // seconds, 0 runs until the context is cancelled
	RealTime      bool    // pace ticks against the wall clock
	SnapshotEvery int     // ticks between debug snapshots, 0 disables
}

type Result struct {
	Ticks    int
	Duration float64
	Final    track.Marble
	Metrics  map[string]float64
}
