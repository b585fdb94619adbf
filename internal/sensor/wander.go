package sensor

import "github.com/aquilax/go-perlin"

// Perlin shape parameters. Two octaves give a drift that is smooth at
// tick scale but still changes character over a few seconds.
const (
	wanderAlpha   = 2.0
	wanderBeta    = 2.0
	wanderOctaves = 2
)

// Wander synthesizes a smoothly drifting tilt for demos and sweeps. Two
// Perlin tracks drive the x and y components. The noise clock advances a
// fixed step per sample rather than wall time, so a seed always replays
// the exact same tilt history.
type Wander struct {
	noise *perlin.Perlin
	amp   float64
	step  float64
	t     float64
}

// NewWander creates a wandering source. Amplitude bounds each component in
// m/s²; step is the noise-time advance per sample.
func NewWander(seed int64, amplitude, step float64) *Wander {
	return &Wander{
		noise: perlin.NewPerlin(wanderAlpha, wanderBeta, wanderOctaves, seed),
		amp:   amplitude,
		step:  step,
	}
}

func (w *Wander) Sample() (Reading, error) {
	w.t += w.step
	return Reading{
		X: w.amp * w.noise.Noise2D(w.t, 0.5),
		Y: w.amp * w.noise.Noise2D(0.5, w.t),
	}, nil
}

func (w *Wander) Close() error { return nil }
