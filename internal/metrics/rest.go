package metrics

import (
	"math"

	"github.com/rollka/tiltring/internal/track"
)

// Below this speed the marble's movement is invisible on the ring.
const restThreshold = 1e-3

// RestFraction reports the share of observed ticks the marble spent
// effectively at rest.
type RestFraction struct {
	name    string
	resting int
	samples int
}

func NewRestFraction() *RestFraction {
	return &RestFraction{name: "rest_fraction"}
}

func (r *RestFraction) Name() string { return r.name }

func (r *RestFraction) Observe(m track.Marble, g track.Gravity, t float64) {
	r.samples++
	if math.Abs(m.Speed) < restThreshold {
		r.resting++
	}
}

func (r *RestFraction) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return float64(r.resting) / float64(r.samples)
}

func (r *RestFraction) Reset() {
	r.resting = 0
	r.samples = 0
}
