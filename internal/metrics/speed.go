// Package metrics implements run metrics observed tick by tick. Each
// metric satisfies the simulation Metric interface and reports a single
// value at the end of a run.
package metrics

import (
	"math"

	"github.com/rollka/tiltring/internal/track"
)

type PeakSpeed struct {
	name string
	peak float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (p *PeakSpeed) Name() string { return p.name }

func (p *PeakSpeed) Observe(m track.Marble, g track.Gravity, t float64) {
	if s := math.Abs(m.Speed); s > p.peak {
		p.peak = s
	}
}

func (p *PeakSpeed) Value() float64 {
	return p.peak
}

func (p *PeakSpeed) Reset() {
	p.peak = 0
}
