package metrics

import (
	"math"

	"github.com/rollka/tiltring/internal/track"
)

// signedDelta is the shortest signed angular step from one position to
// the next, in (-180, 180]. Movement past half a revolution within a
// single tick aliases, as with any sampled position.
func signedDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// Travel accumulates the total angular distance covered, in degrees,
// regardless of direction.
type Travel struct {
	name   string
	total  float64
	prev   float64
	primed bool
}

func NewTravel() *Travel {
	return &Travel{name: "travel_deg"}
}

func (tr *Travel) Name() string { return tr.name }

func (tr *Travel) Observe(m track.Marble, g track.Gravity, t float64) {
	if tr.primed {
		tr.total += math.Abs(signedDelta(tr.prev, m.Position))
	}
	tr.prev = m.Position
	tr.primed = true
}

func (tr *Travel) Value() float64 {
	return tr.total
}

func (tr *Travel) Reset() {
	tr.total = 0
	tr.prev = 0
	tr.primed = false
}

// NetLaps counts signed net revolutions: counter-clockwise progress
// cancels clockwise progress.
type NetLaps struct {
	name   string
	net    float64
	prev   float64
	primed bool
}

func NewNetLaps() *NetLaps {
	return &NetLaps{name: "net_laps"}
}

func (n *NetLaps) Name() string { return n.name }

func (n *NetLaps) Observe(m track.Marble, g track.Gravity, t float64) {
	if n.primed {
		n.net += signedDelta(n.prev, m.Position)
	}
	n.prev = m.Position
	n.primed = true
}

func (n *NetLaps) Value() float64 {
	return n.net / 360
}

func (n *NetLaps) Reset() {
	n.net = 0
	n.prev = 0
	n.primed = false
}
