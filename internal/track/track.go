package track

import (
	"fmt"
	"math"
)

// Geometry holds the fixed physical constants of the track. Friction is a
// per-tick damping fraction (0 = frictionless, 1 = instantly stopped).
type Geometry struct {
	Diameter     float64
	Friction     float64
	GravityScale float64
}

// Marble is the full simulation state: angular position in degrees within
// [0, 360) and signed linear speed in m/s, positive counter-clockwise.
type Marble struct {
	Position float64
	Speed    float64
}

// Gravity is the effective gravity in the track plane, derived fresh from
// the sensor every tick.
type Gravity struct {
	Direction float64
	Magnitude float64
}

// Physics advances a Marble on a circular track under gravity and friction.
type Physics struct {
	geom            Geometry
	metersPerDegree float64
}

func New(geom Geometry) (*Physics, error) {
	if geom.Diameter <= 0 || math.IsNaN(geom.Diameter) || math.IsInf(geom.Diameter, 0) {
		return nil, fmt.Errorf("track: diameter must be positive, got %f", geom.Diameter)
	}
	if geom.Friction < 0 || geom.Friction > 1 || math.IsNaN(geom.Friction) {
		return nil, fmt.Errorf("track: friction must be in [0, 1], got %f", geom.Friction)
	}
	if math.IsNaN(geom.GravityScale) || math.IsInf(geom.GravityScale, 0) {
		return nil, fmt.Errorf("track: gravity scale must be finite, got %f", geom.GravityScale)
	}
	return &Physics{
		geom:            geom,
		metersPerDegree: math.Pi * geom.Diameter / 360,
	}, nil
}

func (p *Physics) Geometry() Geometry { return p.geom }

// MetersPerDegree converts between linear travel along the rim and angular
// position.
func (p *Physics) MetersPerDegree() float64 { return p.metersPerDegree }

// Acceleration returns the tangential acceleration in m/s² at the given
// position under the given gravity. Positive accelerates counter-clockwise.
// The relative angle feeds the sine unnormalized, so positions and
// directions outside [0, 360) are fine.
func (p *Physics) Acceleration(position, gravityDir, gravityMag float64) float64 {
	relative := gravityDir - position
	return math.Sin(relative*math.Pi/180) * gravityMag * p.geom.GravityScale
}

// Tick advances the marble by one fixed timestep: friction damps speed,
// gravity integrates into speed, speed into position, and the position is
// folded back into [0, 360). A non-positive dt is a no-op and returns the
// marble unchanged.
func (p *Physics) Tick(m Marble, g Gravity, dt float64) Marble {
	if dt <= 0 {
		return m
	}
	m.Speed *= 1 - p.geom.Friction
	m.Speed += p.Acceleration(m.Position, g.Direction, g.Magnitude) * dt
	m.Position += m.Speed / p.metersPerDegree * dt
	m.Position = Normalize(m.Position)
	return m
}

// Normalize folds an angle in degrees into [0, 360), handling any number
// of wraps in either direction.
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg == 360 {
		return 0
	}
	return deg
}
