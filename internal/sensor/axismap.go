package sensor

import "fmt"

// AxisMap fixes the sensor mounting convention: each simulation axis is
// fed from a signed sensor axis. The mapping is configuration, never
// hardcoded in a source.
type AxisMap struct {
	x axisSel
	y axisSel
}

type axisSel struct {
	fromY bool
	sign  float64
}

// ParseAxisMap builds an AxisMap from two axis specs of the form "x",
// "+x", "-x", "y", "+y" or "-y".
func ParseAxisMap(xFrom, yFrom string) (AxisMap, error) {
	xs, err := parseAxis(xFrom)
	if err != nil {
		return AxisMap{}, err
	}
	ys, err := parseAxis(yFrom)
	if err != nil {
		return AxisMap{}, err
	}
	return AxisMap{x: xs, y: ys}, nil
}

func parseAxis(spec string) (axisSel, error) {
	switch spec {
	case "x", "+x":
		return axisSel{sign: 1}, nil
	case "-x":
		return axisSel{sign: -1}, nil
	case "y", "+y":
		return axisSel{fromY: true, sign: 1}, nil
	case "-y":
		return axisSel{fromY: true, sign: -1}, nil
	}
	return axisSel{}, fmt.Errorf("sensor: bad axis spec %q, want one of x, -x, y, -y", spec)
}

// IdentityMap passes readings through unchanged.
func IdentityMap() AxisMap {
	m, _ := ParseAxisMap("x", "y")
	return m
}

// ReferenceMap matches the reference board's mounting: simulation x is the
// negated sensor y, simulation y is the sensor x.
func ReferenceMap() AxisMap {
	m, _ := ParseAxisMap("-y", "x")
	return m
}

// Apply remaps a single reading.
func (m AxisMap) Apply(r Reading) Reading {
	return Reading{X: m.x.pick(r), Y: m.y.pick(r)}
}

func (s axisSel) pick(r Reading) float64 {
	if s.fromY {
		return s.sign * r.Y
	}
	return s.sign * r.X
}

// WithAxisMap wraps src so that every sample passes through the map. This
// is the single place where the mounting sign convention is applied.
func WithAxisMap(src Source, m AxisMap) Source {
	return &remapped{src: src, m: m}
}

type remapped struct {
	src Source
	m   AxisMap
}

func (r *remapped) Sample() (Reading, error) {
	rd, err := r.src.Sample()
	if err != nil {
		return Reading{}, err
	}
	return r.m.Apply(rd), nil
}

func (r *remapped) Close() error { return r.src.Close() }
