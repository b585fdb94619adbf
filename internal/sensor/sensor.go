// Package sensor provides gravity sources: the hardware tilt sensor, plus
// deterministic stand-ins for demos, sweeps and tests.
package sensor

// Reading is one raw acceleration sample in the track plane. Axis units
// only need to be mutually consistent; the reference hardware reports m/s².
type Reading struct {
	X float64
	Y float64
}

// Source produces one reading per simulation tick.
type Source interface {
	Sample() (Reading, error)
	Close() error
}

// Static reports the same reading forever.
type Static struct {
	X, Y float64
}

func (s Static) Sample() (Reading, error) { return Reading{X: s.X, Y: s.Y}, nil }

func (s Static) Close() error { return nil }

// Sequence replays a fixed list of readings, holding the last one once the
// list is exhausted.
type Sequence struct {
	Readings []Reading
	next     int
}

func (s *Sequence) Sample() (Reading, error) {
	if len(s.Readings) == 0 {
		return Reading{}, nil
	}
	if s.next >= len(s.Readings) {
		return s.Readings[len(s.Readings)-1], nil
	}
	r := s.Readings[s.next]
	s.next++
	return r, nil
}

func (s *Sequence) Close() error { return nil }
