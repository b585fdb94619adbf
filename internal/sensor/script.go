package sensor

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ScriptStep holds one tilt segment: a constant reading held for a number
// of seconds.
type ScriptStep struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Seconds float64 `yaml:"seconds"`
}

// Script is a scripted tilt sequence, usually loaded from YAML. Played as
// a Source it steps through its segments at the tick rate and then holds
// the final reading, or starts over when Loop is set.
type Script struct {
	Name  string       `yaml:"name"`
	Loop  bool         `yaml:"loop"`
	Steps []ScriptStep `yaml:"steps"`
}

// LoadScript reads a script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sensor: read script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sensor: parse script: %w", err)
	}
	return &s, nil
}

// Play validates the script and returns a Source sampling it at tickRate.
func (s *Script) Play(tickRate int) (Source, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("sensor: tick rate must be positive, got %d", tickRate)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("sensor: script has no steps")
	}
	total := 0.0
	for i, st := range s.Steps {
		if st.Seconds <= 0 {
			return nil, fmt.Errorf("sensor: script step %d must last longer than 0s", i)
		}
		total += st.Seconds
	}
	return &scriptSource{script: s, dt: 1 / float64(tickRate), total: total}, nil
}

type scriptSource struct {
	script *Script
	dt     float64
	total  float64
	n      int
}

func (p *scriptSource) Sample() (Reading, error) {
	// Derive time from the tick count so boundaries do not drift with
	// accumulated rounding.
	t := float64(p.n) * p.dt
	p.n++
	if p.script.Loop {
		t = math.Mod(t, p.total)
	}
	for _, st := range p.script.Steps {
		if t < st.Seconds {
			return Reading{X: st.X, Y: st.Y}, nil
		}
		t -= st.Seconds
	}
	last := p.script.Steps[len(p.script.Steps)-1]
	return Reading{X: last.X, Y: last.Y}, nil
}

func (p *scriptSource) Close() error { return nil }
