package config

import "sort"

// Presets are board feels: the track constants that change how the
// marble behaves, everything else stays at the defaults.
var Presets = map[string]TrackConfig{
	"classic":      {Diameter: DefaultDiameter, Friction: DefaultFriction, GravityScale: DefaultGravityScale},
	"ice":          {Diameter: DefaultDiameter, Friction: 0.001, GravityScale: DefaultGravityScale},
	"honey":        {Diameter: DefaultDiameter, Friction: 0.15, GravityScale: DefaultGravityScale},
	"microgravity": {Diameter: DefaultDiameter, Friction: DefaultFriction, GravityScale: 0.05},
}

func Preset(name string) *Config {
	track, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Track = track
	return cfg
}

func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
