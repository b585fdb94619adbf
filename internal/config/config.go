package config

import (
	"fmt"
	"math"
	"os"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Reference constants for the 35 mm ring.
const (
	DefaultTickRate      = 60
	DefaultDiameter      = 0.035
	DefaultFriction      = 0.01
	DefaultGravityScale  = 1.0
	DefaultExposure      = 1.0
	DefaultSnapshotEvery = 60
	DefaultCountsPerG    = 16384
)

// DefaultLayout returns the reference ring: ten elements spaced 30°
// apart, with gaps at 0° and 180° where the connectors sit.
func DefaultLayout() []float64 {
	return []float64{30, 60, 90, 120, 150, 210, 240, 270, 300, 330}
}

type Config struct {
	TickRate      int           `yaml:"tick_rate"`
	Duration      float64       `yaml:"duration"`
	SnapshotEvery int           `yaml:"snapshot_every"`
	Track         TrackConfig   `yaml:"track"`
	Layout        []float64     `yaml:"layout"`
	Source        SourceConfig  `yaml:"source"`
	Output        OutputConfig  `yaml:"output"`
	Storage       StorageConfig `yaml:"storage"`
}

type TrackConfig struct {
	Diameter     float64 `yaml:"diameter"`
	Friction     float64 `yaml:"friction"`
	GravityScale float64 `yaml:"gravity_scale"`
}

type SourceConfig struct {
	Kind   string       `yaml:"kind"`
	AxisX  string       `yaml:"axis_x"`
	AxisY  string       `yaml:"axis_y"`
	Static StaticConfig `yaml:"static"`
	Wander WanderConfig `yaml:"wander"`
	Script string       `yaml:"script"`
	IMU    IMUConfig    `yaml:"imu"`
}

type StaticConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type WanderConfig struct {
	Seed      int64   `yaml:"seed"`
	Amplitude float64 `yaml:"amplitude"`
	Step      float64 `yaml:"step"`
}

type IMUConfig struct {
	SPIDev     string  `yaml:"spi_dev"`
	CSPin      string  `yaml:"cs_pin"`
	CountsPerG float64 `yaml:"counts_per_g"`
}

type OutputConfig struct {
	Device   string  `yaml:"device"`
	SPIDev   string  `yaml:"spi_dev"`
	Exposure float64 `yaml:"exposure"`
}

type StorageConfig struct {
	Dir string `yaml:"dir"`
}

func DefaultConfig() *Config {
	return &Config{
		TickRate:      DefaultTickRate,
		SnapshotEvery: DefaultSnapshotEvery,
		Track: TrackConfig{
			Diameter:     DefaultDiameter,
			Friction:     DefaultFriction,
			GravityScale: DefaultGravityScale,
		},
		Layout: DefaultLayout(),
		Source: SourceConfig{
			Kind:  "wander",
			AxisX: "-y",
			AxisY: "x",
			Wander: WanderConfig{
				Seed:      1,
				Amplitude: 6.0,
				Step:      0.01,
			},
			IMU: IMUConfig{
				SPIDev:     "/dev/spidev0.0",
				CSPin:      "8",
				CountsPerG: DefaultCountsPerG,
			},
		},
		Output: OutputConfig{
			Device:   "null",
			SPIDev:   "/dev/spidev0.1",
			Exposure: DefaultExposure,
		},
		Storage: StorageConfig{Dir: "runs"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick rate must be positive, got %d", c.TickRate)
	}
	if c.Duration < 0 {
		return fmt.Errorf("config: duration must not be negative, got %f", c.Duration)
	}
	if c.SnapshotEvery < 0 {
		return fmt.Errorf("config: snapshot interval must not be negative, got %d", c.SnapshotEvery)
	}
	if c.Track.Diameter <= 0 || math.IsInf(c.Track.Diameter, 0) || math.IsNaN(c.Track.Diameter) {
		return fmt.Errorf("config: diameter must be positive and finite, got %f", c.Track.Diameter)
	}
	if c.Track.Friction < 0 || c.Track.Friction > 1 || math.IsNaN(c.Track.Friction) {
		return fmt.Errorf("config: friction must be in [0, 1], got %f", c.Track.Friction)
	}
	if math.IsInf(c.Track.GravityScale, 0) || math.IsNaN(c.Track.GravityScale) {
		return fmt.Errorf("config: gravity scale must be finite, got %f", c.Track.GravityScale)
	}
	if len(c.Layout) == 0 {
		return fmt.Errorf("config: layout must name at least one element")
	}
	for i, loc := range c.Layout {
		if math.IsInf(loc, 0) || math.IsNaN(loc) {
			return fmt.Errorf("config: layout element %d must be finite, got %f", i, loc)
		}
	}
	switch c.Source.Kind {
	case "static", "wander", "script", "imu":
	default:
		return fmt.Errorf("config: unknown source kind %q", c.Source.Kind)
	}
	if c.Source.Kind == "wander" && c.Source.Wander.Step <= 0 {
		return fmt.Errorf("config: wander step must be positive, got %f", c.Source.Wander.Step)
	}
	if c.Source.Kind == "script" && c.Source.Script == "" {
		return fmt.Errorf("config: script source needs a script path")
	}
	if c.Source.Kind == "imu" && c.Source.IMU.CountsPerG <= 0 {
		return fmt.Errorf("config: counts per g must be positive, got %f", c.Source.IMU.CountsPerG)
	}
	switch c.Output.Device {
	case "null", "terminal", "apa102":
	default:
		return fmt.Errorf("config: unknown output device %q", c.Output.Device)
	}
	if c.Output.Exposure < 0 || c.Output.Exposure > 1 {
		return fmt.Errorf("config: exposure must be in [0, 1], got %f", c.Output.Exposure)
	}
	return nil
}

// Fingerprint hashes the canonical YAML encoding. Stored run metadata
// carries it so a trace can be matched to the exact constants that
// produced it.
func (c *Config) Fingerprint() uint64 {
	data, err := yaml.Marshal(c)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}
