package output

import (
	"fmt"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/apa102"
	"periph.io/x/host/v3"

	"github.com/rollka/tiltring/internal/render"
)

type APA102Config struct {
	SPIDev    string
	NumPixels int
	Exposure  float64
}

type APA102 struct {
	port   spi.PortCloser
	strip  *apa102.Dev
	buf    []byte
	closed bool
}

func NewAPA102(cfg APA102Config) (*APA102, error) {
	if cfg.NumPixels <= 0 {
		return nil, fmt.Errorf("output: pixel count must be positive, got %d", cfg.NumPixels)
	}
	if cfg.Exposure < 0 || cfg.Exposure > 1 {
		return nil, fmt.Errorf("output: exposure must be in [0, 1], got %f", cfg.Exposure)
	}

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("output: periph host init: %w", err)
	}

	port, err := spireg.Open(cfg.SPIDev)
	if err != nil {
		return nil, fmt.Errorf("output: open SPI port %q: %w", cfg.SPIDev, err)
	}

	opts := apa102.DefaultOpts
	opts.NumPixels = cfg.NumPixels
	opts.Intensity = uint8(cfg.Exposure * 255)
	// The ring is pure red, keep the channels as rendered.
	opts.Temperature = apa102.NeutralTemp

	strip, err := apa102.New(port, &opts)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("output: init APA102 strip: %w", err)
	}

	return &APA102{
		port:  port,
		strip: strip,
		buf:   make([]byte, 3*cfg.NumPixels),
	}, nil
}

func (d *APA102) Write(f render.Frame) error {
	if 3*len(f) != len(d.buf) {
		return fmt.Errorf("output: frame has %d pixels, strip has %d", len(f), len(d.buf)/3)
	}
	for i, px := range f {
		d.buf[3*i] = px.R
		d.buf[3*i+1] = px.G
		d.buf[3*i+2] = px.B
	}
	if _, err := d.strip.Write(d.buf); err != nil {
		return fmt.Errorf("output: write strip: %w", err)
	}
	return nil
}

func (d *APA102) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if err := d.strip.Halt(); err != nil {
		d.port.Close()
		return fmt.Errorf("output: halt strip: %w", err)
	}
	return d.port.Close()
}
