// Package output drives the ring of light elements that shows the
// marble. A [Device] consumes one [render.Frame] per tick; [APA102]
// pushes frames to a physical LED strip, [Terminal] draws them as
// colored dots, [Null] and [Capture] exist for headless runs and
// tests.
package output

import (
	"github.com/rollka/tiltring/internal/render"
)

type Device interface {
	Write(f render.Frame) error
	Close() error
}

// Null discards every frame.
type Null struct{}

func (Null) Write(render.Frame) error { return nil }
func (Null) Close() error             { return nil }

// Capture retains the most recent frame and counts writes.
type Capture struct {
	Frames int
	Last   render.Frame
}

func (c *Capture) Write(f render.Frame) error {
	c.Frames++
	c.Last = append(c.Last[:0], f...)
	return nil
}

func (c *Capture) Close() error { return nil }
