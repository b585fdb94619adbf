// Package render maps a marble position to per-element brightness over a
// fixed ring of light elements, with circular wraparound.
package render

import (
	"errors"
	"fmt"
	"math"
)

// Falloff breakpoints, degrees of angular distance from the marble.
const (
	nearFieldDeg = 10
	farFieldDeg  = 90
)

// ErrEmptyLayout is returned when a layout has no elements.
var ErrEmptyLayout = errors.New("render: layout has no elements")

// Layout maps element index to its fixed angular location in degrees.
// Entries are normalized into [0, 360) at construction and read-only
// afterwards.
type Layout []float64

// NewLayout validates the element angles and normalizes each into [0, 360).
func NewLayout(angles []float64) (Layout, error) {
	if len(angles) == 0 {
		return nil, ErrEmptyLayout
	}
	l := make(Layout, len(angles))
	for i, a := range angles {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, fmt.Errorf("render: layout element %d is not finite: %f", i, a)
		}
		l[i] = normalize(a)
	}
	return l, nil
}

// Pixel is one element's color. The marble only ever glows red.
type Pixel struct {
	R, G, B uint8
}

// Frame is one full ring of pixels, indexed like the layout. It is
// recomputed from scratch every tick and carries no state across ticks.
type Frame []Pixel

// Renderer turns marble positions into frames for a fixed layout.
type Renderer struct {
	layout Layout
}

func NewRenderer(layout Layout) *Renderer {
	return &Renderer{layout: layout}
}

func (r *Renderer) Layout() Layout { return r.layout }

// Render computes the brightness frame for a marble at position degrees.
// Out-of-range positions are normalized first.
func (r *Renderer) Render(position float64) Frame {
	frame := make(Frame, len(r.layout))
	pos := normalize(position)
	for i, loc := range r.layout {
		frame[i] = Pixel{R: uint8(255 * Brightness(Distance(pos, loc)))}
	}
	return frame
}

// Distance returns the shortest angular distance between two angles in
// degrees, always in [0, 180]. Inputs are normalized before comparing.
func Distance(a, b float64) float64 {
	rel := math.Abs(normalize(a) - normalize(b))
	if rel > 180 {
		rel = 360 - rel
	}
	return rel
}

// Brightness maps an angular distance to an intensity in [0, 1]: a steep
// near field inside 10°, a shallow taper out to 90°, then dark. The jump
// at exactly 10° (0.15 down to ~0.044) is intentional and kept as-is.
func Brightness(distance float64) float64 {
	switch {
	case distance < nearFieldDeg:
		return 0.15 + 0.85*(1-distance/nearFieldDeg)
	case distance < farFieldDeg:
		return 0.05 * (farFieldDeg - distance) / farFieldDeg
	default:
		return 0
	}
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg == 360 {
		return 0
	}
	return deg
}
