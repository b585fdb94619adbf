package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/rollka/tiltring/internal/render"
)

const (
	svgSize       = 400.0
	svgRingRadius = 150.0
)

// RingSVG renders one frame of the ring as a standalone SVG: a dot per
// light element at its layout angle, filled with its lit color, and the
// marble just inside the ring. Same angle convention as the terminal
// view, 0° right and counter-clockwise.
func RingSVG(layout render.Layout, frame render.Frame, position float64) string {
	c := svgSize / 2

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, svgSize, svgSize, svgSize, svgSize))

	sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"none\" stroke=\"#3c3c3c\" stroke-width=\"2\"/>\n", c, c, svgRingRadius))

	at := func(deg, radius float64) (float64, float64) {
		rad := deg * math.Pi / 180
		return c + radius*math.Cos(rad), c - radius*math.Sin(rad)
	}

	sb.WriteString("<g stroke=\"#282828\" stroke-width=\"1\">\n")
	for i, loc := range layout {
		x, y := at(loc, svgRingRadius)
		px := frame[i]
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"14\" fill=\"#%02x%02x%02x\"/>\n", x, y, px.R, px.G, px.B))
	}
	sb.WriteString("</g>\n")

	x, y := at(position, svgRingRadius*0.72)
	sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"7\" fill=\"#b4b4b4\" stroke=\"#ffffff\" stroke-width=\"2\"/>\n", x, y))

	sb.WriteString("</svg>\n")
	return sb.String()
}
