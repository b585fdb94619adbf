package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/rollka/tiltring/internal/render"
)

const (
	ringWidth  = 41
	ringHeight = 19
)

// ringView draws the layout on an ellipse, one colored dot per light
// element, with the marble itself rolling just inside the ring. Angles
// follow the track convention: 0° right, 90° top, counter-clockwise.
func ringView(layout render.Layout, frame render.Frame, position float64) string {
	grid := make([][]string, ringHeight)
	for y := range grid {
		grid[y] = make([]string, ringWidth)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	cx, cy := ringWidth/2, ringHeight/2
	rx := float64(ringWidth)/2 - 2
	ry := float64(ringHeight)/2 - 1

	place := func(deg, radius float64, s string) {
		rad := deg * math.Pi / 180
		x := cx + int(math.Round(radius*rx*math.Cos(rad)))
		y := cy - int(math.Round(radius*ry*math.Sin(rad)))
		if x >= 0 && x < ringWidth && y >= 0 && y < ringHeight {
			grid[y][x] = s
		}
	}

	for i, loc := range layout {
		c := colorful.Color{R: float64(frame[i].R) / 255}
		place(loc, 1.0, lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("●"))
	}
	place(position, 0.72, marbleStyle.Render("◍"))

	rows := make([]string, ringHeight)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}
	return strings.Join(rows, "\n")
}

var arrows = []string{"→", "↗", "↑", "↖", "←", "↙", "↓", "↘"}

func gravityArrow(direction float64) string {
	idx := int(math.Round(direction/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return arrows[idx]
}
