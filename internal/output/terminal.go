package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/rollka/tiltring/internal/render"
)

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// Terminal rewrites a single line of colored dots in place, one dot
// per light element.
type Terminal struct {
	w       io.Writer
	started bool
}

func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stdout
	}
	return &Terminal{w: w}
}

func (t *Terminal) Write(f render.Frame) error {
	var b strings.Builder
	if !t.started {
		b.WriteString(hideCursor)
		t.started = true
	}
	b.WriteString("\r")
	for _, px := range f {
		c := colorful.Color{
			R: float64(px.R) / 255,
			G: float64(px.G) / 255,
			B: float64(px.B) / 255,
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("●"))
		b.WriteString(" ")
	}
	_, err := fmt.Fprint(t.w, b.String())
	return err
}

func (t *Terminal) Close() error {
	if !t.started {
		return nil
	}
	t.started = false
	_, err := fmt.Fprint(t.w, showCursor+"\n")
	return err
}
