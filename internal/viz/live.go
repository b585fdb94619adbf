package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/rollka/tiltring/internal/render"
	"github.com/rollka/tiltring/internal/track"
	"github.com/rollka/tiltring/internal/vecmath"
)

const (
	historyCapacity = 600
	tiltStep        = 15.0
	magStep         = 0.5
	maxTilt         = 20.0
)

type TickMsg time.Time

// Model is the interactive board: the keys shape a virtual tilt, and
// that tilt is the only thing the marble ever sees.
type Model struct {
	physics  *track.Physics
	renderer *render.Renderer
	tickRate int
	dt       float64

	marble    track.Marble
	start     track.Marble
	tiltDir   float64
	tiltMag   float64
	t         float64
	peak      float64
	speedHist []float64
	running   bool
}

func NewModel(physics *track.Physics, renderer *render.Renderer, tickRate int, start track.Marble) Model {
	return Model{
		physics:   physics,
		renderer:  renderer,
		tickRate:  tickRate,
		dt:        1.0 / float64(tickRate),
		marble:    start,
		start:     start,
		tiltDir:   270,
		tiltMag:   0,
		speedHist: make([]float64, 0, historyCapacity),
		running:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.tickRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// gravity resolves the virtual tilt into the gravity vector exactly as
// a real sensor reading would be resolved.
func (m Model) gravity() track.Gravity {
	x := m.tiltMag * math.Cos(m.tiltDir*math.Pi/180)
	y := m.tiltMag * math.Sin(m.tiltDir*math.Pi/180)
	return track.Gravity{
		Direction: vecmath.ResultantDirection(x, y),
		Magnitude: vecmath.ResultantMagnitude(x, y),
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left":
			m.tiltDir = track.Normalize(m.tiltDir + tiltStep)
		case "right":
			m.tiltDir = track.Normalize(m.tiltDir - tiltStep)
		case "up", "+", "=":
			m.tiltMag = math.Min(m.tiltMag+magStep, maxTilt)
		case "down", "-", "_":
			m.tiltMag = math.Max(m.tiltMag-magStep, 0)
		case " ":
			m.tiltMag = 0
		case "r":
			m.marble = m.start
			m.t = 0
			m.peak = 0
			m.speedHist = m.speedHist[:0]
		case "p":
			m.running = !m.running
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	g := m.gravity()
	m.marble = m.physics.Tick(m.marble, g, m.dt)
	m.t += m.dt

	if s := math.Abs(m.marble.Speed); s > m.peak {
		m.peak = s
	}
	m.speedHist = append(m.speedHist, m.marble.Speed)
	if len(m.speedHist) > historyCapacity {
		m.speedHist = m.speedHist[1:]
	}
}

func (m Model) View() string {
	g := m.gravity()
	frame := m.renderer.Render(m.marble.Position)

	var s strings.Builder
	s.WriteString(headerStyle.Render("TILTRING") + "\n")
	s.WriteString(ringStyle.Render(ringView(m.renderer.Layout(), frame, m.marble.Position)) + "\n")

	if len(m.speedHist) > 1 {
		chart := asciigraph.Plot(m.speedHist, asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("speed m/s"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Position") + valueStyle.Render(fmt.Sprintf("%.1f°", m.marble.Position)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%+.3f m/s", m.marble.Speed)) + "\n")
	s.WriteString(labelStyle.Render("Peak") + valueStyle.Render(fmt.Sprintf("%.3f m/s", m.peak)) + "\n")

	tilt := "level"
	if g.Magnitude > 0 {
		tilt = fmt.Sprintf("%s %.0f° at %.1f m/s²", gravityArrow(g.Direction), g.Direction, g.Magnitude)
	}
	s.WriteString(labelStyle.Render("Tilt") + valueStyle.Render(tilt) + "\n")

	if !m.running {
		s.WriteString(pausedStyle.Render("PAUSED") + "\n")
	}
	s.WriteString(helpStyle.Render("←/→ steer tilt, ↑/↓ or +/- strength, space level, r reset, p pause, q quit"))
	return s.String()
}
