package viz

import (
	"strings"
	"testing"

	"github.com/rollka/tiltring/internal/render"
)

func testLayout(t *testing.T) render.Layout {
	t.Helper()
	layout, err := render.NewLayout([]float64{30, 60, 90, 120, 150, 210, 240, 270, 300, 330})
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	return layout
}

func TestRingViewPlacesEveryElement(t *testing.T) {
	layout := testLayout(t)
	frame := render.NewRenderer(layout).Render(90)

	view := ringView(layout, frame, 90)

	if got := strings.Count(view, "●"); got != len(layout) {
		t.Errorf("view has %d element dots, want %d", got, len(layout))
	}
	if !strings.Contains(view, "◍") {
		t.Error("view is missing the marble")
	}
	if got := len(strings.Split(view, "\n")); got != ringHeight {
		t.Errorf("view has %d rows, want %d", got, ringHeight)
	}
}

func TestGravityArrowOctants(t *testing.T) {
	cases := []struct {
		direction float64
		want      string
	}{
		{0, "→"},
		{45, "↗"},
		{90, "↑"},
		{135, "↖"},
		{180, "←"},
		{225, "↙"},
		{270, "↓"},
		{315, "↘"},
		{359, "→"},
		{22, "→"},
		{23, "↗"},
	}
	for _, tc := range cases {
		if got := gravityArrow(tc.direction); got != tc.want {
			t.Errorf("gravityArrow(%v) = %q, want %q", tc.direction, got, tc.want)
		}
	}
}

func TestRingSVG(t *testing.T) {
	layout := testLayout(t)
	frame := render.NewRenderer(layout).Render(90)

	svg := RingSVG(layout, frame, 90)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml declaration")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("svg not closed")
	}
	// Element under the marble renders full red.
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Error("no full-red element in svg")
	}
	// One circle per element, plus the ring outline and the marble.
	if got := strings.Count(svg, "<circle"); got != len(layout)+2 {
		t.Errorf("svg has %d circles, want %d", got, len(layout)+2)
	}
	if !strings.Contains(svg, `fill="#b4b4b4"`) {
		t.Error("marble dot missing")
	}
}
