package analysis

import (
	"math"
	"testing"

	"github.com/rollka/tiltring/internal/render"
	"github.com/rollka/tiltring/internal/storage"
)

func traceFrom(positions, speeds []float64) []storage.TraceRow {
	rows := make([]storage.TraceRow, len(positions))
	for i := range positions {
		rows[i] = storage.TraceRow{
			Tick:     i + 1,
			Time:     float64(i+1) / 60,
			Position: positions[i],
			Speed:    speeds[i],
		}
	}
	return rows
}

func TestSummarize(t *testing.T) {
	trace := traceFrom(
		[]float64{350, 0, 10},
		[]float64{1, -1, 2},
	)

	s := Summarize(trace)

	if s.Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", s.Ticks)
	}
	if math.Abs(s.MeanSpeed-2.0/3) > 1e-9 {
		t.Errorf("expected mean speed 2/3, got %f", s.MeanSpeed)
	}
	if math.Abs(s.MeanAbsSpeed-4.0/3) > 1e-9 {
		t.Errorf("expected mean abs speed 4/3, got %f", s.MeanAbsSpeed)
	}
	if s.MaxAbsSpeed != 2 {
		t.Errorf("expected max abs speed 2, got %f", s.MaxAbsSpeed)
	}
	if math.Abs(s.StdSpeed-1.527525) > 1e-5 {
		t.Errorf("expected std 1.527525, got %f", s.StdSpeed)
	}
	if math.Abs(s.TravelDeg-20) > 1e-9 {
		t.Errorf("expected travel 20, got %f", s.TravelDeg)
	}
	if math.Abs(s.NetLaps-20.0/360) > 1e-9 {
		t.Errorf("expected net laps 20/360, got %f", s.NetLaps)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestSummarizeCircularMeanAcrossSeam(t *testing.T) {
	trace := traceFrom(
		[]float64{350, 10},
		[]float64{0, 0},
	)

	s := Summarize(trace)

	if d := render.Distance(s.MeanPosition, 0); d > 1e-6 {
		t.Errorf("expected circular mean at the seam, got %f", s.MeanPosition)
	}
	if s.MeanPosition < 0 || s.MeanPosition >= 360 {
		t.Errorf("expected mean position in [0, 360), got %f", s.MeanPosition)
	}
}

func TestDwellFractions(t *testing.T) {
	layout, err := render.NewLayout([]float64{0, 90})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	trace := traceFrom(
		[]float64{10, 10, 80},
		[]float64{0, 0, 0},
	)

	fractions := DwellFractions(trace, layout)

	if len(fractions) != 2 {
		t.Fatalf("expected 2 fractions, got %d", len(fractions))
	}
	if math.Abs(fractions[0]-2.0/3) > 1e-9 {
		t.Errorf("expected 2/3 at element 0, got %f", fractions[0])
	}
	if math.Abs(fractions[1]-1.0/3) > 1e-9 {
		t.Errorf("expected 1/3 at element 1, got %f", fractions[1])
	}

	sum := 0.0
	for _, f := range fractions {
		sum += f
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("expected fractions to sum to 1, got %f", sum)
	}
}

func TestDwellFractionsEmpty(t *testing.T) {
	layout, err := render.NewLayout([]float64{0, 90})
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	fractions := DwellFractions(nil, layout)
	for i, f := range fractions {
		if f != 0 {
			t.Errorf("expected zero fraction at %d, got %f", i, f)
		}
	}
}

func TestDominantFrequency(t *testing.T) {
	const rate = 60.0
	values := make([]float64, 240)
	for i := range values {
		values[i] = math.Sin(2 * math.Pi * 5 * float64(i) / rate)
	}

	got := DominantFrequency(values, rate)
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("expected 5 Hz, got %f", got)
	}
}

func TestDominantFrequencyIgnoresOffset(t *testing.T) {
	const rate = 60.0
	values := make([]float64, 240)
	for i := range values {
		values[i] = 100 + math.Sin(2*math.Pi*3*float64(i)/rate)
	}

	got := DominantFrequency(values, rate)
	if math.Abs(got-3) > 1e-9 {
		t.Errorf("expected 3 Hz, got %f", got)
	}
}

func TestDominantFrequencyFlat(t *testing.T) {
	values := []float64{2, 2, 2, 2, 2, 2, 2, 2}
	if got := DominantFrequency(values, 60); got != 0 {
		t.Errorf("expected 0 for a flat series, got %f", got)
	}

	if got := DominantFrequency([]float64{1}, 60); got != 0 {
		t.Errorf("expected 0 for a single sample, got %f", got)
	}
}

func TestSeriesHelpers(t *testing.T) {
	trace := traceFrom([]float64{1, 2, 3}, []float64{4, 5, 6})

	positions := Positions(trace)
	speeds := Speeds(trace)

	if len(positions) != 3 || positions[1] != 2 {
		t.Errorf("unexpected positions %v", positions)
	}
	if len(speeds) != 3 || speeds[2] != 6 {
		t.Errorf("unexpected speeds %v", speeds)
	}
}
