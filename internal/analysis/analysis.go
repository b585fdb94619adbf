package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/rollka/tiltring/internal/metrics"
	"github.com/rollka/tiltring/internal/render"
	"github.com/rollka/tiltring/internal/storage"
	"github.com/rollka/tiltring/internal/track"
)

type Summary struct {
	Ticks        int
	Duration     float64
	MeanSpeed    float64
	MeanAbsSpeed float64
	StdSpeed     float64
	MaxAbsSpeed  float64
	MeanPosition float64 // circular mean, degrees in [0, 360)
	TravelDeg    float64
	NetLaps      float64
}

func Summarize(trace []storage.TraceRow) Summary {
	if len(trace) == 0 {
		return Summary{}
	}

	speeds := Speeds(trace)
	radians := make([]float64, len(trace))
	absSum := 0.0
	maxAbs := 0.0
	for i, row := range trace {
		radians[i] = row.Position * math.Pi / 180
		abs := math.Abs(row.Speed)
		absSum += abs
		if abs > maxAbs {
			maxAbs = abs
		}
	}

	travel := metrics.NewTravel()
	laps := metrics.NewNetLaps()
	for _, row := range trace {
		m := track.Marble{Position: row.Position, Speed: row.Speed}
		travel.Observe(m, track.Gravity{}, row.Time)
		laps.Observe(m, track.Gravity{}, row.Time)
	}

	s := Summary{
		Ticks:        len(trace),
		Duration:     trace[len(trace)-1].Time,
		MeanSpeed:    stat.Mean(speeds, nil),
		MeanAbsSpeed: absSum / float64(len(trace)),
		MaxAbsSpeed:  maxAbs,
		MeanPosition: track.Normalize(stat.CircularMean(radians, nil) * 180 / math.Pi),
		TravelDeg:    travel.Value(),
		NetLaps:      laps.Value(),
	}
	if len(speeds) > 1 {
		s.StdSpeed = stat.StdDev(speeds, nil)
	}
	return s
}

// DwellFractions attributes each trace row to its nearest layout element
// and returns the share of rows per element.
func DwellFractions(trace []storage.TraceRow, layout render.Layout) []float64 {
	fractions := make([]float64, len(layout))
	if len(trace) == 0 || len(layout) == 0 {
		return fractions
	}

	for _, row := range trace {
		best := 0
		bestDist := math.MaxFloat64
		for i, loc := range layout {
			if d := render.Distance(row.Position, loc); d < bestDist {
				bestDist = d
				best = i
			}
		}
		fractions[best]++
	}
	for i := range fractions {
		fractions[i] /= float64(len(trace))
	}
	return fractions
}

func Positions(trace []storage.TraceRow) []float64 {
	out := make([]float64, len(trace))
	for i, row := range trace {
		out[i] = row.Position
	}
	return out
}

func Speeds(trace []storage.TraceRow) []float64 {
	out := make([]float64, len(trace))
	for i, row := range trace {
		out[i] = row.Speed
	}
	return out
}
