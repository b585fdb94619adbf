// Package storage records finished runs on disk, one directory per
// run with a metadata document and the full tick trace.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/rollka/tiltring/internal/sim"
	"github.com/rollka/tiltring/internal/track"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type TraceRow struct {
	Tick       int     `csv:"tick" json:"tick"`
	Time       float64 `csv:"time" json:"time"`
	Position   float64 `csv:"position" json:"position"`
	Speed      float64 `csv:"speed" json:"speed"`
	GravityDir float64 `csv:"gravity_dir" json:"gravity_dir"`
	GravityMag float64 `csv:"gravity_mag" json:"gravity_mag"`
}

// TraceRecorder collects one row per tick as a simulation observer.
type TraceRecorder struct {
	rows []TraceRow
}

func NewTraceRecorder() *TraceRecorder {
	return &TraceRecorder{rows: make([]TraceRow, 0)}
}

func (r *TraceRecorder) OnStep(m track.Marble, g track.Gravity, t float64) {
	r.rows = append(r.rows, TraceRow{
		Tick:       len(r.rows) + 1,
		Time:       t,
		Position:   m.Position,
		Speed:      m.Speed,
		GravityDir: g.Direction,
		GravityMag: g.Magnitude,
	})
}

func (r *TraceRecorder) Rows() []TraceRow { return r.rows }

type RunMetadata struct {
	ID           string             `json:"id"`
	Source       string             `json:"source"`
	CreatedAt    time.Time          `json:"created_at"`
	TickRate     int                `json:"tick_rate"`
	Diameter     float64            `json:"diameter"`
	Friction     float64            `json:"friction"`
	GravityScale float64            `json:"gravity_scale"`
	Fingerprint  uint64             `json:"fingerprint"`
	Ticks        int                `json:"ticks"`
	Duration     float64            `json:"duration"`
	Metrics      map[string]float64 `json:"metrics"`
}

func (s *Store) Save(source string, tickRate int, geom track.Geometry, fingerprint uint64, result *sim.Result, trace []TraceRow) (string, error) {
	runID := fmt.Sprintf("%s_%d_%s", source, time.Now().Unix(), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Source:       source,
		CreatedAt:    time.Now(),
		TickRate:     tickRate,
		Diameter:     geom.Diameter,
		Friction:     geom.Friction,
		GravityScale: geom.GravityScale,
		Fingerprint:  fingerprint,
		Ticks:        result.Ticks,
		Duration:     result.Duration,
		Metrics:      result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	traceFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer traceFile.Close()

	if trace == nil {
		trace = []TraceRow{}
	}
	if err := gocsv.Marshal(trace, traceFile); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrace(runID string) ([]TraceRow, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows := []TraceRow{}
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}
