package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Meta  RunMetadata `json:"meta"`
	Trace []TraceRow  `json:"trace"`
}

func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	trace, err := s.LoadTrace(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Meta: *meta, Trace: trace})
}

func (s *Store) ExportJSONFile(runID, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.ExportJSON(runID, file)
}
