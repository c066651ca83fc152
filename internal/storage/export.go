package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Metadata *RecordingMetadata `json:"metadata"`
	Columns  []string           `json:"columns"`
	Samples  int                `json:"samples"`
	Rows     [][]float64        `json:"rows"`
}

// ExportJSON writes a recording's metadata and samples as one JSON document.
func (s *Store) ExportJSON(w io.Writer, id string) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}
	table, err := s.LoadSamples(id)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{
		Metadata: meta,
		Columns:  table.Columns,
		Samples:  len(table.Rows),
		Rows:     table.Rows,
	})
}
