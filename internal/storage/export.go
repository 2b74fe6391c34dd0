package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Metadata RenderMetadata `json:"metadata"`
	Frames   []FrameRow     `json:"frames"`
}

// ExportJSON writes a stored render, metadata and frame rows, as indented JSON.
func (s *Store) ExportJSON(w io.Writer, renderID string) error {
	meta, err := s.Load(renderID)
	if err != nil {
		return err
	}
	rows, err := s.LoadFrames(renderID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Metadata: *meta, Frames: rows})
}
