package source

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tsawler/folio/model"
)

// spanRecord is the wire form of one raw fragment: the record shape span
// extractors dump, with the bounding box in (x0,y0,x1,y1) corner form.
type spanRecord struct {
	Page  int       `json:"page"`
	Text  string    `json:"text"`
	Font  string    `json:"font"`
	Size  float64   `json:"size"`
	Flags int       `json:"flags"`
	BBox  []float64 `json:"bbox"`
}

// ReadStats reports what a JSON read accepted and skipped.
type ReadStats struct {
	// Records is the total number of records in the dump.
	Records int

	// Skipped is the number of records dropped for structural problems
	// (bad page number, wrong bounding-box arity).
	Skipped int
}

// ReadJSON reads a span dump: a JSON array of records with page, text, font,
// size, flags and a four-element bbox. Structurally broken records are
// skipped and tallied, never fatal; only malformed JSON itself is an error.
func ReadJSON(r io.Reader) (Source, ReadStats, error) {
	var stats ReadStats

	var records []spanRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, stats, fmt.Errorf("decode span dump: %w", err)
	}
	stats.Records = len(records)

	fragments := make([]model.Fragment, 0, len(records))
	for _, rec := range records {
		if rec.Page < 1 || len(rec.BBox) != 4 {
			stats.Skipped++
			continue
		}

		fragments = append(fragments, model.Fragment{
			Page:  rec.Page,
			Text:  rec.Text,
			Font:  rec.Font,
			Size:  rec.Size,
			Flags: rec.Flags,
			BBox:  model.NewBBoxFromCorners(rec.BBox[0], rec.BBox[1], rec.BBox[2], rec.BBox[3]),
		})
	}

	return FromFragments(fragments), stats, nil
}
