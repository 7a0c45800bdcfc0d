package model

import (
	"encoding/json"
	"fmt"
)

// Column identifies the layout column an element belongs to.
type Column int

const (
	// ColumnLeft is the left column of a two-column layout, and the only
	// column of a single-column layout.
	ColumnLeft Column = iota
	// ColumnRight is the right column of a two-column layout.
	ColumnRight
)

// String returns "left" or "right".
func (c Column) String() string {
	if c == ColumnRight {
		return "right"
	}
	return "left"
}

// MarshalJSON encodes the column as its string form.
func (c Column) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes "left" or "right".
func (c *Column) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "left":
		*c = ColumnLeft
	case "right":
		*c = ColumnRight
	default:
		return fmt.Errorf("unknown column %q", s)
	}
	return nil
}

// Element is a logical, possibly-merged unit of text carrying one typographic
// signature, one bounding box, and line/column metadata.
//
// Elements are created by the span merger, refined by the column classifier,
// superscript attacher and line assembler, and frozen once the sequencer
// assigns ID.
type Element struct {
	// ID is the final reading-order identifier. IDs are unique, contiguous
	// and strictly increasing in output order.
	ID int `json:"id"`

	// Page is the 1-based page number.
	Page int `json:"page"`

	// Text is the merged text content.
	Text string `json:"text"`

	// Signature is the typographic identity string (font_size_flags).
	Signature string `json:"signature"`

	// BBox is the minimal bounding box enclosing all merged fragments.
	BBox BBox `json:"position"`

	// MergedCount is the number of source fragments folded into this
	// element. Always 1 when merging is disabled.
	MergedCount int `json:"merged_count"`

	// LineID identifies the line within the document, formatted
	// "p<page>_L<line_num>". Unique within a page.
	LineID string `json:"line_id"`

	// LineNum is the per-page line counter, assigned in column-major
	// reading order (all left-column lines, then all right-column lines).
	LineNum int `json:"line_num"`

	// Column is the layout column the element belongs to.
	Column Column `json:"line_position"`

	// LineStart is true for exactly the leftmost element of each line.
	LineStart bool `json:"line_start"`

	// Superscripts holds the text of small raised/lowered marker fragments
	// bound to this element instead of forming their own line, in the order
	// they were attached.
	Superscripts []string `json:"superscripts,omitempty"`
}
