package model

// Fragment represents a single positioned run of text as reported by a span
// source, prior to any merging. Fragments are immutable: they are produced
// once by the source and only read by downstream stages.
type Fragment struct {
	// Page is the 1-based page number the fragment appears on.
	Page int `json:"page"`

	// Text is the raw text content of the fragment.
	Text string `json:"text"`

	// Font is the reported font name. May be empty; signature computation
	// substitutes a placeholder for missing fonts.
	Font string `json:"font"`

	// Size is the font size in page units (typically points).
	Size float64 `json:"size"`

	// Flags is the integer style-flag value reported by the source
	// (bold/italic/serif bits, source-specific).
	Flags int `json:"flags"`

	// BBox is the fragment's bounding box in top-left-origin coordinates.
	BBox BBox `json:"bbox"`
}
