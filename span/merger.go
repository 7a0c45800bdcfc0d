package span

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/signature"
)

// Config holds configuration for fragment merging.
type Config struct {
	// MergeConsecutive enables folding of adjacent same-signature fragments.
	// When false every fragment becomes its own element with MergedCount 1.
	// Default: true
	MergeConsecutive bool

	// YTolerance is the maximum difference between the top edges of the open
	// element and the next fragment for them to be considered vertically
	// continuous. Default: 3.0 units
	YTolerance float64

	// XGapMax is the maximum horizontal gap between the open element's right
	// edge and the next fragment's left edge. Gaps at or beyond this are
	// line or column breaks, never merges. Default: 50.0 units
	XGapMax float64

	// CharSpacing is the gap below which two fragments are treated as parts
	// of one word and concatenated without an inserted space. Gaps between
	// CharSpacing and XGapMax get exactly one space. Default: 1.0 units
	CharSpacing float64
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MergeConsecutive: true,
		YTolerance:       3.0,
		XGapMax:          50.0,
		CharSpacing:      1.0,
	}
}

// Stats reports what sanitization dropped before merging.
type Stats struct {
	// Empty is the number of fragments whose trimmed text was empty.
	Empty int

	// Malformed is the number of fragments with an invalid bounding box.
	Malformed int
}

// Sanitize prepares raw fragments for merging: text is NFC-normalized and
// trimmed, fragments with empty text or invalid bounding boxes are dropped
// and tallied. Dropped fragments do not count toward merge statistics.
func Sanitize(fragments []model.Fragment) ([]model.Fragment, Stats) {
	var stats Stats

	out := make([]model.Fragment, 0, len(fragments))
	for _, frag := range fragments {
		if !frag.BBox.IsValid() {
			stats.Malformed++
			continue
		}

		text := strings.TrimSpace(norm.NFC.String(frag.Text))
		if text == "" {
			stats.Empty++
			continue
		}

		frag.Text = text
		out = append(out, frag)
	}

	return out, stats
}

// Merger folds adjacent, geometrically continuous fragments of identical
// typographic signature into logical elements.
type Merger struct {
	config Config
}

// NewMerger creates a merger with default configuration.
func NewMerger() *Merger {
	return &Merger{config: DefaultConfig()}
}

// NewMergerWithConfig creates a merger with custom configuration.
func NewMergerWithConfig(config Config) *Merger {
	return &Merger{config: config}
}

// Merge folds a page's sanitized fragments, in source order, into elements.
//
// Two consecutive fragments join the same element iff they share a signature
// and page, their top edges are within YTolerance, and the horizontal gap
// between them is below XGapMax. The element's bounding box is the union of
// its fragments' boxes and MergedCount tracks how many fragments folded in.
//
// The fold produces new elements rather than mutating fragments, so the input
// slice is never modified and repeated calls on the same input give identical
// results.
func (m *Merger) Merge(fragments []model.Fragment) []model.Element {
	if len(fragments) == 0 {
		return nil
	}

	if !m.config.MergeConsecutive {
		elements := make([]model.Element, 0, len(fragments))
		for _, frag := range fragments {
			elements = append(elements, newElement(frag))
		}
		return elements
	}

	var elements []model.Element
	open := newElement(fragments[0])

	for _, frag := range fragments[1:] {
		sig := signature.Compute(frag)
		if m.shouldMerge(open, frag, sig) {
			open = m.fold(open, frag)
			continue
		}

		elements = append(elements, open)
		open = newElement(frag)
	}

	return append(elements, open)
}

// shouldMerge applies the merge criteria in order: signature, page, vertical
// proximity, horizontal continuity.
func (m *Merger) shouldMerge(open model.Element, frag model.Fragment, sig string) bool {
	if open.Signature != sig {
		return false
	}
	if open.Page != frag.Page {
		return false
	}
	if abs(frag.BBox.Y-open.BBox.Y) >= m.config.YTolerance {
		return false
	}
	return frag.BBox.X-open.BBox.Right() < m.config.XGapMax
}

// fold combines a fragment into an open element, returning the new element.
// Text is appended directly when the gap is within character spacing and with
// a single space otherwise, so run-together words stay apart without doubling
// spacing already present in the fragment text.
func (m *Merger) fold(open model.Element, frag model.Fragment) model.Element {
	gap := frag.BBox.X - open.BBox.Right()

	if gap < m.config.CharSpacing {
		open.Text += frag.Text
	} else {
		open.Text += " " + frag.Text
	}

	open.BBox = open.BBox.Union(frag.BBox)
	open.MergedCount++
	return open
}

// newElement wraps a single fragment as an element.
func newElement(frag model.Fragment) model.Element {
	return model.Element{
		Page:        frag.Page,
		Text:        frag.Text,
		Signature:   signature.Compute(frag),
		BBox:        frag.BBox,
		MergedCount: 1,
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
