package layout

import (
	"strings"

	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/signature"
)

// Marker classification. Small raised fragments (reference numerals,
// footnote markers) and lowered ones (chemical indices) must stay bound to
// the text they annotate instead of fragmenting the line structure.

// superscriptRunes are the dedicated Unicode superscript code points.
var superscriptRunes = "⁰¹²³⁴⁵⁶⁷⁸⁹" +
	"⁺⁻⁼⁽⁾ⁿⁱ"

// subscriptRunes are the dedicated Unicode subscript code points.
var subscriptRunes = "₀₁₂₃₄₅₆₇₈₉" +
	"₊₋₌₍₎ₐₑₒₓₔ" +
	"ₕₖₗₘₙₚₛₜ"

// AttacherConfig holds configuration for superscript detection.
//
// Both thresholds are heuristics and inherently approximate: atypical fonts
// can produce false positives (genuinely small text absorbed as a marker) or
// false negatives (large markers kept as elements). Tune per document class
// when the defaults misbehave.
type AttacherConfig struct {
	// HeightThreshold marks elements shorter than this as marker
	// candidates. Default: 9.0 units
	HeightThreshold float64

	// SizeThreshold marks elements whose signature font size is below this
	// as marker candidates. Default: 7.0 units
	SizeThreshold float64
}

// DefaultAttacherConfig returns sensible default configuration.
func DefaultAttacherConfig() AttacherConfig {
	return AttacherConfig{
		HeightThreshold: 9.0,
		SizeThreshold:   7.0,
	}
}

// AttachStats reports how many markers were absorbed.
type AttachStats struct {
	Superscripts int
	Subscripts   int
}

// Attacher binds small raised or lowered marker elements to the element they
// follow, so they never form lines of their own.
type Attacher struct {
	config AttacherConfig
}

// NewAttacher creates an attacher with default configuration.
func NewAttacher() *Attacher {
	return &Attacher{config: DefaultAttacherConfig()}
}

// NewAttacherWithConfig creates an attacher with custom configuration.
func NewAttacherWithConfig(config AttacherConfig) *Attacher {
	return &Attacher{config: config}
}

// Attach walks column-classified elements in source order and absorbs marker
// candidates into the element that immediately precedes them on the same page
// and column. The marker's text is appended to the predecessor's Superscripts
// list and its fragment count folds into the predecessor's MergedCount, so
// per-page fragment accounting survives attachment.
//
// A candidate with no eligible predecessor (first on its page or column)
// stays in the stream as a normal element. Returns the surviving elements;
// the input slice is not modified.
func (a *Attacher) Attach(elements []model.Element) ([]model.Element, AttachStats) {
	var stats AttachStats
	if len(elements) == 0 {
		return nil, stats
	}

	kept := make([]model.Element, 0, len(elements))

	for _, elem := range elements {
		if len(kept) > 0 && a.isMarker(elem) {
			prev := &kept[len(kept)-1]
			if prev.Page == elem.Page && prev.Column == elem.Column {
				prev.Superscripts = append(prev.Superscripts, elem.Text)
				prev.MergedCount += elem.MergedCount

				if a.isSubscript(elem, *prev) {
					stats.Subscripts++
				} else {
					stats.Superscripts++
				}
				continue
			}
		}

		kept = append(kept, elem)
	}

	return kept, stats
}

// isMarker reports whether an element qualifies as a marker candidate: small
// height, small signature font size, or dedicated Unicode script characters.
func (a *Attacher) isMarker(elem model.Element) bool {
	if elem.BBox.Height < a.config.HeightThreshold {
		return true
	}
	if size := signature.Size(elem.Signature); size > 0 && size < a.config.SizeThreshold {
		return true
	}
	return strings.ContainsAny(elem.Text, superscriptRunes) ||
		strings.ContainsAny(elem.Text, subscriptRunes)
}

// isSubscript distinguishes lowered from raised markers, for diagnostics
// only: dedicated Unicode subscripts by content, otherwise by whether the
// marker sits below the center of the element absorbing it.
func (a *Attacher) isSubscript(marker, host model.Element) bool {
	if strings.ContainsAny(marker.Text, subscriptRunes) {
		return true
	}
	if strings.ContainsAny(marker.Text, superscriptRunes) {
		return false
	}
	return marker.BBox.CenterY() > host.BBox.CenterY()
}
