// Package span folds raw positioned text fragments into logical elements.
//
// Span sources report text in small runs: a word, part of a word, or a short
// phrase, each with its own bounding box. The [Merger] walks a page's
// fragments in source order and folds consecutive runs back together when
// they share a typographic signature and are geometrically continuous:
//
//	merger := span.NewMerger()
//	fragments, stats := span.Sanitize(raw)
//	elements := merger.Merge(fragments)
//
// Merging is a left fold producing new immutable elements; the bounding box
// of an element is always the exact union of its constituent fragments and
// MergedCount records how many folded in. With merging disabled every
// fragment passes through as its own element.
//
// [Sanitize] runs first: it NFC-normalizes and trims fragment text, then
// drops empty and geometrically invalid fragments, tallying both so callers
// can surface the counts as diagnostics.
package span
