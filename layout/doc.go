// Package layout reconstructs reading order for merged text elements:
// column membership, superscript attachment, line grouping, and final
// sequencing.
//
// # Columns
//
// [ClassifyColumn] assigns an element to the left or right column from its
// left edge and a threshold, a pure stateless split suited to two-column
// layouts, with single-column pages degenerating to all-left. The threshold
// is a property of the document class; [ThresholdEstimator] can derive one
// from a page's whitespace structure when the default does not fit.
//
// # Superscripts
//
// The [Attacher] runs before line numbering and absorbs small raised or
// lowered markers (footnote numerals, reference indices, Unicode scripts)
// into the element they follow, so a reference numeral never breaks the line
// structure of the author name or sentence it annotates.
//
// # Lines and Sequencing
//
// The [Assembler] bands elements into lines by vertical center and numbers
// lines column-major within each page: the whole left column top to bottom,
// then the right. [Sequence] then sorts the full document stream by
// (page, column, line, left edge) and assigns final ids, a total order
// determined entirely by input geometry, independent of processing order.
package layout
