// Package model provides the data types shared by all processing stages.
//
// This package defines the user-facing structures that represent positioned
// text at its two levels of granularity: the raw [Fragment] as reported by a
// span source, and the logical [Element] produced by merging, column
// classification and line assembly. All processing operations ultimately
// produce these types, making them the primary API for consuming results.
//
// # Coordinate Space
//
// All geometry uses a page-local coordinate space with the origin at the
// top-left corner and Y increasing downward, in units consistent across the
// document (typically typographic points). The [BBox] type carries position
// in this space; [NewBBoxFromCorners] converts from the (x0,y0,x1,y1) corner
// form sources usually report.
//
// # Fragments and Elements
//
// A [Fragment] is immutable input: one positioned run of text with its font
// name, size and style flags. An [Element] is a possibly-merged unit of text
// with a single typographic signature, a minimal enclosing bounding box, and
// line/column metadata:
//
//   - LineID / LineNum - per-page line identity in column-major reading order
//   - Column - left/right membership in a two-column layout
//   - LineStart - marks the leftmost element of each line
//   - Superscripts - small marker fragments bound to the element
//
// Element IDs are assigned last and are strictly increasing in final reading
// order.
package model
