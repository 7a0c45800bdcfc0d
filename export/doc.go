// Package export serializes reconstruction results for downstream use.
//
// The full payload is a [Document]: a metadata block, the signature catalog
// and the elements in reading order. Three formats are supported:
//
//   - [FormatJSON] writes the whole document as one JSON object, the shape
//     archival tooling expects.
//   - [FormatJSONL] writes one element per line, for streaming into
//     indexing or chunking pipelines.
//   - [FormatCSV] writes a fixed-column table, one row per element, for
//     spreadsheets and quick inspection.
//
// [WriteReport] additionally renders a plain-text analysis of a signature
// catalog, with a frequency view and a point-size view.
package export
