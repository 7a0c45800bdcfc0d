// Package source supplies pages of raw positioned fragments to a processor.
//
// A [Source] is anything that can enumerate fragment pages in ascending page
// order. The package ships three producers:
//
//   - [FromPages] and [FromFragments] wrap fragments already in memory, for
//     callers that run their own extraction.
//   - [ReadJSON] reads a span dump: a JSON array of fragment records as
//     produced by common span extractors, with corner-form bounding boxes.
//   - [OCRImages] recognizes page images with Tesseract (build tag "ocr";
//     without the tag all OCR entry points return [ErrOCRNotEnabled]).
//
// # Coordinate Space
//
// Producers must deliver bounding boxes in a top-left-origin space with Y
// increasing downward. [ReadJSON] and the OCR producer already do; callers
// constructing fragments from bottom-left-origin data must flip Y first.
//
// # Error Handling
//
// Structurally broken records in a span dump are skipped and tallied in
// [ReadStats] rather than failing the read. Only undecodable JSON and OCR
// engine failures are reported as errors.
package source
