//go:build ocr

package source

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/folio/model"
)

// OCR turns page images into fragment pages by running Tesseract word
// recognition. OCR output carries no font information, so every fragment
// gets the placeholder font and its box height as the size; all words on a
// page therefore share one signature unless their heights differ.
//
// Requires Tesseract to be installed. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
type OCR struct {
	client *gosseract.Client
}

// NewOCR creates an OCR-backed fragment producer. Close it when done to
// release Tesseract resources.
func NewOCR() (*OCR, error) {
	return &OCR{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (o *OCR) Close() error {
	if o.client != nil {
		return o.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for recognition. Multiple languages can
// be specified as a "+" separated string (e.g. "eng+fra"). Default is "eng".
func (o *OCR) SetLanguage(lang string) error {
	return o.client.SetLanguage(lang)
}

// Fragments recognizes one page image (PNG, TIFF, JPEG, etc.) and returns
// its word-level fragments. Coordinates are in image pixels, origin
// top-left, which is already this module's coordinate space.
func (o *OCR) Fragments(page int, imageData []byte) ([]model.Fragment, error) {
	if err := o.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("set page %d image: %w", page, err)
	}

	boxes, err := o.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("recognize page %d: %w", page, err)
	}

	fragments := make([]model.Fragment, 0, len(boxes))
	for _, box := range boxes {
		bbox := model.NewBBoxFromCorners(
			float64(box.Box.Min.X), float64(box.Box.Min.Y),
			float64(box.Box.Max.X), float64(box.Box.Max.Y),
		)

		fragments = append(fragments, model.Fragment{
			Page: page,
			Text: box.Word,
			Size: bbox.Height,
			BBox: bbox,
		})
	}

	return fragments, nil
}

// ocrSource recognizes a list of page images lazily, one page per image.
type ocrSource struct {
	ocr    *OCR
	images [][]byte
}

// OCRImages creates a source over page images, numbered from 1 in slice
// order. Recognition runs when Pages is called; the OCR client must stay
// open until then.
func OCRImages(ocr *OCR, images ...[]byte) Source {
	return &ocrSource{ocr: ocr, images: images}
}

// Pages recognizes every image and returns the resulting fragment pages.
func (s *ocrSource) Pages() ([]Page, error) {
	pages := make([]Page, 0, len(s.images))
	for i, img := range s.images {
		number := i + 1
		fragments, err := s.ocr.Fragments(number, img)
		if err != nil {
			return nil, err
		}
		pages = append(pages, Page{Number: number, Fragments: fragments})
	}
	return pages, nil
}
