//go:build !ocr

package source

import (
	"errors"

	"github.com/tsawler/folio/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// OCR is a stub fragment producer that returns errors for all operations.
//
// This is the implementation used when the "ocr" build tag is not set. To
// enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed.
type OCR struct{}

// NewOCR returns an error indicating OCR support is not enabled.
func NewOCR() (*OCR, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub. It is safe to call on a nil receiver.
func (o *OCR) Close() error {
	return nil
}

// SetLanguage returns ErrOCRNotEnabled.
func (o *OCR) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// Fragments returns ErrOCRNotEnabled.
func (o *OCR) Fragments(page int, imageData []byte) ([]model.Fragment, error) {
	return nil, ErrOCRNotEnabled
}

// ocrSource is the stub image source.
type ocrSource struct{}

// OCRImages returns a source whose Pages call fails with ErrOCRNotEnabled.
func OCRImages(ocr *OCR, images ...[]byte) Source {
	return &ocrSource{}
}

// Pages returns ErrOCRNotEnabled.
func (s *ocrSource) Pages() ([]Page, error) {
	return nil, ErrOCRNotEnabled
}
