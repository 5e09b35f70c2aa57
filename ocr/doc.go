// Package ocr recognizes text in images embedded in documents.
//
// The Tesseract-backed implementation is compiled only with the "ocr" build
// tag, since it links against the Tesseract C library through gosseract:
//
//	go build -tags ocr
//
// Without the tag every constructor returns ErrOCRNotEnabled.
package ocr

import (
	"errors"
	"strings"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// ErrClientClosed is returned by Recognize on a closed Client.
var ErrClientClosed = errors.New("ocr client is closed")

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "eng"

// Result is the recognized text of one media entry.
type Result struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// supportedFormats lists the image formats Tesseract reads through Leptonica.
var supportedFormats = map[string]bool{
	"png":  true,
	"jpeg": true,
	"gif":  true,
	"bmp":  true,
	"tiff": true,
	"webp": true,
}

// Supports reports whether images of the given format can be recognized.
func Supports(format string) bool {
	return supportedFormats[format]
}

// languages splits a "+" separated language list such as "eng+fra".
func languages(lang string) []string {
	if strings.TrimSpace(lang) == "" {
		return []string{DefaultLanguage}
	}
	var out []string
	for _, l := range strings.Split(lang, "+") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return []string{DefaultLanguage}
	}
	return out
}
