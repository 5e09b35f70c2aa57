// Package format identifies Word documents by name and by content.
//
// Content sniffing lets callers reject files that are not OOXML word
// processing packages (legacy .doc, spreadsheets, presentations, PDF)
// before handing them to the parser.
package format

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates an Office Open XML word processing package
	// (.docx, .docm, .dotx).
	DOCX
	// DOC indicates a legacy binary Word document (OLE compound file).
	DOC
	// XLSX indicates an Office Open XML spreadsheet.
	XLSX
	// PPTX indicates an Office Open XML presentation.
	PPTX
	// ODT indicates an OpenDocument text document.
	ODT
	// PDF indicates a PDF document.
	PDF
	// ZIP indicates a ZIP archive that is none of the above.
	ZIP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case DOC:
		return "DOC"
	case XLSX:
		return "XLSX"
	case PPTX:
		return "PPTX"
	case ODT:
		return "ODT"
	case PDF:
		return "PDF"
	case ZIP:
		return "ZIP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case DOC:
		return ".doc"
	case XLSX:
		return ".xlsx"
	case PPTX:
		return ".pptx"
	case ODT:
		return ".odt"
	case PDF:
		return ".pdf"
	case ZIP:
		return ".zip"
	default:
		return ""
	}
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx", ".docm", ".dotx", ".dotm":
		return DOCX
	case ".doc", ".dot":
		return DOC
	case ".xlsx", ".xlsm":
		return XLSX
	case ".pptx", ".pptm":
		return PPTX
	case ".odt":
		return ODT
	case ".pdf":
		return PDF
	case ".zip":
		return ZIP
	default:
		return Unknown
	}
}

var (
	magicZIP = []byte{0x50, 0x4B, 0x03, 0x04}
	magicOLE = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	magicPDF = []byte("%PDF")
)

// DetectFromMagic checks leading bytes. ZIP-based formats cannot be told
// apart this way, so every ZIP archive reports ZIP; use DetectFromReader
// to look inside.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicPDF):
		return PDF
	case bytes.HasPrefix(data, magicOLE):
		return DOC
	case bytes.HasPrefix(data, magicZIP):
		return ZIP
	default:
		return Unknown
	}
}

// DetectFromReader inspects the content to determine the format.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, len(magicOLE))
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}

	f := DetectFromMagic(magic[:n])
	if f != ZIP {
		return f, nil
	}
	return detectZIPFormat(r, size)
}

// detectZIPFormat inspects a ZIP archive's entry names. A word processing
// package must contain both the content types part and word/document.xml.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	var contentTypes, word, xl, ppt bool
	for _, f := range zr.File {
		switch {
		case f.Name == "[Content_Types].xml":
			contentTypes = true
		case f.Name == "word/document.xml":
			word = true
		case strings.HasPrefix(f.Name, "xl/"):
			xl = true
		case strings.HasPrefix(f.Name, "ppt/"):
			ppt = true
		case f.Name == "mimetype":
			if isODT(f) {
				return ODT, nil
			}
		}
	}

	switch {
	case contentTypes && word:
		return DOCX, nil
	case contentTypes && xl:
		return XLSX, nil
	case contentTypes && ppt:
		return PPTX, nil
	default:
		return ZIP, nil
	}
}

// isODT reads the OpenDocument mimetype entry.
func isODT(f *zip.File) bool {
	rc, err := f.Open()
	if err != nil {
		return false
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, 256))
	if err != nil {
		return false
	}
	return strings.HasPrefix(string(data), "application/vnd.oasis.opendocument.text")
}

// DetectFile sniffs the format of the file at path.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Unknown, err
	}

	format, err := DetectFromReader(f, info.Size())
	if err != nil {
		return Unknown, fmt.Errorf("detecting format of %s: %w", path, err)
	}
	return format, nil
}

// IsDOCX reports whether the file at path is a word processing package.
func IsDOCX(path string) (bool, error) {
	f, err := DetectFile(path)
	if err != nil {
		return false, err
	}
	return f == DOCX, nil
}
