package format

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/docxparse/internal/docxtest"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{DOCX, "DOCX"},
		{DOC, "DOC"},
		{XLSX, "XLSX"},
		{PPTX, "PPTX"},
		{ODT, "ODT"},
		{PDF, "PDF"},
		{ZIP, "ZIP"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{DOCX, ".docx"},
		{DOC, ".doc"},
		{XLSX, ".xlsx"},
		{PPTX, ".pptx"},
		{ODT, ".odt"},
		{PDF, ".pdf"},
		{ZIP, ".zip"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"document.docx", DOCX},
		{"document.DOCX", DOCX},
		{"macro.docm", DOCX},
		{"template.dotx", DOCX},
		{"legacy.doc", DOC},
		{"sheet.xlsx", XLSX},
		{"deck.pptx", PPTX},
		{"text.odt", ODT},
		{"paper.pdf", PDF},
		{"bundle.zip", ZIP},
		{"/path/to/report.docx", DOCX},
		{"noextension", Unknown},
		{"notes.txt", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.7"), PDF},
		{"ole", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}, DOC},
		{"zip", []byte{0x50, 0x4B, 0x03, 0x04, 0x14}, ZIP},
		{"short", []byte("PK"), Unknown},
		{"empty", nil, Unknown},
		{"text", []byte("hello world"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_PDF(t *testing.T) {
	data := []byte("%PDF-1.4\n%%EOF")

	format, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != PDF {
		t.Errorf("DetectFromReader() = %v, want PDF", format)
	}
}

func TestDetectFromReader_Unknown(t *testing.T) {
	data := []byte("Hello, World! This is plain text.")

	format, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Unknown {
		t.Errorf("DetectFromReader() = %v, want Unknown", format)
	}
}

func TestDetectFile(t *testing.T) {
	contentTypes := docxtest.Entry{Name: "[Content_Types].xml", Data: []byte("<Types/>")}

	tests := []struct {
		name string
		path string
		want Format
	}{
		{
			name: "docx",
			path: docxtest.Write(t, docxtest.Package{Body: docxtest.Para("", "hi")}),
			want: DOCX,
		},
		{
			name: "xlsx",
			path: docxtest.WriteRaw(t, contentTypes, docxtest.Entry{Name: "xl/workbook.xml", Data: []byte("<workbook/>")}),
			want: XLSX,
		},
		{
			name: "pptx",
			path: docxtest.WriteRaw(t, contentTypes, docxtest.Entry{Name: "ppt/presentation.xml", Data: []byte("<p/>")}),
			want: PPTX,
		},
		{
			name: "odt",
			path: docxtest.WriteRaw(t, docxtest.Entry{Name: "mimetype", Data: []byte("application/vnd.oasis.opendocument.text")}),
			want: ODT,
		},
		{
			name: "word folder without content types",
			path: docxtest.WriteRaw(t, docxtest.Entry{Name: "word/document.xml", Data: []byte("<w:document/>")}),
			want: ZIP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFile(tt.path)
			if err != nil {
				t.Fatalf("DetectFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDOCX(t *testing.T) {
	docx := docxtest.Write(t, docxtest.Package{Body: docxtest.Para("", "hi")})
	ok, err := IsDOCX(docx)
	if err != nil || !ok {
		t.Errorf("IsDOCX(docx) = %v, %v; want true, nil", ok, err)
	}

	text := filepath.Join(t.TempDir(), "notes.docx")
	if err := os.WriteFile(text, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	ok, err = IsDOCX(text)
	if err != nil || ok {
		t.Errorf("IsDOCX(text) = %v, %v; want false, nil", ok, err)
	}

	if _, err := IsDOCX(filepath.Join(t.TempDir(), "missing.docx")); err == nil {
		t.Error("IsDOCX(missing) expected error")
	}
}
