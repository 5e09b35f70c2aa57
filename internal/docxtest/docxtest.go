// Package docxtest builds small DOCX packages for tests.
package docxtest

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Default Extension="png" ContentType="image/png"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
</Relationships>`

// Relationship type URIs used by fixtures.
const (
	RelHyperlink = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	RelComments  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	RelImage     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

// Rel is one entry of word/_rels/document.xml.rels.
type Rel struct {
	ID       string
	Type     string
	Target   string
	External bool
}

// Package describes the parts of a test document.
type Package struct {
	// Body is the inner XML of <w:body>.
	Body string
	// Styles is the inner XML of <w:styles>; empty omits styles.xml.
	Styles string
	// Comments is the inner XML of <w:comments>; empty omits comments.xml.
	Comments string
	// Core is the inner XML of <cp:coreProperties>; empty omits core.xml.
	Core string
	// Rels are the document relationships.
	Rels []Rel
	// Extra holds additional raw entries, written in sorted name order after
	// the standard parts.
	Extra map[string][]byte
	// Ordered holds raw entries written in slice order after Extra.
	Ordered []Entry
}

// Entry is a raw archive entry.
type Entry struct {
	Name string
	Data []byte
}

// Document wraps body XML in a complete word/document.xml.
func Document(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <w:body>` + body + `</w:body>
</w:document>`
}

// Write creates the package in a temporary directory and returns its path.
func Write(t testing.TB, pkg Package) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	add := func(name string, data []byte) {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	add("[Content_Types].xml", []byte(contentTypes))
	add("_rels/.rels", []byte(packageRels))
	add("word/document.xml", []byte(Document(pkg.Body)))

	rels := pkg.Rels
	if pkg.Comments != "" && !hasType(rels, RelComments) {
		rels = append(rels, Rel{ID: "rIdComments", Type: RelComments, Target: "comments.xml"})
	}
	add("word/_rels/document.xml.rels", []byte(relationships(rels)))

	if pkg.Styles != "" {
		add("word/styles.xml", []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+pkg.Styles+`</w:styles>`))
	}
	if pkg.Comments != "" {
		add("word/comments.xml", []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:comments xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+pkg.Comments+`</w:comments>`))
	}
	if pkg.Core != "" {
		add("docProps/core.xml", []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`+pkg.Core+`</cp:coreProperties>`))
	}

	names := make([]string, 0, len(pkg.Extra))
	for name := range pkg.Extra {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		add(name, pkg.Extra[name])
	}
	for _, e := range pkg.Ordered {
		add(e.Name, e.Data)
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return path
}

// WriteRaw creates an archive with exactly the given entries.
func WriteRaw(t testing.TB, entries ...Entry) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "raw.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			t.Fatalf("failed to add %s: %v", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			t.Fatalf("failed to write %s: %v", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return path
}

func hasType(rels []Rel, relType string) bool {
	for _, r := range rels {
		if r.Type == relType {
			return true
		}
	}
	return false
}

func relationships(rels []Rel) string {
	s := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`
	for _, r := range rels {
		mode := ""
		if r.External {
			mode = ` TargetMode="External"`
		}
		s += `<Relationship Id="` + r.ID + `" Type="` + r.Type + `" Target="` + r.Target + `"` + mode + `/>`
	}
	return s + `</Relationships>`
}

// Para returns a paragraph with one plain run per text.
func Para(style string, texts ...string) string {
	s := `<w:p>`
	if style != "" {
		s += `<w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>`
	}
	for _, t := range texts {
		s += `<w:r><w:t xml:space="preserve">` + t + `</w:t></w:r>`
	}
	return s + `</w:p>`
}

// Table returns a table whose cells each hold one paragraph.
func Table(rows ...[]string) string {
	s := `<w:tbl>`
	for _, row := range rows {
		s += `<w:tr>`
		for _, cell := range row {
			s += `<w:tc>` + Para("", cell) + `</w:tc>`
		}
		s += `</w:tr>`
	}
	return s + `</w:tbl>`
}

// HeadingStyles defines Heading1..Heading3 the way Word writes them.
const HeadingStyles = `
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/></w:style>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/></w:style>
<w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:basedOn w:val="Normal"/></w:style>
<w:style w:type="paragraph" w:styleId="Quote"><w:name w:val="Quote"/></w:style>
<w:style w:type="paragraph" w:styleId="SourceCode"><w:name w:val="Source Code"/></w:style>
<w:style w:type="paragraph" w:styleId="HeadingPlain"><w:name w:val="Heading"/></w:style>`
