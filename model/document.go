package model

// ParsedDoc is the result of parsing a DOCX package.
type ParsedDoc struct {
	Paragraphs []Para      `json:"paragraphs"`
	Tables     []DocTable  `json:"tables"`
	Hyperlinks []Hyperlink `json:"hyperlinks"`
	Comments   []Comment   `json:"comments"`
	Metadata   Metadata    `json:"metadata"`
	Images     []string    `json:"images"`
}

// NewParsedDoc creates an empty document with non-nil collections.
func NewParsedDoc() *ParsedDoc {
	return &ParsedDoc{
		Paragraphs: make([]Para, 0),
		Tables:     make([]DocTable, 0),
		Hyperlinks: make([]Hyperlink, 0),
		Comments:   make([]Comment, 0),
		Images:     make([]string, 0),
	}
}

// Headings returns every paragraph carrying a heading level, in order.
func (d *ParsedDoc) Headings() []Heading {
	headings := make([]Heading, 0)
	for _, p := range d.Paragraphs {
		if p.Level != nil {
			headings = append(headings, Heading{Level: *p.Level, Text: p.Text()})
		}
	}
	return headings
}

// TablesAsPlain returns every table flattened by DocTable.ToPlain.
func (d *ParsedDoc) TablesAsPlain() [][][]string {
	tables := make([][][]string, len(d.Tables))
	for i, t := range d.Tables {
		tables[i] = t.ToPlain()
	}
	return tables
}

// Metadata holds the core document properties. Each field is nil when the
// package does not define it.
type Metadata struct {
	Title          *string `json:"title"`
	Author         *string `json:"author"`
	Created        *string `json:"created"`
	Modified       *string `json:"modified"`
	LastModifiedBy *string `json:"last_modified_by"`
	Subject        *string `json:"subject"`
	Description    *string `json:"description"`
	Keywords       *string `json:"keywords"`
	Revision       *string `json:"revision"`
	Category       *string `json:"category"`
}

// MetadataKeys lists the metadata keys in serialization order.
var MetadataKeys = []string{
	"title", "author", "created", "modified", "last_modified_by",
	"subject", "description", "keywords", "revision", "category",
}

// Map returns the metadata keyed by MetadataKeys.
func (m Metadata) Map() map[string]*string {
	return map[string]*string{
		"title":            m.Title,
		"author":           m.Author,
		"created":          m.Created,
		"modified":         m.Modified,
		"last_modified_by": m.LastModifiedBy,
		"subject":          m.Subject,
		"description":      m.Description,
		"keywords":         m.Keywords,
		"revision":         m.Revision,
		"category":         m.Category,
	}
}
