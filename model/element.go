package model

// BodyKind identifies the kind of a top-level body element.
type BodyKind int

const (
	BodyParagraph BodyKind = iota
	BodyTable
)

func (k BodyKind) String() string {
	switch k {
	case BodyParagraph:
		return "paragraph"
	case BodyTable:
		return "table"
	default:
		return "unknown"
	}
}

// BodyElement is one entry of the document body in storage order. Index points
// into ParsedDoc.Paragraphs or ParsedDoc.Tables depending on Kind.
type BodyElement struct {
	Kind  BodyKind
	Index int
}

// Run is a contiguous span of text sharing one set of formatting.
type Run struct {
	Text      string   `json:"text"`
	Bold      bool     `json:"bold"`
	Italic    bool     `json:"italic"`
	Underline bool     `json:"underline"`
	FontName  *string  `json:"font_name"`
	FontSize  *float64 `json:"font_size"` // points
	Color     *string  `json:"color"`     // hex RGB, e.g. "FF0000"
}

// DefaultStyle is the style name of a paragraph that carries no style.
const DefaultStyle = "Normal"

// Para is a block-level paragraph.
type Para struct {
	Runs      []Run   `json:"runs"`
	Style     string  `json:"style"`
	Alignment *string `json:"alignment"`
	Level     *int    `json:"level"` // heading level, nil for body text
}

// Text returns the concatenated text of all runs.
func (p Para) Text() string {
	switch len(p.Runs) {
	case 0:
		return ""
	case 1:
		return p.Runs[0].Text
	}
	n := 0
	for _, r := range p.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range p.Runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

// IsHeading reports whether the paragraph carries a heading level.
func (p Para) IsHeading() bool { return p.Level != nil }

// Heading is an outline entry.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Hyperlink is a link found in a top-level paragraph.
type Hyperlink struct {
	Text           string `json:"text"`
	URL            string `json:"url"` // "#" when the target could not be resolved
	ParagraphIndex int    `json:"paragraph_index"`
}

// Comment is a review comment. Comments are not anchored to the text they
// annotate.
type Comment struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Date   string `json:"date"`
	Text   string `json:"text"`
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// IntPtr returns a pointer to i.
func IntPtr(i int) *int { return &i }

// Float64Ptr returns a pointer to f.
func Float64Ptr(f float64) *float64 { return &f }
