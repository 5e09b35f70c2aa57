package docx

import (
	"encoding/xml"
	"strings"

	"github.com/tsawler/docxparse/model"
)

// nsW is the WordprocessingML main namespace.
const nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Relationship types used to locate optional parts.
const (
	relTypeComments  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	relTypeCoreProps = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
)

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body.
// Paragraphs and Tables hold the top-level elements of each kind; Elements
// records the order they were read in.
type bodyXML struct {
	Paragraphs []paragraphXML
	Tables     []tableXML
	Elements   []model.BodyElement
}

// UnmarshalXML decodes the direct children of <w:body> in storage order.
// Anything other than paragraphs and tables (sectPr, sdt, bookmarks) is skipped.
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Paragraphs = append(b.Paragraphs, p)
				b.Elements = append(b.Elements, model.BodyElement{Kind: model.BodyParagraph, Index: len(b.Paragraphs) - 1})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Tables = append(b.Tables, tbl)
				b.Elements = append(b.Elements, model.BodyElement{Kind: model.BodyTable, Index: len(b.Tables) - 1})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// paragraphXML represents a paragraph element (<w:p>).
// Runs holds the direct <w:r> children only. Runs nested in hyperlinks are
// reachable through Hyperlinks; other wrappers are skipped.
type paragraphXML struct {
	Properties paragraphPropsXML
	Runs       []runXML
	Hyperlinks []hyperlinkXML
}

// UnmarshalXML decodes paragraph children in order.
func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if err := d.DecodeElement(&p.Properties, &t); err != nil {
					return err
				}
			case "r":
				var r runXML
				if err := d.DecodeElement(&r, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, r)
			case "hyperlink":
				var h hyperlinkXML
				if err := d.DecodeElement(&h, &t); err != nil {
					return err
				}
				p.Hyperlinks = append(p.Hyperlinks, h)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// paragraphPropsXML holds the <w:pPr> values the extractor reads.
type paragraphPropsXML struct {
	Style         valXML `xml:"pStyle"`
	Justification valXML `xml:"jc"` // left, center, right, both, ...
}

// runXML represents a text run (<w:r>).
type runXML struct {
	Properties runPropsXML
	// Text is the visible text with tabs and line breaks in place.
	Text string
	// Segments holds the <w:t> contents only.
	Segments []string
}

// UnmarshalXML assembles run text in child order.
func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sb strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				if err := d.DecodeElement(&r.Properties, &t); err != nil {
					return err
				}
				continue
			case "t":
				var s string
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				sb.WriteString(s)
				r.Segments = append(r.Segments, s)
				continue
			case "tab", "ptab":
				sb.WriteByte('\t')
			case "br":
				// Page and column breaks have no textual form.
				if attrValue(t, "type") == "" || attrValue(t, "type") == "textWrapping" {
					sb.WriteByte('\n')
				}
			case "cr":
				sb.WriteByte('\n')
			case "noBreakHyphen":
				sb.WriteByte('-')
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			r.Text = sb.String()
			return nil
		}
	}
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold      boolXML `xml:"b"`
	Italic    boolXML `xml:"i"`
	Underline valXML  `xml:"u"`
	FontSize  valXML  `xml:"sz"` // half-points
	Font      fontXML `xml:"rFonts"`
	Color     valXML  `xml:"color"` // hex RGB or "auto"
}

// boolXML represents an on/off property. An element with no val is on.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// On reports whether the property is present and not switched off.
func (b boolXML) On() bool {
	if b.XMLName.Local == "" {
		return false
	}
	switch strings.ToLower(b.Val) {
	case "false", "0", "off":
		return false
	}
	return true
}

// fontXML represents font settings. Only the ASCII slot names the run font;
// hAnsi, eastAsia and cs are ignored.
type fontXML struct {
	ASCII string `xml:"ascii,attr"`
}

// hyperlinkXML represents a hyperlink.
type hyperlinkXML struct {
	ID     string   `xml:"id,attr"`     // r:id
	Anchor string   `xml:"anchor,attr"` // bookmark name for internal links
	Runs   []runXML `xml:"r"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName xml.Name      `xml:"tbl"`
	Rows    []tableRowXML `xml:"tr"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	XMLName xml.Name       `xml:"tr"`
	Cells   []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
// Only the cell's direct paragraphs are read; nested tables are ignored.
type tableCellXML struct {
	XMLName    xml.Name       `xml:"tc"`
	Paragraphs []paragraphXML `xml:"p"`
}

// commentsXML represents word/comments.xml
type commentsXML struct {
	XMLName  xml.Name     `xml:"comments"`
	Comments []commentXML `xml:"comment"`
}

// commentXML represents a single comment (<w:comment>).
type commentXML struct {
	ID     string
	Author string
	Date   string
	Text   string
}

// UnmarshalXML reads the comment attributes and concatenates every <w:t> in
// the comment body, at any depth, in document order.
func (c *commentXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	c.ID = attrValue(start, "id")
	c.Author = attrValue(start, "author")
	c.Date = attrValue(start, "date")

	var sb strings.Builder
	depth, inText := 0, 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" && t.Name.Space == nsW {
				inText++
			}
		case xml.CharData:
			if inText > 0 {
				sb.Write(t)
			}
		case xml.EndElement:
			if depth == 0 {
				c.Text = sb.String()
				return nil
			}
			depth--
			if t.Name.Local == "t" && t.Name.Space == nsW && inText > 0 {
				inText--
			}
		}
	}
}

// attrValue returns the value of the first attribute with the given local name.
func attrValue(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
