package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/docxparse/model"
)

// HTML renders doc as a standalone HTML document. The body follows the
// same ordering rules as Markdown; document hyperlinks are listed after the
// body content. Body markup is passed through a UGC sanitizing policy, so
// unsafe link targets are dropped.
func HTML(doc *model.ParsedDoc, order []model.BodyElement) (string, error) {
	var body bytes.Buffer
	para, table := 0, 0

	for _, el := range order {
		var n *html.Node
		switch el.Kind {
		case model.BodyParagraph:
			if para < len(doc.Paragraphs) {
				n = paragraphNode(doc.Paragraphs[para])
				para++
			}
		case model.BodyTable:
			if table < len(doc.Tables) {
				n = tableNode(doc.Tables[table])
				table++
			}
		}
		if n == nil {
			continue
		}
		if err := html.Render(&body, n); err != nil {
			return "", fmt.Errorf("rendering body: %w", err)
		}
		body.WriteByte('\n')
	}

	if len(doc.Hyperlinks) > 0 {
		if err := html.Render(&body, linksNode(doc.Hyperlinks)); err != nil {
			return "", fmt.Errorf("rendering links: %w", err)
		}
		body.WriteByte('\n')
	}

	policy := bluemonday.UGCPolicy()
	safe := policy.SanitizeBytes(body.Bytes())

	title := ""
	if doc.Metadata.Title != nil {
		title = *doc.Metadata.Title
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	sb.WriteString(html.EscapeString(title))
	sb.WriteString("</title>\n</head>\n<body>\n")
	sb.Write(safe)
	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

var headingAtoms = []atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// paragraphNode maps a paragraph to a block element. Headings deeper than
// six levels render as h6.
func paragraphNode(p model.Para) *html.Node {
	if p.Level != nil {
		level := *p.Level
		if level < 1 {
			level = 1
		}
		if level > len(headingAtoms) {
			level = len(headingAtoms)
		}
		return element(headingAtoms[level-1], textNode(p.Text()))
	}

	if isQuoteStyle(p.Style) {
		return element(atom.Blockquote, element(atom.P, textNode(p.Text())))
	}
	if isCodeStyle(p.Style) {
		return element(atom.Pre, element(atom.Code, textNode(p.Text())))
	}

	n := element(atom.P)
	for _, r := range p.Runs {
		if c := runNode(r); c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

func runNode(r model.Run) *html.Node {
	if r.Text == "" {
		return nil
	}

	n := textNode(r.Text)
	if r.Italic {
		n = element(atom.Em, n)
	}
	if r.Bold {
		n = element(atom.Strong, n)
	}
	if r.Underline {
		n = element(atom.U, n)
	}
	return n
}

// tableNode renders the first row as header cells. Multi-paragraph cells
// keep their paragraph breaks as <br>.
func tableNode(t model.DocTable) *html.Node {
	tbl := element(atom.Table)
	for i, row := range t.Rows {
		cellAtom := atom.Td
		if i == 0 {
			cellAtom = atom.Th
		}
		tr := element(atom.Tr)
		for _, cell := range row {
			c := element(cellAtom)
			for j, p := range cell.Paragraphs {
				if j > 0 {
					c.AppendChild(element(atom.Br))
				}
				c.AppendChild(textNode(p.Text()))
			}
			tr.AppendChild(c)
		}
		tbl.AppendChild(tr)
	}
	return tbl
}

func linksNode(links []model.Hyperlink) *html.Node {
	ul := element(atom.Ul)
	for _, l := range links {
		a := element(atom.A, textNode(l.Text))
		a.Attr = append(a.Attr,
			html.Attribute{Key: "href", Val: l.URL},
			html.Attribute{Key: "title", Val: "paragraph " + strconv.Itoa(l.ParagraphIndex)},
		)
		ul.AppendChild(element(atom.Li, a))
	}
	return ul
}
