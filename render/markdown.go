package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/tsawler/docxparse/model"
)

// styleContains reports whether a style name contains keyword, ignoring case.
// A Caser is stateful, so each call folds with a fresh one.
func styleContains(style, keyword string) bool {
	return strings.Contains(cases.Fold().String(style), keyword)
}

// isQuoteStyle and isCodeStyle classify paragraph styles that have a
// block-level Markdown form.
func isQuoteStyle(style string) bool {
	return styleContains(style, "quote")
}

func isCodeStyle(style string) bool {
	return styleContains(style, "code") || styleContains(style, "verbatim")
}

// Markdown renders doc following the body order and trims trailing
// whitespace from the result. Entries of order that point past the end of
// the paragraph or table lists are skipped.
func Markdown(doc *model.ParsedDoc, order []model.BodyElement) string {
	lines := make([]string, 0, len(order))
	para, table := 0, 0

	for _, el := range order {
		switch el.Kind {
		case model.BodyParagraph:
			if para < len(doc.Paragraphs) {
				lines = append(lines, ParagraphMarkdown(doc.Paragraphs[para]))
				para++
			}
		case model.BodyTable:
			if table < len(doc.Tables) {
				lines = append(lines, TableMarkdown(doc.Tables[table]))
				table++
			}
		}
	}

	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace)
}

// ParagraphMarkdown renders one paragraph as a single Markdown line.
func ParagraphMarkdown(p model.Para) string {
	if p.Level != nil {
		return strings.Repeat("#", *p.Level) + " " + p.Text()
	}

	if isQuoteStyle(p.Style) {
		return "> " + p.Text()
	}
	if isCodeStyle(p.Style) {
		return "`" + p.Text() + "`"
	}

	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(RunMarkdown(r))
	}
	return sb.String()
}

// RunMarkdown renders a run with its emphasis. Empty runs render as "".
func RunMarkdown(r model.Run) string {
	t := r.Text
	if t == "" {
		return ""
	}

	switch {
	case r.Bold && r.Italic:
		t = "***" + t + "***"
	case r.Bold:
		t = "**" + t + "**"
	case r.Italic:
		t = "*" + t + "*"
	}
	if r.Underline {
		t = "<u>" + t + "</u>"
	}
	return t
}

// TableMarkdown converts the table to markdown format. The first row is the
// header; every row keeps its own cell count.
func TableMarkdown(t model.DocTable) string {
	plain := t.ToPlain()
	if len(plain) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow(&sb, plain[0])

	// Separator
	sb.WriteString("\n| ")
	sep := make([]string, len(plain[0]))
	for i := range sep {
		sep[i] = "---"
	}
	sb.WriteString(strings.Join(sep, " | "))
	sb.WriteString(" |")

	for _, row := range plain[1:] {
		sb.WriteByte('\n')
		writeRow(&sb, row)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = escapeCell(c)
	}
	sb.WriteString("| ")
	sb.WriteString(strings.Join(escaped, " | "))
	sb.WriteString(" |")
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

// escapeCell makes cell text safe inside a pipe table row.
func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}
