package docx

import (
	"strings"

	"github.com/tsawler/docxparse/model"
)

// unresolvedURL is the target recorded for links whose relationship is
// missing or unknown.
const unresolvedURL = "#"

// Hyperlinks returns the hyperlinks of the top-level paragraphs, ordered by
// paragraph and then by position within the paragraph. Links inside tables
// are not collected.
func (r *Reader) Hyperlinks() []model.Hyperlink {
	links := make([]model.Hyperlink, 0)

	for idx, p := range r.document.Body.Paragraphs {
		for _, h := range p.Hyperlinks {
			url, ok := r.relationshipTarget(h.ID)
			if !ok {
				url = unresolvedURL
			}

			links = append(links, model.Hyperlink{
				Text:           hyperlinkText(h),
				URL:            url,
				ParagraphIndex: idx,
			})
		}
	}

	return links
}

// hyperlinkText concatenates the <w:t> text of every run in the link.
func hyperlinkText(h hyperlinkXML) string {
	var sb strings.Builder
	for _, run := range h.Runs {
		for _, seg := range run.Segments {
			sb.WriteString(seg)
		}
	}
	return sb.String()
}
