package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tsawler/docxparse/model"
)

// jsonIndent is the indentation used for JSON output.
const jsonIndent = "  "

// JSON serializes doc as indented JSON. Collections that are nil are written
// as empty arrays, and HTML characters are left unescaped.
func JSON(doc *model.ParsedDoc) (string, error) {
	out := *doc
	if out.Paragraphs == nil {
		out.Paragraphs = []model.Para{}
	}
	if out.Tables == nil {
		out.Tables = []model.DocTable{}
	}
	if out.Hyperlinks == nil {
		out.Hyperlinks = []model.Hyperlink{}
	}
	if out.Comments == nil {
		out.Comments = []model.Comment{}
	}
	if out.Images == nil {
		out.Images = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)

	if err := enc.Encode(&out); err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
