package docx

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/tsawler/docxparse/model"
)

// Paragraphs returns every top-level paragraph of the body in order.
// Paragraphs inside tables are not included.
func (r *Reader) Paragraphs() []model.Para {
	paras := make([]model.Para, 0, len(r.document.Body.Paragraphs))
	for _, p := range r.document.Body.Paragraphs {
		paras = append(paras, r.parseParagraph(p))
	}
	return paras
}

// parseParagraph converts a paragraph node into a model.Para.
func (r *Reader) parseParagraph(p paragraphXML) model.Para {
	style := r.styles.Name(p.Properties.Style.Val)

	para := model.Para{
		Runs:  make([]model.Run, 0, len(p.Runs)),
		Style: style,
	}

	if level, ok := headingLevel(style); ok {
		para.Level = model.IntPtr(level)
	}

	if jc := p.Properties.Justification.Val; jc != "" {
		para.Alignment = model.StringPtr(jc)
	}

	for _, run := range p.Runs {
		para.Runs = append(para.Runs, r.parseRun(run))
	}

	return para
}

// parseRun converts a run node into a model.Run. Bold, italic and underline
// collapse "not set" to false; style inheritance is not applied.
func (r *Reader) parseRun(run runXML) model.Run {
	props := run.Properties

	out := model.Run{
		Text:      run.Text,
		Bold:      props.Bold.On(),
		Italic:    props.Italic.On(),
		Underline: props.Underline.Val != "" && props.Underline.Val != "none",
	}

	if name := props.Font.ASCII; name != "" {
		out.FontName = model.StringPtr(name)
	}

	if size, ok := optionalSize(props.FontSize); ok {
		out.FontSize = model.Float64Ptr(size)
	} else if props.FontSize.Val != "" {
		r.logger.Debug("ignoring unreadable font size", "val", props.FontSize.Val)
	}

	if color, ok := optionalColor(props.Color); ok {
		out.Color = model.StringPtr(color)
	} else if props.Color.Val != "" && props.Color.Val != "auto" {
		r.logger.Debug("ignoring unreadable run color", "val", props.Color.Val)
	}

	return out
}

// optionalSize converts a half-point size to points. It reports false when
// the size is unset or malformed; the caller treats that as absent.
func optionalSize(sz valXML) (float64, bool) {
	if sz.Val == "" {
		return 0, false
	}
	halfPoints, err := strconv.ParseFloat(sz.Val, 64)
	if err != nil || halfPoints <= 0 {
		return 0, false
	}
	return halfPoints / 2, true
}

// optionalColor returns an explicit RGB run color as upper-case hex. It
// reports false for "auto", unset, or malformed values.
func optionalColor(c valXML) (string, bool) {
	if c.Val == "" || strings.EqualFold(c.Val, "auto") {
		return "", false
	}
	if len(c.Val) != 6 {
		return "", false
	}
	if _, err := hex.DecodeString(c.Val); err != nil {
		return "", false
	}
	return strings.ToUpper(c.Val), true
}
