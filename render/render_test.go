package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/docxparse/model"
)

func para(style string, runs ...model.Run) model.Para {
	return model.Para{Runs: runs, Style: style}
}

func text(s string) model.Run {
	return model.Run{Text: s}
}

func plainTable(rows ...[]string) model.DocTable {
	t := model.DocTable{Rows: make([][]model.Cell, 0, len(rows))}
	for _, row := range rows {
		cells := make([]model.Cell, 0, len(row))
		for _, c := range row {
			var paras []model.Para
			for _, line := range strings.Split(c, "\n") {
				paras = append(paras, para(model.DefaultStyle, text(line)))
			}
			cells = append(cells, model.Cell{Paragraphs: paras})
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func TestRunMarkdown(t *testing.T) {
	tests := []struct {
		name string
		run  model.Run
		want string
	}{
		{"bold italic", model.Run{Text: "x", Bold: true, Italic: true}, "***x***"},
		{"bold", model.Run{Text: "x", Bold: true}, "**x**"},
		{"italic", model.Run{Text: "x", Italic: true}, "*x*"},
		{"plain", model.Run{Text: "x"}, "x"},
		{"underline", model.Run{Text: "x", Underline: true}, "<u>x</u>"},
		{"bold underline", model.Run{Text: "x", Bold: true, Underline: true}, "<u>**x**</u>"},
		{"empty", model.Run{Bold: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RunMarkdown(tt.run))
		})
	}
}

func TestParagraphMarkdown(t *testing.T) {
	tests := []struct {
		name string
		para model.Para
		want string
	}{
		{
			name: "heading",
			para: model.Para{Runs: []model.Run{{Text: "Intro", Bold: true}}, Style: "Heading 2", Level: model.IntPtr(2)},
			want: "## Intro",
		},
		{
			name: "quote",
			para: para("Intense Quote", model.Run{Text: "said", Italic: true}),
			want: "> said",
		},
		{
			name: "code",
			para: para("Source Code", text("x := 1")),
			want: "`x := 1`",
		},
		{
			name: "verbatim upper case",
			para: para("VERBATIM", text("raw")),
			want: "`raw`",
		},
		{
			name: "mixed runs",
			para: para("Normal", text("a "), model.Run{Text: "b", Bold: true}, model.Run{}, text(" c")),
			want: "a **b** c",
		},
		{
			name: "no runs",
			para: para("Normal"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParagraphMarkdown(tt.para))
		})
	}
}

func TestTableMarkdown(t *testing.T) {
	t.Run("two rows", func(t *testing.T) {
		got := TableMarkdown(plainTable([]string{"A", "B"}, []string{"1", "2"}))
		assert.Equal(t, "| A | B |\n| --- | --- |\n| 1 | 2 |", got)
	})

	t.Run("escaping", func(t *testing.T) {
		got := TableMarkdown(plainTable([]string{"h"}, []string{"a|b\nc"}))
		assert.Equal(t, "| h |\n| --- |\n| a\\|b c |", got)
	})

	t.Run("ragged rows keep their own width", func(t *testing.T) {
		got := TableMarkdown(plainTable([]string{"A", "B", "C"}, []string{"1"}))
		assert.Equal(t, "| A | B | C |\n| --- | --- | --- |\n| 1 |", got)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", TableMarkdown(model.DocTable{}))
	})
}

func TestMarkdownInterleaving(t *testing.T) {
	doc := model.NewParsedDoc()
	doc.Paragraphs = []model.Para{
		{Runs: []model.Run{text("Title")}, Style: "Heading 1", Level: model.IntPtr(1)},
		para("Normal", text("between")),
		para("Normal", text("after   ")),
	}
	doc.Tables = []model.DocTable{
		plainTable([]string{"A", "B"}, []string{"1", "2"}),
		plainTable([]string{"only"}),
	}
	order := []model.BodyElement{
		{Kind: model.BodyParagraph},
		{Kind: model.BodyTable},
		{Kind: model.BodyParagraph, Index: 1},
		{Kind: model.BodyTable, Index: 1},
		{Kind: model.BodyParagraph, Index: 2},
		// Extra entries beyond the parsed lists are ignored.
		{Kind: model.BodyParagraph, Index: 3},
	}

	want := "# Title\n" +
		"| A | B |\n| --- | --- |\n| 1 | 2 |\n" +
		"between\n" +
		"| only |\n| --- |\n" +
		"after"
	assert.Equal(t, want, Markdown(doc, order))
}

func TestMarkdownTrimsTrailingWhitespace(t *testing.T) {
	doc := model.NewParsedDoc()
	doc.Paragraphs = []model.Para{para("Normal"), para("Normal", text("body")), para("Normal")}
	order := []model.BodyElement{
		{Kind: model.BodyParagraph},
		{Kind: model.BodyParagraph, Index: 1},
		{Kind: model.BodyParagraph, Index: 2},
	}

	// A leading empty paragraph keeps its line; trailing ones are dropped.
	assert.Equal(t, "\nbody", Markdown(doc, order))
	assert.Equal(t, "", Markdown(model.NewParsedDoc(), nil))
}

func TestJSON(t *testing.T) {
	doc := model.NewParsedDoc()
	doc.Paragraphs = []model.Para{
		{
			Runs:  []model.Run{{Text: "<b>&", Bold: true, FontSize: model.Float64Ptr(12), Color: model.StringPtr("FF0000")}},
			Style: "Normal",
		},
	}
	doc.Tables = []model.DocTable{plainTable([]string{"A", "B"}, []string{"1", "2"})}
	doc.Hyperlinks = []model.Hyperlink{{Text: "Go", URL: "https://go.dev/?a=1&b=2", ParagraphIndex: 0}}
	doc.Metadata.Title = model.StringPtr("Report")
	doc.Images = []string{"out/image1.png"}

	out, err := JSON(doc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "{\n  \"paragraphs\": ["))
	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, `"text": "<b>&"`)
	assert.Contains(t, out, `"url": "https://go.dev/?a=1&b=2"`)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	paras := decoded["paragraphs"].([]any)
	require.Len(t, paras, 1)
	run := paras[0].(map[string]any)["runs"].([]any)[0].(map[string]any)
	assert.Equal(t, 12.0, run["font_size"])
	assert.Nil(t, run["font_name"])
	assert.Equal(t, "FF0000", run["color"])

	rows := decoded["tables"].([]any)[0].(map[string]any)["rows"].([]any)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0].([]any), 2)

	meta := decoded["metadata"].(map[string]any)
	assert.Len(t, meta, len(model.MetadataKeys))
	for _, key := range model.MetadataKeys {
		assert.Contains(t, meta, key)
	}
	assert.Equal(t, "Report", meta["title"])
	assert.Nil(t, meta["author"])

	assert.Equal(t, []any{"out/image1.png"}, decoded["images"])
}

func TestJSONNilCollections(t *testing.T) {
	out, err := JSON(&model.ParsedDoc{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	for _, key := range []string{"paragraphs", "tables", "hyperlinks", "comments", "images"} {
		assert.Equal(t, []any{}, decoded[key], key)
	}
}

func TestJSONMetadataKeyOrder(t *testing.T) {
	out, err := JSON(model.NewParsedDoc())
	require.NoError(t, err)

	last := -1
	for _, key := range model.MetadataKeys {
		idx := strings.Index(out, `"`+key+`"`)
		require.NotEqual(t, -1, idx, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}
}

func TestHTML(t *testing.T) {
	doc := model.NewParsedDoc()
	doc.Metadata.Title = model.StringPtr("A & B")
	doc.Paragraphs = []model.Para{
		{Runs: []model.Run{text("Intro")}, Style: "Heading 1", Level: model.IntPtr(1)},
		{Runs: []model.Run{text("Deep")}, Style: "Heading 9", Level: model.IntPtr(9)},
		para("Normal", model.Run{Text: "bold", Bold: true}, text(" and "), model.Run{Text: "both", Bold: true, Italic: true, Underline: true}),
		para("Quote", text("wise")),
		para("Code", text("<script>alert(1)</script>")),
	}
	doc.Tables = []model.DocTable{plainTable([]string{"H"}, []string{"a\nb"})}
	doc.Hyperlinks = []model.Hyperlink{
		{Text: "Go", URL: "https://go.dev/", ParagraphIndex: 2},
		{Text: "bad", URL: "javascript:alert(1)", ParagraphIndex: 2},
	}
	order := []model.BodyElement{
		{Kind: model.BodyParagraph},
		{Kind: model.BodyParagraph, Index: 1},
		{Kind: model.BodyTable},
		{Kind: model.BodyParagraph, Index: 2},
		{Kind: model.BodyParagraph, Index: 3},
		{Kind: model.BodyParagraph, Index: 4},
	}

	out, err := HTML(doc, order)
	require.NoError(t, err)

	assert.Contains(t, out, "<title>A &amp; B</title>")
	assert.Contains(t, out, "<h1>Intro</h1>")
	assert.Contains(t, out, "<h6>Deep</h6>")
	assert.Contains(t, out, "<strong>bold</strong> and <u><strong><em>both</em></strong></u>")
	assert.Contains(t, out, "<blockquote><p>wise</p></blockquote>")
	assert.Contains(t, out, "<pre><code>&lt;script&gt;alert(1)&lt;/script&gt;</code></pre>")
	assert.Contains(t, out, "<th>H</th>")
	assert.Contains(t, out, "<td>a<br")
	assert.Contains(t, out, ">b</td>")
	assert.Contains(t, out, `href="https://go.dev/"`)
	assert.NotContains(t, out, "javascript:")
	assert.NotContains(t, out, "<script>")

	assert.Less(t, strings.Index(out, "<h6>"), strings.Index(out, "<table>"))
	assert.Less(t, strings.Index(out, "<table>"), strings.Index(out, "<strong>"))
}
