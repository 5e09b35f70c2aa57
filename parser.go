package docxparse

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tsawler/docxparse/docx"
	"github.com/tsawler/docxparse/media"
	"github.com/tsawler/docxparse/model"
	"github.com/tsawler/docxparse/ocr"
	"github.com/tsawler/docxparse/render"
)

// DefaultSeparator joins paragraphs in PlainText.
const DefaultSeparator = "\n"

// Parser parses one DOCX file. The first call that needs the document model
// builds it and every later call reuses it. A Parser is not safe for
// concurrent use; parse distinct files with distinct Parsers.
type Parser struct {
	path   string
	logger *log.Logger
	reader *docx.Reader

	parsed *model.ParsedDoc
	order  []model.BodyElement
}

// Open opens the DOCX file at path. A missing path fails with
// ErrFileNotFound before the file is read. A file that is not a readable
// package fails with ErrInvalidPackage. The returned Parser must be closed.
func Open(path string, opts ...Option) (*Parser, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, err
	}

	r, err := docx.Open(path, docx.WithMaxPartSize(o.maxPartSize), docx.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPackage, path, err)
	}

	o.logger.Debug("opened document", "path", path)
	return &Parser{
		path:   path,
		logger: o.logger,
		reader: r,
	}, nil
}

// Path returns the path the Parser was opened with.
func (p *Parser) Path() string {
	return p.path
}

// Close releases the underlying archive. It is safe to call Close multiple
// times. A document parsed before Close stays available.
func (p *Parser) Close() error {
	if p.reader == nil {
		return nil
	}
	err := p.reader.Close()
	p.reader = nil
	return err
}

// Parse extracts paragraphs, tables, hyperlinks, comments and metadata.
// The result is computed once; later calls return the same value.
func (p *Parser) Parse() (*model.ParsedDoc, error) {
	if p.parsed != nil {
		return p.parsed, nil
	}
	if p.reader == nil {
		return nil, ErrClosed
	}

	doc := model.NewParsedDoc()
	doc.Paragraphs = p.reader.Paragraphs()
	doc.Tables = p.reader.Tables()
	doc.Hyperlinks = p.reader.Hyperlinks()

	comments, err := p.reader.Comments()
	if err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}
	doc.Comments = comments
	doc.Metadata = p.reader.Metadata()

	p.order = p.reader.Body()
	p.parsed = doc

	p.logger.Debug("parsed document",
		"path", p.path,
		"paragraphs", len(doc.Paragraphs),
		"tables", len(doc.Tables),
		"hyperlinks", len(doc.Hyperlinks),
		"comments", len(doc.Comments))
	return doc, nil
}

// Body returns the top-level paragraphs and tables in document order.
func (p *Parser) Body() ([]model.BodyElement, error) {
	if _, err := p.Parse(); err != nil {
		return nil, err
	}
	out := make([]model.BodyElement, len(p.order))
	copy(out, p.order)
	return out, nil
}

// PlainText joins the text of every paragraph that is not blank with sep.
func (p *Parser) PlainText(sep string) (string, error) {
	doc, err := p.Parse()
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(doc.Paragraphs))
	for _, para := range doc.Paragraphs {
		text := para.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, sep), nil
}

// Headings returns the heading paragraphs in document order.
func (p *Parser) Headings() ([]model.Heading, error) {
	doc, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return doc.Headings(), nil
}

// TablesAsPlain returns every table as a matrix of cell texts.
func (p *Parser) TablesAsPlain() ([][][]string, error) {
	doc, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return doc.TablesAsPlain(), nil
}

// ExtractImages writes every embedded media file into dir, creating it when
// needed, and records the written paths in the parsed document's Images.
// Files are named by their base name, so a later entry with the same name
// overwrites an earlier one. An empty dir means the current directory.
func (p *Parser) ExtractImages(dir string) ([]string, error) {
	doc, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if p.reader == nil {
		return nil, ErrClosed
	}
	if dir == "" {
		dir = "."
	}

	saved, err := p.reader.ExtractMedia(dir)
	if err != nil {
		return nil, fmt.Errorf("extracting images: %w", err)
	}

	doc.Images = saved
	p.logger.Debug("extracted images", "path", p.path, "dir", dir, "count", len(saved))
	return saved, nil
}

// ToMarkdown renders the document as Markdown. When outputPath is not empty
// the result is also written there.
func (p *Parser) ToMarkdown(outputPath string) (string, error) {
	doc, err := p.Parse()
	if err != nil {
		return "", err
	}

	md := render.Markdown(doc, p.order)
	if err := writeOutput(outputPath, md); err != nil {
		return "", err
	}
	return md, nil
}

// ToJSON serializes the document as indented JSON. When outputPath is not
// empty the result is also written there.
func (p *Parser) ToJSON(outputPath string) (string, error) {
	doc, err := p.Parse()
	if err != nil {
		return "", err
	}

	js, err := render.JSON(doc)
	if err != nil {
		return "", err
	}
	if err := writeOutput(outputPath, js); err != nil {
		return "", err
	}
	return js, nil
}

// ToHTML renders the document as sanitized HTML. When outputPath is not
// empty the result is also written there.
func (p *Parser) ToHTML(outputPath string) (string, error) {
	doc, err := p.Parse()
	if err != nil {
		return "", err
	}

	out, err := render.HTML(doc, p.order)
	if err != nil {
		return "", err
	}
	if err := writeOutput(outputPath, out); err != nil {
		return "", err
	}
	return out, nil
}

// Media describes every embedded media entry in archive order.
func (p *Parser) Media() ([]media.Info, error) {
	if p.reader == nil {
		return nil, ErrClosed
	}

	entries, err := p.reader.MediaEntries()
	if err != nil {
		return nil, err
	}

	infos := make([]media.Info, 0, len(entries))
	for _, name := range entries {
		data, err := p.reader.ReadMedia(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		infos = append(infos, media.Probe(name, data))
	}
	return infos, nil
}

// RecognizeImages runs OCR over every embedded raster image, using lang as
// the "+" separated Tesseract language list. Images in formats Tesseract
// cannot read are skipped. Without OCR support compiled in, it returns
// ocr.ErrOCRNotEnabled.
func (p *Parser) RecognizeImages(lang string) ([]ocr.Result, error) {
	if p.reader == nil {
		return nil, ErrClosed
	}

	client, err := ocr.New(lang)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	entries, err := p.reader.MediaEntries()
	if err != nil {
		return nil, err
	}

	results := make([]ocr.Result, 0, len(entries))
	for _, name := range entries {
		data, err := p.reader.ReadMedia(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		info := media.Probe(name, data)
		if !info.Raster || !ocr.Supports(info.Format) {
			p.logger.Debug("skipping image for OCR", "entry", name, "format", info.Format)
			continue
		}

		res, err := client.Recognize(name, data)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// writeOutput writes content to path unless path is empty.
func writeOutput(path, content string) error {
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
