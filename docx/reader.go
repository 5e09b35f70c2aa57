// Package docx provides DOCX (Office Open XML) document parsing.
//
// A [Reader] opens the package, decodes its XML parts, and exposes the
// semantic extraction steps used to build a [model.ParsedDoc]: paragraphs,
// tables, hyperlinks, comments, metadata and embedded media.
package docx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tsawler/docxparse/model"
)

// Reader provides access to DOCX document content.
type Reader struct {
	archive  *Archive
	document *documentXML
	styles   *StyleResolver
	rels     map[string]relationshipXML
	pkgRels  map[string]relationshipXML
	logger   *log.Logger
}

// Option configures a Reader.
type Option func(*readerOptions)

type readerOptions struct {
	maxPartSize int64
	logger      *log.Logger
}

// WithMaxPartSize bounds the uncompressed size of each XML part.
func WithMaxPartSize(n int64) Option {
	return func(o *readerOptions) {
		o.maxPartSize = n
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *readerOptions) {
		o.logger = l
	}
}

// Open opens a DOCX file for reading. The returned Reader must be closed.
func Open(filename string, opts ...Option) (*Reader, error) {
	o := readerOptions{maxPartSize: DefaultMaxPartSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	archive, err := OpenArchive(filename, o.maxPartSize)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		archive: archive,
		logger:  o.logger,
	}

	if err := r.load(); err != nil {
		archive.Close()
		return nil, err
	}

	return r, nil
}

// load decodes the package parts. Only the main document is required.
func (r *Reader) load() error {
	if err := r.validate(); err != nil {
		return err
	}

	// Relationships first; comments and hyperlinks are found through them.
	rels, err := r.parseRelationships(documentRelsPart)
	if err != nil {
		return fmt.Errorf("parsing relationships: %w", err)
	}
	r.rels = rels

	pkgRels, err := r.parseRelationships(packageRelsPart)
	if err != nil {
		return fmt.Errorf("parsing package relationships: %w", err)
	}
	r.pkgRels = pkgRels

	if err := r.parseDocument(); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	r.parseStyles()

	return nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.archive != nil {
		err := r.archive.Close()
		r.archive = nil
		return err
	}
	return nil
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	if !r.archive.Has(documentPart) {
		return fmt.Errorf("%w: %s", ErrMissingPart, documentPart)
	}
	if !r.archive.Has(contentTypesPart) {
		r.logger.Debug("package has no content types part", "part", contentTypesPart)
	}
	return nil
}

// parseRelationships parses a relationships part into a map keyed by ID.
// A missing part yields an empty map.
func (r *Reader) parseRelationships(part string) (map[string]relationshipXML, error) {
	rels := make(map[string]relationshipXML)

	data, err := r.archive.Read(part)
	if errors.Is(err, ErrMissingPart) {
		r.logger.Debug("relationships part not present", "part", part)
		return rels, nil
	}
	if err != nil {
		return nil, err
	}

	var parsed relationshipsXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling %s: %w", part, err)
	}
	for _, rel := range parsed.Relationships {
		rels[rel.ID] = rel
	}
	return rels, nil
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.archive.Read(documentPart)
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}
	if r.document.Body == nil {
		r.document.Body = &bodyXML{}
	}

	r.logger.Debug("decoded main document",
		"bytes", len(data),
		"paragraphs", len(r.document.Body.Paragraphs),
		"tables", len(r.document.Body.Tables))
	return nil
}

// parseStyles parses the styles definition file. Styles are optional: a
// missing or unreadable part leaves only built-in style names.
func (r *Reader) parseStyles() {
	data, err := r.archive.Read(stylesPart)
	if err != nil {
		r.styles = NewStyleResolver(nil)
		return
	}

	styles := &stylesXML{}
	if err := xml.Unmarshal(data, styles); err != nil {
		r.logger.Debug("ignoring unreadable styles part", "err", err)
		r.styles = NewStyleResolver(nil)
		return
	}
	r.styles = NewStyleResolver(styles)
}

// Body returns the top-level body elements in storage order.
func (r *Reader) Body() []model.BodyElement {
	out := make([]model.BodyElement, len(r.document.Body.Elements))
	copy(out, r.document.Body.Elements)
	return out
}

// relationshipTarget resolves a document relationship ID to its target.
func (r *Reader) relationshipTarget(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	rel, ok := r.rels[id]
	if !ok || rel.Target == "" {
		return "", false
	}
	return rel.Target, true
}

// relatedPart finds the first relationship of the given type in rels and
// returns the archive path it points to.
func relatedPart(rels map[string]relationshipXML, sourcePart, relType string) (string, bool) {
	// Map iteration order is random; pick the lowest ID for determinism.
	best := ""
	for id, rel := range rels {
		if rel.Type != relType || rel.external() {
			continue
		}
		if best == "" || id < best {
			best = id
		}
	}
	if best == "" {
		return "", false
	}
	return resolveTarget(sourcePart, rels[best].Target), true
}
