// Package docxparse extracts the structure of Word (.docx) documents and
// re-projects it as plain text, Markdown, JSON or HTML.
//
// Basic usage:
//
//	p, err := docxparse.Open("report.docx")
//	if err != nil {
//	    // handle error
//	}
//	defer p.Close()
//
//	doc, err := p.Parse()
//	md, err := p.ToMarkdown("report.md")
//
// One-shot helpers open, extract and close in a single call:
//
//	text, err := docxparse.ExtractText("report.docx")
//
// For lower-level access to the package parts, use the docx package.
package docxparse

import (
	"errors"

	"github.com/tsawler/docxparse/model"
)

var (
	// ErrFileNotFound is returned by Open when the path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidPackage is returned by Open when the file is not a readable
	// DOCX package: not a ZIP archive, no main document part, or a main
	// document that is not well-formed XML.
	ErrInvalidPackage = errors.New("invalid docx package")

	// ErrClosed is returned when a closed Parser needs its archive.
	ErrClosed = errors.New("parser is closed")
)

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := docxparse.Must(p.Parse())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// withParser opens path, runs fn and closes the parser.
func withParser[T any](path string, fn func(*Parser) (T, error), opts ...Option) (T, error) {
	p, err := Open(path, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	defer p.Close()
	return fn(p)
}

// ExtractText returns the non-blank paragraph text of the document at path,
// one paragraph per line.
func ExtractText(path string, opts ...Option) (string, error) {
	return withParser(path, func(p *Parser) (string, error) {
		return p.PlainText(DefaultSeparator)
	}, opts...)
}

// ExtractTables returns every table of the document at path as plain text.
func ExtractTables(path string, opts ...Option) ([][][]string, error) {
	return withParser(path, (*Parser).TablesAsPlain, opts...)
}

// ExtractHeadings returns the outline of the document at path.
func ExtractHeadings(path string, opts ...Option) ([]model.Heading, error) {
	return withParser(path, (*Parser).Headings, opts...)
}

// ToMarkdown converts the document at path to Markdown, writing it to
// output when output is not empty.
func ToMarkdown(path, output string, opts ...Option) (string, error) {
	return withParser(path, func(p *Parser) (string, error) {
		return p.ToMarkdown(output)
	}, opts...)
}

// ToJSON serializes the document at path to JSON, writing it to output
// when output is not empty.
func ToJSON(path, output string, opts ...Option) (string, error) {
	return withParser(path, func(p *Parser) (string, error) {
		return p.ToJSON(output)
	}, opts...)
}
