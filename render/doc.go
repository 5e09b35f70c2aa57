// Package render projects a parsed document into text formats.
//
// Markdown and HTML walk the document body in storage order, so paragraphs
// and tables are interleaved exactly as they appear in the source. JSON
// serializes the full [model.ParsedDoc].
package render
