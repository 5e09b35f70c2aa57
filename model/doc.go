// Package model provides the in-memory object model produced by parsing a
// DOCX package.
//
// All extraction ultimately produces these types, making them the primary API
// for consuming parsed content. Values are built once by a single parse pass
// and are not mutated afterwards; the only exception is [ParsedDoc.Images],
// which is filled by an explicit image extraction step.
//
// # Document Structure
//
// [ParsedDoc] is the aggregate root. It owns:
//
//   - [Para] values for every top-level paragraph (not those inside tables)
//   - [DocTable] values for every top-level table
//   - [Hyperlink] and [Comment] lists
//   - a fixed-key [Metadata] record
//   - the paths of extracted images
//
// # Text Runs
//
// A [Para] is an ordered list of [Run] values. Each run carries its text and
// the formatting it was written with: bold, italic, underline, and optional
// font name, size (points) and color (hex RGB). Optional fields are pointers;
// nil means the document did not specify a value.
//
// # Body Order
//
// Paragraphs and tables are stored in separate lists. The order in which they
// physically occur in the document body is kept as a list of [BodyElement]
// values, each naming a kind and an index into the matching list.
package model
