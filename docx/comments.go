package docx

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/tsawler/docxparse/model"
)

// Comments returns the document's review comments in storage order. A
// package without a comments part has no comments; that is not an error.
func (r *Reader) Comments() ([]model.Comment, error) {
	if r.archive == nil {
		return nil, ErrClosed
	}
	comments := make([]model.Comment, 0)

	part, ok := relatedPart(r.rels, documentPart, relTypeComments)
	if !ok {
		r.logger.Debug("package has no comments relationship")
		return comments, nil
	}

	data, err := r.archive.Read(part)
	if errors.Is(err, ErrMissingPart) {
		r.logger.Debug("comments relationship points at a missing part", "part", part)
		return comments, nil
	}
	if err != nil {
		return nil, err
	}

	var parsed commentsXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling %s: %w", part, err)
	}

	for _, c := range parsed.Comments {
		comments = append(comments, model.Comment{
			ID:     c.ID,
			Author: c.Author,
			Date:   c.Date,
			Text:   c.Text,
		})
	}

	return comments, nil
}
