package docx

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/tsawler/docxparse/model"
)

// Metadata returns the core document properties. The package's
// dc:description element, which some tooling calls the "comments" core
// property, is reported as Description.
func (r *Reader) Metadata() model.Metadata {
	core := r.coreProperties()
	if core == nil {
		return model.Metadata{}
	}

	return model.Metadata{
		Title:          core.Title,
		Author:         core.Creator,
		Created:        normalizeDate(core.Created),
		Modified:       normalizeDate(core.Modified),
		LastModifiedBy: core.LastModifiedBy,
		Subject:        core.Subject,
		Description:    core.Description,
		Keywords:       core.Keywords,
		Revision:       trimmed(core.Revision),
		Category:       core.Category,
	}
}

// coreProperties parses Dublin Core metadata. The part is optional.
func (r *Reader) coreProperties() *corePropertiesXML {
	if r.archive == nil {
		return nil
	}
	part, ok := relatedPart(r.pkgRels, "", relTypeCoreProps)
	if !ok {
		part = corePropsPart
	}

	data, err := r.archive.Read(part)
	if err != nil {
		r.logger.Debug("no core properties", "part", part, "err", err)
		return nil
	}

	core := &corePropertiesXML{}
	if err := xml.Unmarshal(data, core); err != nil {
		r.logger.Debug("ignoring unreadable core properties", "err", err)
		return nil
	}
	return core
}

// w3cdtfLayouts are the W3CDTF profiles allowed for dcterms dates.
var w3cdtfLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// normalizeDate renders a W3CDTF date as RFC 3339. Values that do not parse
// are returned verbatim.
func normalizeDate(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	for _, layout := range w3cdtfLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.StringPtr(t.Format(time.RFC3339Nano))
		}
	}
	return model.StringPtr(*v)
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	return model.StringPtr(strings.TrimSpace(*v))
}
