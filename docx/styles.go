package docx

import "encoding/xml"

// stylesXML is word/styles.xml. Only the paragraph style names are read.
type stylesXML struct {
	XMLName xml.Name      `xml:"styles"`
	Styles  []styleDefXML `xml:"style"`
}

type styleDefXML struct {
	Type    string `xml:"type,attr"`
	StyleID string `xml:"styleId,attr"`
	Default string `xml:"default,attr"` // "1" on the default style of its type
	Name    valXML `xml:"name"`
}

// valXML is any element whose payload is a w:val attribute.
type valXML struct {
	Val string `xml:"val,attr"`
}

// relationshipsXML is a part's _rels/*.rels file.
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Relationships []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// external reports whether the target lies outside the package.
func (r relationshipXML) external() bool {
	return r.TargetMode == "External"
}

// corePropertiesXML is docProps/core.xml. Pointer fields tell a missing
// element from an empty one.
type corePropertiesXML struct {
	XMLName        xml.Name `xml:"coreProperties"`
	Title          *string  `xml:"title"`
	Subject        *string  `xml:"subject"`
	Creator        *string  `xml:"creator"`
	Keywords       *string  `xml:"keywords"`
	Description    *string  `xml:"description"`
	LastModifiedBy *string  `xml:"lastModifiedBy"`
	Revision       *string  `xml:"revision"`
	Created        *string  `xml:"created"`
	Modified       *string  `xml:"modified"`
	Category       *string  `xml:"category"`
}
