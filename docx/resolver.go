package docx

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/docxparse/model"
)

// StyleResolver maps paragraph style IDs to display names.
type StyleResolver struct {
	styles       map[string]*styleDefXML
	defaultStyle string
	resolved     map[string]string
}

// NewStyleResolver creates a new style resolver from parsed styles.
// A nil styles value yields a resolver that only knows built-in names.
func NewStyleResolver(styles *stylesXML) *StyleResolver {
	sr := &StyleResolver{
		styles:       make(map[string]*styleDefXML),
		defaultStyle: model.DefaultStyle,
		resolved:     make(map[string]string),
	}

	if styles == nil {
		return sr
	}

	for i := range styles.Styles {
		style := &styles.Styles[i]
		sr.styles[style.StyleID] = style
		if style.Type == "paragraph" && style.Default == "1" && style.Name.Val != "" {
			sr.defaultStyle = uiStyleName(style.Name.Val)
		}
	}

	return sr
}

// Name returns the display name for a paragraph style ID.
//
// An empty ID resolves to the default paragraph style. An ID missing from
// styles.xml resolves to its built-in name when it is one of Word's built-in
// heading or title IDs, and to the default paragraph style otherwise.
func (sr *StyleResolver) Name(styleID string) string {
	if styleID == "" {
		return sr.defaultStyle
	}

	if name, ok := sr.resolved[styleID]; ok {
		return name
	}

	name := sr.defaultStyle
	if def, ok := sr.styles[styleID]; ok && def.Name.Val != "" {
		name = uiStyleName(def.Name.Val)
	} else if builtin, ok := builtInStyleName(styleID); ok {
		name = builtin
	}

	sr.resolved[styleID] = name
	return name
}

// DefaultStyle returns the name of the default paragraph style.
func (sr *StyleResolver) DefaultStyle() string {
	return sr.defaultStyle
}

var builtInHeadingID = regexp.MustCompile(`(?i)^heading([1-9])$`)

// builtInStyleName maps Word's built-in style IDs to their UI names.
func builtInStyleName(styleID string) (string, bool) {
	if m := builtInHeadingID.FindStringSubmatch(styleID); m != nil {
		return "Heading " + m[1], true
	}

	switch strings.ToLower(styleID) {
	case "title":
		return "Title", true
	case "subtitle":
		return "Subtitle", true
	case "quote":
		return "Quote", true
	case "intensequote":
		return "Intense Quote", true
	case "normal":
		return "Normal", true
	}

	return "", false
}

// uiNames lists built-in styles whose styles.xml name is lower-case.
var uiNames = map[string]string{
	"normal":         "Normal",
	"title":          "Title",
	"subtitle":       "Subtitle",
	"caption":        "Caption",
	"header":         "Header",
	"footer":         "Footer",
	"body text":      "Body Text",
	"list":           "List",
	"list bullet":    "List Bullet",
	"list number":    "List Number",
	"list paragraph": "List Paragraph",
	"quote":          "Quote",
	"intense quote":  "Intense Quote",
}

// uiStyleName converts the internal name stored in styles.xml (for example
// "heading 1") to the name Word shows ("Heading 1").
func uiStyleName(name string) string {
	lower := strings.ToLower(name)
	if ui, ok := uiNames[lower]; ok {
		return ui
	}
	if strings.HasPrefix(lower, "heading ") {
		if n, err := strconv.Atoi(lower[len("heading "):]); err == nil {
			return "Heading " + strconv.Itoa(n)
		}
	}
	return name
}

var headingPattern = regexp.MustCompile(`(?i)^Heading (\d+)`)

// headingLevel returns the level encoded in a "Heading <n>" style name.
func headingLevel(styleName string) (int, bool) {
	m := headingPattern.FindStringSubmatch(styleName)
	if m == nil {
		return 0, false
	}
	level, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return level, true
}
