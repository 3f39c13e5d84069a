package schema

import "github.com/dashwright/dashwright/pkg/domain"

// Field is one recognized parameter: its value type and the system-wide
// default used when no layer defines it.
type Field struct {
	Type    Type
	Default any
}

// Schema is the closed set of recognized parameters for one item kind.
type Schema map[string]Field

// Names returns the recognized parameter names, unordered.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// Defaults returns a fresh map of every recognized parameter set to its
// system-wide default.
func (s Schema) Defaults() map[string]any {
	out := make(map[string]any, len(s))
	for name, field := range s {
		out[name] = field.Default
	}
	return out
}

// vizSchema is shared by all visualization types. Theme and backend are
// ordinary parameters here, resolved through the same layer chain as
// everything else rather than living in ambient state.
var vizSchema = Schema{
	"color":       {Type: String(), Default: "steelblue"},
	"palette":     {Type: String(), Default: "viridis"},
	"bins":        {Type: Int(), Default: 30},
	"opacity":     {Type: Float(), Default: 1.0},
	"title":       {Type: String(), Default: ""},
	"x_label":     {Type: String(), Default: ""},
	"y_label":     {Type: String(), Default: ""},
	"weight":      {Type: String(), Default: ""},
	"interactive": {Type: Bool(), Default: false},
	"width":       {Type: Int(), Default: 0},
	"height":      {Type: Int(), Default: 0},
	"theme":       {Type: Enum("light", "dark", "auto"), Default: "auto"},
	"backend":     {Type: Enum("static", "interactive"), Default: "static"},
}

var kindSchemas = map[domain.Kind]Schema{
	domain.KindVisualization: vizSchema,
	domain.KindText: {
		"width": {Type: Int(), Default: 0},
		"align": {Type: Enum("left", "center", "right"), Default: "left"},
	},
	domain.KindCallout: {
		"collapsible": {Type: Bool(), Default: false},
		"icon":        {Type: Bool(), Default: true},
	},
	domain.KindImage: {
		"width":  {Type: Int(), Default: 0},
		"height": {Type: Int(), Default: 0},
		"align":  {Type: Enum("left", "center", "right"), Default: "center"},
	},
	domain.KindAccordion: {
		"open": {Type: Bool(), Default: false},
	},
	domain.KindCard: {
		"fill":   {Type: Bool(), Default: false},
		"height": {Type: Int(), Default: 0},
	},
	domain.KindDivider:   {},
	domain.KindPageBreak: {},
	domain.KindValueBoxRow: {
		"height": {Type: Int(), Default: 120},
	},
}

// ForKind returns the parameter schema for an item kind. Kinds with no
// recognized parameters (dividers, page breaks) return an empty schema, so
// any override against them is unknown.
func ForKind(kind domain.Kind) Schema {
	return kindSchemas[kind]
}
