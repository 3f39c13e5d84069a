package domain

// Kind identifies the content type of an Item.
type Kind string

// Item kinds.
const (
	KindVisualization Kind = "visualization"
	KindText          Kind = "text"
	KindCallout       Kind = "callout"
	KindImage         Kind = "image"
	KindAccordion     Kind = "accordion"
	KindCard          Kind = "card"
	KindDivider       Kind = "divider"
	KindPageBreak     Kind = "page_break"
	KindValueBoxRow   Kind = "value_box_row"
)

// Payload carries the kind-specific fields of an Item.
type Payload interface {
	Kind() Kind
}

// Viz describes a single chart: the visualization type, its variable
// bindings, and an optional dataset reference plus filter predicate. The
// predicate is opaque to this package; it is handed to the data source
// collaborator verbatim.
type Viz struct {
	Type    string `json:"type" yaml:"type" mapstructure:"type"` // e.g. "histogram", "bar", "scatter", "line"
	X       string `json:"x" yaml:"x" mapstructure:"x"`
	Y       string `json:"y,omitempty" yaml:"y,omitempty" mapstructure:"y"`
	Dataset string `json:"dataset,omitempty" yaml:"dataset,omitempty" mapstructure:"dataset"`
	Filter  string `json:"filter,omitempty" yaml:"filter,omitempty" mapstructure:"filter"`
}

func (Viz) Kind() Kind { return KindVisualization }

// Text is a free-form markdown block.
type Text struct {
	Markdown string `json:"markdown" yaml:"markdown" mapstructure:"markdown"`
}

func (Text) Kind() Kind { return KindText }

// Callout is a highlighted admonition block (note, tip, warning, ...).
type Callout struct {
	Variant  string `json:"variant" yaml:"variant" mapstructure:"variant"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Markdown string `json:"markdown" yaml:"markdown" mapstructure:"markdown"`
}

func (Callout) Kind() Kind { return KindCallout }

// Image embeds a static image.
type Image struct {
	Src     string `json:"src" yaml:"src" mapstructure:"src"`
	Alt     string `json:"alt,omitempty" yaml:"alt,omitempty" mapstructure:"alt"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty" mapstructure:"caption"`
}

func (Image) Kind() Kind { return KindImage }

// Accordion is a collapsible markdown section.
type Accordion struct {
	Title    string `json:"title" yaml:"title" mapstructure:"title"`
	Markdown string `json:"markdown" yaml:"markdown" mapstructure:"markdown"`
}

func (Accordion) Kind() Kind { return KindAccordion }

// Card is a bordered markdown panel with an optional title.
type Card struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Markdown string `json:"markdown" yaml:"markdown" mapstructure:"markdown"`
}

func (Card) Kind() Kind { return KindCard }

// Divider is a horizontal rule between siblings.
type Divider struct{}

func (Divider) Kind() Kind { return KindDivider }

// PageBreak is a root-level marker that splits the page's root child
// sequence into ordered segments at render time. It never nests inside a
// Group; Tree.Insert attaches it at root regardless of any group path.
type PageBreak struct{}

func (PageBreak) Kind() Kind { return KindPageBreak }

// ValueBox is one summary box inside a ValueBoxRow.
type ValueBox struct {
	Title string `json:"title" yaml:"title" mapstructure:"title"`
	Value string `json:"value" yaml:"value" mapstructure:"value"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty" mapstructure:"icon"`
	Color string `json:"color,omitempty" yaml:"color,omitempty" mapstructure:"color"`
}

// ValueBoxRow is a horizontal row of summary boxes.
type ValueBoxRow struct {
	Boxes []ValueBox `json:"boxes" yaml:"boxes" mapstructure:"boxes"`
}

func (ValueBoxRow) Kind() Kind { return KindValueBoxRow }

// Item is a single content unit: a payload plus its placement (group path
// and optional tabset label) and its parameters. LocalParams holds the
// explicit overrides supplied at creation time; Params is the effective set
// stamped by the defaults resolver before the item enters a tree.
type Item struct {
	Payload     Payload
	GroupPath   []string
	TabsetLabel string
	LocalParams map[string]any
	Params      map[string]any
}

// Kind returns the kind of the item's payload.
func (it *Item) Kind() Kind { return it.Payload.Kind() }

// Clone returns a deep copy of the item. Payload structs are value types,
// so assignment copies them; only the maps and slice need fresh backing.
func (it *Item) Clone() *Item {
	dup := &Item{
		Payload:     it.Payload,
		TabsetLabel: it.TabsetLabel,
	}
	if it.GroupPath != nil {
		dup.GroupPath = append([]string(nil), it.GroupPath...)
	}
	dup.LocalParams = cloneParams(it.LocalParams)
	dup.Params = cloneParams(it.Params)
	return dup
}

func cloneParams(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
