package loam

// ContentMetadata is the frontmatter of one content file. It uses
// "mapstructure" tags to match standard frontmatter/YAML keys.
type ContentMetadata struct {
	// Kind selects the item payload: "text" (default), "callout",
	// "accordion" or "card".
	Kind string `json:"kind" mapstructure:"kind"`

	// Title is used by callout/accordion/card payloads.
	Title string `json:"title" mapstructure:"title"`

	// Variant is the callout flavor ("note", "tip", "warning", ...).
	Variant string `json:"variant" mapstructure:"variant"`

	// Group is the slash-delimited group path the item attaches at.
	Group string `json:"group" mapstructure:"group"`

	// Params are explicit parameter overrides for this item.
	Params map[string]any `json:"params" mapstructure:"params"`

	// Order overrides the filename-based ordering when set; lower sorts
	// first.
	Order int `json:"order" mapstructure:"order"`
}
