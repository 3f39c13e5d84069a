package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/dashwright/dashwright"
	"github.com/dashwright/dashwright/pkg/adapters/memory"
	"github.com/dashwright/dashwright/pkg/domain"
	"github.com/dashwright/dashwright/pkg/dsl"
	"github.com/dashwright/dashwright/pkg/params"
)

// Definition is the YAML shape of a dashboard definition file.
type Definition struct {
	Name     string            `yaml:"name"`
	Theme    string            `yaml:"theme"`
	Defaults map[string]any    `yaml:"defaults"`
	Labels   map[string]string `yaml:"labels"`
	Datasets []DatasetDef      `yaml:"datasets"`
	Pages    []PageDef         `yaml:"pages"`
}

// DatasetDef declares an inline tabular dataset.
type DatasetDef struct {
	Name    string           `yaml:"name"`
	Columns []string         `yaml:"columns"`
	Rows    []map[string]any `yaml:"rows"`
}

// PageDef declares one page and its content items.
type PageDef struct {
	Name     string            `yaml:"name"`
	Icon     string            `yaml:"icon"`
	Navbar   string            `yaml:"navbar"`
	Defaults map[string]any    `yaml:"defaults"`
	Labels   map[string]string `yaml:"labels"`
	Items    []map[string]any  `yaml:"items"`
}

// LoadDefinition reads and parses a dashboard definition file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("definition is missing a dashboard name")
	}
	return &def, nil
}

// Assemble turns a parsed definition into a Dashboard ready to build.
func Assemble(def *Definition, logger *slog.Logger) (*dashwright.Dashboard, error) {
	opts := []dashwright.Option{dashwright.WithLogger(logger)}
	if def.Theme != "" {
		opts = append(opts, dashwright.WithTheme(def.Theme))
	}
	if len(def.Defaults) > 0 {
		opts = append(opts, dashwright.WithDefaults(params.Layer(def.Defaults)))
	}
	if len(def.Labels) > 0 {
		opts = append(opts, dashwright.WithLabels(def.Labels))
	}
	for _, ds := range def.Datasets {
		opts = append(opts, dashwright.WithDataSource(memory.New(ds.Name, ds.Columns, ds.Rows)))
	}

	board := dashwright.New(def.Name, opts...)

	for _, pd := range def.Pages {
		page, err := assemblePage(pd)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", pd.Name, err)
		}
		board.AddPage(page)
	}
	return board, nil
}

func assemblePage(pd PageDef) (*dsl.PageBuilder, error) {
	popts := []dsl.PageOption{}
	if pd.Icon != "" {
		popts = append(popts, dsl.WithIcon(pd.Icon))
	}
	if pd.Navbar != "" {
		popts = append(popts, dsl.WithNavbar(pd.Navbar))
	}
	if len(pd.Defaults) > 0 {
		popts = append(popts, dsl.WithDefaults(params.Layer(pd.Defaults)))
	}

	page := dsl.NewPage(pd.Name, popts...)
	if len(pd.Labels) > 0 {
		page.Labels(pd.Labels)
	}

	for i, raw := range pd.Items {
		item, err := decodeItem(raw)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		page.AddItem(item)
	}
	return page, nil
}

// decodeItem splits a raw item map into placement keys and a kind-specific
// payload, decoded with mapstructure.
func decodeItem(raw map[string]any) (*domain.Item, error) {
	kindVal, ok := raw["kind"].(string)
	if !ok || kindVal == "" {
		return nil, fmt.Errorf("item has no kind")
	}

	target, err := payloadTarget(domain.Kind(kindVal))
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case "kind", "group", "tabset", "params":
			// placement keys, not payload fields
		default:
			fields[k] = v
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      target,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(fields); err != nil {
		return nil, fmt.Errorf("decoding %s payload: %w", kindVal, err)
	}

	item := &domain.Item{Payload: derefPayload(target)}

	if group, ok := raw["group"].(string); ok && group != "" {
		path, err := domain.ParsePath(group)
		if err != nil {
			return nil, err
		}
		item.GroupPath = path
	}
	if tabset, ok := raw["tabset"].(string); ok {
		item.TabsetLabel = tabset
	}
	if p, ok := raw["params"].(map[string]any); ok {
		item.LocalParams = p
	}
	return item, nil
}

// payloadTarget returns a pointer for mapstructure to decode into; items
// store payloads by value, so derefPayload unwraps it afterwards.
func payloadTarget(kind domain.Kind) (any, error) {
	switch kind {
	case domain.KindVisualization:
		return &domain.Viz{}, nil
	case domain.KindText:
		return &domain.Text{}, nil
	case domain.KindCallout:
		return &domain.Callout{Variant: "note"}, nil
	case domain.KindImage:
		return &domain.Image{}, nil
	case domain.KindAccordion:
		return &domain.Accordion{}, nil
	case domain.KindCard:
		return &domain.Card{}, nil
	case domain.KindDivider:
		return &domain.Divider{}, nil
	case domain.KindPageBreak:
		return &domain.PageBreak{}, nil
	case domain.KindValueBoxRow:
		return &domain.ValueBoxRow{}, nil
	default:
		return nil, fmt.Errorf("unknown item kind %q", kind)
	}
}

func derefPayload(target any) domain.Payload {
	switch p := target.(type) {
	case *domain.Viz:
		return *p
	case *domain.Text:
		return *p
	case *domain.Callout:
		return *p
	case *domain.Image:
		return *p
	case *domain.Accordion:
		return *p
	case *domain.Card:
		return *p
	case *domain.Divider:
		return *p
	case *domain.PageBreak:
		return *p
	case *domain.ValueBoxRow:
		return *p
	default:
		panic(fmt.Sprintf("unhandled payload type %T", target))
	}
}
