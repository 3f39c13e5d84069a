package tui

import (
	"fmt"
	"strings"

	"github.com/dashwright/dashwright/pkg/domain"
)

// Outline renders a page's content tree as a markdown bullet list, suitable
// for feeding through the glamour renderer.
func Outline(pageName string, tree *domain.Tree) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", pageName))

	_ = tree.Walk(func(ev domain.Event) error {
		indent := strings.Repeat("  ", ev.Depth)
		switch ev.Type {
		case domain.EventGroupEnter:
			label := ev.Group.Name
			if ev.Group.DisplayLabel != "" {
				label = ev.Group.DisplayLabel
			}
			if ev.Group.Tabset {
				sb.WriteString(fmt.Sprintf("%s- **%s** (tab)\n", indent, label))
			} else {
				sb.WriteString(fmt.Sprintf("%s- **%s**\n", indent, label))
			}
		case domain.EventItem:
			sb.WriteString(fmt.Sprintf("%s- %s\n", indent, describeItem(ev.Item)))
		}
		return nil
	})

	return sb.String()
}

func describeItem(item *domain.Item) string {
	switch p := item.Payload.(type) {
	case domain.Viz:
		if p.Dataset != "" {
			return fmt.Sprintf("`%s` plot of `%s`", p.Type, p.Dataset)
		}
		return fmt.Sprintf("`%s` plot", p.Type)
	case domain.Text:
		return fmt.Sprintf("text (%s)", excerpt(p.Markdown))
	case domain.Callout:
		if p.Title != "" {
			return fmt.Sprintf("callout `%s`: %s", p.Variant, p.Title)
		}
		return fmt.Sprintf("callout `%s`", p.Variant)
	case domain.Image:
		return fmt.Sprintf("image `%s`", p.Src)
	case domain.Accordion:
		return fmt.Sprintf("accordion `%s`", p.Title)
	case domain.Card:
		return fmt.Sprintf("card `%s`", p.Title)
	case domain.PageBreak:
		return "page break"
	default:
		return string(item.Payload.Kind())
	}
}

func excerpt(markdown string) string {
	s := strings.TrimSpace(markdown)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 40 {
		s = s[:37] + "..."
	}
	return s
}
