package graph

import (
	"fmt"
	"strings"

	"github.com/dashwright/dashwright/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from a content tree.
// It applies semantic styling:
// - Page root: ((Circle))
// - Tabset group: [[Subroutine]]
// - Visualization: [/Parallelogram/]
// - Everything else: [Rectangle]
func GenerateMermaid(pageName string, tree *domain.Tree) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	rootID := sanitizeMermaidID(pageName)
	if rootID == "" {
		rootID = "page"
	}
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", rootID, escapeMermaidLabel(pageName)))

	// Parent stack tracks the enclosing group IDs as the walk descends.
	parents := []string{rootID}
	leafSeq := 0

	_ = tree.Walk(func(ev domain.Event) error {
		switch ev.Type {
		case domain.EventGroupEnter:
			safeID := sanitizeMermaidID(strings.Join(append(groupTrail(parents), ev.Group.Name), "/"))
			opener, closer := "[", "]"
			if ev.Group.Tabset {
				opener, closer = "[[", "]]"
			}
			label := ev.Group.Name
			if ev.Group.DisplayLabel != "" {
				label = ev.Group.DisplayLabel
			}
			sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeMermaidLabel(label), closer))
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", parents[len(parents)-1], safeID))
			parents = append(parents, safeID)

		case domain.EventItem:
			leafSeq++
			safeID := fmt.Sprintf("leaf%d", leafSeq)
			opener, closer := "[", "]"
			if ev.Item.Payload.Kind() == domain.KindVisualization {
				opener, closer = "[/", "/]"
			}
			sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeMermaidLabel(leafLabel(ev.Item)), closer))
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", parents[len(parents)-1], safeID))

		case domain.EventGroupLeave:
			parents = parents[:len(parents)-1]
		}
		return nil
	})

	return sb.String()
}

// groupTrail strips the synthetic root ID so group IDs stay path based.
func groupTrail(parents []string) []string {
	if len(parents) <= 1 {
		return nil
	}
	return parents[1:]
}

func leafLabel(item *domain.Item) string {
	switch p := item.Payload.(type) {
	case domain.Viz:
		if p.Type != "" {
			return fmt.Sprintf("%s: %s", p.Type, p.Dataset)
		}
		return string(domain.KindVisualization)
	case domain.Callout:
		if p.Title != "" {
			return fmt.Sprintf("callout: %s", p.Title)
		}
	case domain.Card:
		if p.Title != "" {
			return fmt.Sprintf("card: %s", p.Title)
		}
	case domain.Accordion:
		if p.Title != "" {
			return fmt.Sprintf("accordion: %s", p.Title)
		}
	}
	return string(item.Payload.Kind())
}

func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
