// Package loam loads page content from a directory of markdown files with
// frontmatter, so prose-heavy dashboard pages can live as files next to the
// code that assembles them. Each file becomes one content item; its
// frontmatter selects the kind, group path and parameter overrides.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/aretw0/loam"

	"github.com/dashwright/dashwright/pkg/domain"
)

// Loader adapts a Loam repository to a sequence of content items.
type Loader struct {
	Repo *loam.TypedRepository[ContentMetadata]
}

// New creates a Loader from an existing typed repository.
func New(repo *loam.TypedRepository[ContentMetadata]) *Loader {
	return &Loader{Repo: repo}
}

// Open initializes a read-only Loam repository over a content directory.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid content dir: %w", err)
	}

	// Strict mode keeps numeric frontmatter values consistently typed;
	// read-only because the loader never writes content back.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return &Loader{Repo: loam.NewTypedRepository[ContentMetadata](repo)}, nil
}

// Items loads every content file and converts it to an item, ordered by
// the frontmatter "order" key first and document ID second, so pages render
// deterministically regardless of filesystem order.
func (l *Loader) Items(ctx context.Context) ([]*domain.Item, error) {
	// List yields ID stubs only; Get parses the frontmatter and body.
	stubs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	type loaded struct {
		id    string
		order int
		item  *domain.Item
	}
	docs := make([]loaded, 0, len(stubs))
	for _, stub := range stubs {
		doc, err := l.Repo.Get(ctx, stub.ID)
		if err != nil {
			return nil, fmt.Errorf("loam get failed for %s: %w", stub.ID, err)
		}
		item, err := buildItem(doc.ID, doc.Data, doc.Content)
		if err != nil {
			return nil, err
		}
		docs = append(docs, loaded{id: doc.ID, order: doc.Data.Order, item: item})
	}

	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].order != docs[j].order {
			return docs[i].order < docs[j].order
		}
		return docs[i].id < docs[j].id
	})

	items := make([]*domain.Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.item)
	}
	return items, nil
}

func buildItem(docID string, meta ContentMetadata, content string) (*domain.Item, error) {
	var payload domain.Payload
	switch meta.Kind {
	case "", "text":
		payload = domain.Text{Markdown: content}
	case "callout":
		variant := meta.Variant
		if variant == "" {
			variant = "note"
		}
		payload = domain.Callout{Variant: variant, Title: meta.Title, Markdown: content}
	case "accordion":
		payload = domain.Accordion{Title: meta.Title, Markdown: content}
	case "card":
		payload = domain.Card{Title: meta.Title, Markdown: content}
	default:
		return nil, fmt.Errorf("content file %s: unsupported kind %q", docID, meta.Kind)
	}

	path, err := domain.ParsePath(meta.Group)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", docID, err)
	}

	return &domain.Item{
		Payload:     payload,
		GroupPath:   path,
		LocalParams: meta.Params,
	}, nil
}
