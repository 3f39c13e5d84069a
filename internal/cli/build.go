package cli

import (
	"context"
	"fmt"

	"github.com/dashwright/dashwright/pkg/adapters/htmlgen"
	contentloam "github.com/dashwright/dashwright/pkg/adapters/loam"
	"github.com/dashwright/dashwright/pkg/adapters/redis"
	"github.com/dashwright/dashwright/pkg/dsl"
	"github.com/dashwright/dashwright/pkg/ports"
)

// BuildOptions contains all the configuration for the build command.
type BuildOptions struct {
	DefinitionPath string
	ContentDir     string
	OutDir         string
	ContentPage    string
	RedisURL       string
	Debug          bool
}

// ExecuteBuild loads a definition, optionally folds in a content directory,
// and generates the static site.
func ExecuteBuild(ctx context.Context, opts BuildOptions) error {
	logger := createLogger(opts.Debug)

	def, err := LoadDefinition(opts.DefinitionPath)
	if err != nil {
		return err
	}

	board, err := Assemble(def, logger)
	if err != nil {
		return err
	}

	if opts.ContentDir != "" {
		loader, err := contentloam.Open(opts.ContentDir)
		if err != nil {
			return fmt.Errorf("opening content dir: %w", err)
		}
		items, err := loader.Items(ctx)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}
		page := dsl.NewPage(opts.ContentPage)
		for _, item := range items {
			page.AddItem(item)
		}
		board.AddPage(page)
		logger.Info("content directory loaded", "dir", opts.ContentDir, "items", len(items))
	}

	genOpts := []htmlgen.Option{htmlgen.WithLogger(logger)}
	for _, ds := range def.Datasets {
		if src, ok := board.Source(ds.Name); ok {
			genOpts = append(genOpts, htmlgen.WithDataSource(src))
		}
	}
	if opts.RedisURL != "" {
		genOpts = append(genOpts, htmlgen.WithCache(cacheFromURL(opts.RedisURL)))
	}

	gen, err := htmlgen.New(opts.OutDir, genOpts...)
	if err != nil {
		return fmt.Errorf("preparing output dir: %w", err)
	}

	if err := board.Generate(ctx, gen); err != nil {
		return err
	}

	fmt.Printf("Site written to %s\n", opts.OutDir)
	return nil
}

func cacheFromURL(addr string) ports.ArtifactCache {
	return redis.New(addr, "", 0)
}
