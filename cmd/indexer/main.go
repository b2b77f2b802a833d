// Command indexer generates the documentation search index artifact: it
// enumerates the compiled MDX pages of a content directory and serializes
// one full-text search document per page and per heading section to a
// single JSON file. Run it as a build step; the previous artifact is fully
// replaced.
package main

import (
	"context"
	"log"
	"time"

	"github.com/alecthomas/kong"

	"github.com/docstack/docsearch/internal/config"
	"github.com/docstack/docsearch/internal/content"
	"github.com/docstack/docsearch/internal/indexing"
)

var cli struct {
	Content     string `arg:"" type:"existingdir" help:"Content directory containing the MDX pages."`
	Output      string `short:"o" default:"public/search-index.json" help:"Output path of the serialized index."`
	Config      string `short:"c" type:"existingfile" optional:"" help:"Docs configuration file (JSON); provides navigation groups and locales."`
	Mount       string `default:"/docs" help:"URL path the documentation is mounted under."`
	Concurrency int    `default:"8" help:"Parallel page parses."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("indexer"),
		kong.Description("Generate the documentation search index artifact."),
	)

	start := time.Now()
	log.Printf("Generating search index...")

	opts := indexing.Options{
		Mount:       cli.Mount,
		Concurrency: cli.Concurrency,
	}

	if cli.Config != "" {
		cfg, err := config.Load(cli.Config)
		if err != nil {
			log.Fatalf("Failed to load docs configuration: %v", err)
		}
		opts.Locales = cfg.LocaleCodes()
		opts.DefaultLocale = cfg.FallbackLocale()

		nav := cfg.Navigation
		opts.GroupTitle = func(slug []string) string {
			group := nav.GroupForSlug(slug, cli.Mount)
			if group == nil {
				return ""
			}
			if title, ok := group.SectionTitle(slug, cli.Mount); ok {
				return title
			}
			return group.Title
		}
	}

	dir := content.NewDir(cli.Content)

	pages, err := dir.List()
	if err != nil {
		log.Fatalf("Failed to enumerate content: %v", err)
	}
	log.Printf("Found %d pages", len(pages))

	docs, err := indexing.Build(context.Background(), pages, dir, opts)
	if err != nil {
		log.Fatalf("Failed to build search documents: %v", err)
	}
	log.Printf("✓ Indexed %d documents from %d pages", len(docs), len(pages))

	if err := indexing.WriteArtifact(cli.Output, docs); err != nil {
		log.Fatalf("Failed to write search index: %v", err)
	}

	log.Printf("✓ Search index saved to %s in %v", cli.Output, time.Since(start).Round(time.Millisecond))
}
