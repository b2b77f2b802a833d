// Package indexing builds the full-text search index of a documentation
// site: it walks compiled pages, extracts a page-level and per-section
// document from each, and serializes the result to a single JSON artifact
// consumed by the runtime search engine.
package indexing

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/docstack/docsearch/internal/content"
	"github.com/docstack/docsearch/internal/mdx"
)

const (
	// DefaultMount is the URL path the documentation is served under.
	DefaultMount = "/docs"

	// DefaultConcurrency bounds parallel raw-source parsing.
	DefaultConcurrency = 8
)

// Options configures a build.
type Options struct {
	// Mount is the documentation mount path, DefaultMount when empty.
	Mount string

	// Locales is the set of known locale codes matched against the leading
	// path segment of each page.
	Locales []string

	// DefaultLocale is assigned to pages outside any locale directory.
	DefaultLocale string

	// GroupTitle resolves the navigation group title for a page slug
	// (locale segment already stripped). Nil leaves group titles empty.
	GroupTitle func(slug []string) string

	// Concurrency bounds parallel page parsing, DefaultConcurrency when 0.
	Concurrency int
}

// Build produces one page-level document plus one document per depth-2/3
// table-of-contents entry for every page. Raw sources are read through src
// for section excerpts; a failed read degrades that page to frontmatter-only
// content and never fails the build. Duplicate document ids are dropped with
// a warning so the uniqueness invariant holds.
func Build(ctx context.Context, pages []content.Page, src content.SourceReader, opts Options) ([]SearchDocument, error) {
	if opts.Mount == "" {
		opts.Mount = DefaultMount
	}
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = "en"
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	perPage := make([][]SearchDocument, len(pages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, page := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perPage[i] = buildPage(page, src, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var docs []SearchDocument
	for _, pageDocs := range perPage {
		for _, doc := range pageDocs {
			if _, dup := seen[doc.ID]; dup {
				log.Printf("Warning: duplicate document id %s, skipping", doc.ID)
				continue
			}
			seen[doc.ID] = struct{}{}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func buildPage(page content.Page, src content.SourceReader, opts Options) []SearchDocument {
	slug := mdx.PathToSlug(page.Path)
	locale := deriveLocale(page.Path, opts.Locales, opts.DefaultLocale)

	basePath := opts.Mount
	if len(slug) > 0 {
		basePath = opts.Mount + "/" + strings.Join(slug, "/")
	}

	pageTitle := page.Frontmatter.Title
	if pageTitle == "" {
		if len(slug) > 0 {
			pageTitle = slug[len(slug)-1]
		} else {
			pageTitle = PlaceholderTitle
		}
	}

	intro := page.Frontmatter.Description
	sectionContents := make(map[string]string)
	if src != nil {
		raw, err := src.ReadSource(page.Path)
		if err != nil {
			log.Printf("Warning: failed to read source of %s, indexing frontmatter only: %v", page.Path, err)
		} else {
			parsedIntro, sections := mdx.ParseSections(raw)
			if intro == "" && parsedIntro != "" {
				intro = mdx.Truncate(parsedIntro, MaxIntroChars)
			}
			for _, section := range sections {
				sectionContents[section.Anchor] = mdx.Truncate(section.Content, MaxSectionChars)
			}
		}
	}

	var groupTitle string
	if opts.GroupTitle != nil {
		groupTitle = opts.GroupTitle(stripLocale(slug, locale))
	}

	docs := []SearchDocument{{
		ID:         page.Path + "#" + IntroAnchor,
		Title:      pageTitle,
		PageTitle:  pageTitle,
		GroupTitle: groupTitle,
		Content:    intro,
		Path:       basePath,
		Locale:     locale,
	}}

	for _, item := range page.TOC {
		if item.Depth != 0 && (item.Depth < 2 || item.Depth > 3) {
			continue
		}
		anchor := strings.TrimPrefix(item.URL, "#")
		docs = append(docs, SearchDocument{
			ID:         page.Path + "#" + anchor,
			Title:      item.Title,
			PageTitle:  pageTitle,
			GroupTitle: groupTitle,
			Content:    sectionContents[anchor],
			Path:       basePath + "#" + anchor,
			Locale:     locale,
		})
	}
	return docs
}

// deriveLocale matches the leading path segment against the known locale
// codes, defaulting when the page sits outside any locale directory.
func deriveLocale(path string, locales []string, fallback string) string {
	head, _, _ := strings.Cut(path, "/")
	for _, code := range locales {
		if head == code {
			return code
		}
	}
	return fallback
}

// stripLocale removes the leading locale segment so navigation-group lookup
// sees the same slug for every translation of a page.
func stripLocale(slug []string, locale string) []string {
	if len(slug) > 0 && slug[0] == locale {
		return slug[1:]
	}
	return slug
}
