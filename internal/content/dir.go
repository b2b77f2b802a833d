package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docstack/docsearch/internal/mdx"
)

// Dir lists documentation pages from a content directory on disk. It is the
// filesystem implementation of Lister and SourceReader: it walks the tree
// for .mdx files, parses their frontmatter, and derives the table of
// contents from level-2/3 headings the same way the rendered output does.
type Dir struct {
	Root string
}

// NewDir returns a Dir rooted at the given content directory.
func NewDir(root string) *Dir {
	return &Dir{Root: root}
}

// List walks the content root and returns every .mdx page. A page whose
// frontmatter fails to parse is returned with empty frontmatter rather than
// aborting the walk; a walk error aborts the enumeration.
func (d *Dir) List() ([]Page, error) {
	var pages []Page

	err := filepath.WalkDir(d.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".mdx") {
			return nil
		}

		rel, err := filepath.Rel(d.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read page %s: %w", rel, err)
		}

		pages = append(pages, parsePage(rel, string(src)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate content in %s: %w", d.Root, err)
	}

	return pages, nil
}

// ReadSource returns the raw MDX source of a page.
func (d *Dir) ReadSource(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(d.Root, filepath.FromSlash(path)))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func parsePage(rel, src string) Page {
	page := Page{Path: rel}

	rawFM, _ := mdx.SplitFrontmatter(src)
	if rawFM != "" {
		// Invalid frontmatter degrades the page to path-derived metadata.
		_ = yaml.Unmarshal([]byte(rawFM), &page.Frontmatter)
	}

	_, sections := mdx.ParseSections(src)
	for _, section := range sections {
		page.TOC = append(page.TOC, TOCItem{
			Title: section.Title,
			URL:   "#" + section.Anchor,
			Depth: section.Depth,
		})
	}

	return page
}
