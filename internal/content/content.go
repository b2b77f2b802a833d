// Package content provides the build-time enumeration API over compiled
// documentation pages: per page its content-relative path, parsed
// frontmatter, and table-of-contents entries, plus raw MDX source reads for
// section-content extraction.
package content

// Frontmatter is the parsed YAML frontmatter of a documentation page.
type Frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// TOCItem is one heading entry in a page's rendered table of contents.
type TOCItem struct {
	Title string
	URL   string // fragment link, e.g. "#installation"
	Depth int
}

// Page is a compiled documentation page as seen by the index builder.
type Page struct {
	Path        string // relative to the content root, forward slashes
	Frontmatter Frontmatter
	TOC         []TOCItem
}

// Lister enumerates every compiled documentation page.
type Lister interface {
	List() ([]Page, error)
}

// SourceReader reads the raw MDX source of a page by its content-relative
// path.
type SourceReader interface {
	ReadSource(path string) (string, error)
}
