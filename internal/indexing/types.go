package indexing

// SearchDocument is one indexed unit: either a whole page (anchor "intro")
// or a single heading section of a page.
type SearchDocument struct {
	ID         string `json:"id"`         // {pagePath}#{anchor}, unique per build
	Title      string `json:"title"`      // heading text, or the page title for page units
	PageTitle  string `json:"pageTitle"`  // owning page's title, always present
	GroupTitle string `json:"groupTitle"` // navigation group, empty when not applicable
	Content    string `json:"content"`    // cleaned plain-text excerpt
	Path       string `json:"path"`       // {basePath} or {basePath}#{anchor}
	Locale     string `json:"locale"`
}

const (
	// IntroAnchor identifies the page-level document of a page.
	IntroAnchor = "intro"

	// MaxIntroChars caps the cleaned introduction excerpt.
	MaxIntroChars = 200

	// MaxSectionChars caps each cleaned section excerpt.
	MaxSectionChars = 300

	// PlaceholderTitle substitutes a missing page title when the path
	// yields no usable segment either.
	PlaceholderTitle = "Untitled"

	// ArtifactVersion increments when the artifact layout or the document
	// emission rules change.
	ArtifactVersion = 1
)
