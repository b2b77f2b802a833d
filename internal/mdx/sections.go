package mdx

import (
	"regexp"
	"strings"
)

// Section is one heading-bounded region of a page body.
type Section struct {
	Anchor  string
	Title   string
	Content string
	Depth   int
}

var headingRegex = regexp.MustCompile(`^(#{2,3})\s+(.+)$`)

// ParseSections splits an MDX source into introduction text (everything
// before the first level-2/3 heading) and an ordered list of sections, each
// ending at the next heading of equal or higher level. Frontmatter is
// stripped first; section bodies and the intro are cleaned with CleanText.
func ParseSections(src string) (intro string, sections []Section) {
	_, body := SplitFrontmatter(src)

	var introLines []string
	var current *Section
	var currentLines []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = CleanText(strings.Join(currentLines, "\n"))
		sections = append(sections, *current)
		current = nil
		currentLines = nil
	}

	for _, line := range strings.Split(body, "\n") {
		m := headingRegex.FindStringSubmatch(line)
		if m != nil {
			flush()
			title := strings.TrimSpace(m[2])
			current = &Section{
				Anchor: HeadingSlug(title),
				Title:  title,
				Depth:  len(m[1]),
			}
			continue
		}

		if current != nil {
			currentLines = append(currentLines, line)
		} else {
			introLines = append(introLines, line)
		}
	}
	flush()

	return CleanText(strings.Join(introLines, "\n")), sections
}
