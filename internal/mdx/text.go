package mdx

import (
	"regexp"
	"strings"
)

var (
	importLineRegex   = regexp.MustCompile(`(?m)^import\s+.*$`)
	selfClosingRegex  = regexp.MustCompile(`<[A-Z][a-zA-Z]*[^>]*/>`)
	pairedTagRegex    = regexp.MustCompile(`(?s)<[A-Z][a-zA-Z]*[^>]*>.*?</[A-Z][a-zA-Z]*>`)
	fencedCodeRegex   = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRegex   = regexp.MustCompile("`[^`]+`")
	imageRegex        = regexp.MustCompile(`!\[.*?\]\(.*?\)`)
	linkRegex         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	emphasisRegex     = regexp.MustCompile(`[*_]{1,2}([^*_]+)[*_]{1,2}`)
	headingMarkRegex  = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	whitespaceRegex   = regexp.MustCompile(`\s+`)
	frontmatterRegexp = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n?`)
)

// CleanText strips MDX markup from text, leaving plain prose suitable for a
// search index: import statements, JSX component tags, fenced and inline
// code, image syntax, emphasis markers and heading prefixes are removed;
// link text is kept with its URL dropped; whitespace collapses to single
// spaces.
func CleanText(text string) string {
	s := importLineRegex.ReplaceAllString(text, "")
	s = selfClosingRegex.ReplaceAllString(s, "")
	s = pairedTagRegex.ReplaceAllString(s, "")
	s = fencedCodeRegex.ReplaceAllString(s, "")
	s = inlineCodeRegex.ReplaceAllString(s, "")
	// Images before links: image syntax is link syntax with a bang.
	s = imageRegex.ReplaceAllString(s, "")
	s = linkRegex.ReplaceAllString(s, "$1")
	s = emphasisRegex.ReplaceAllString(s, "$1")
	s = headingMarkRegex.ReplaceAllString(s, "")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SplitFrontmatter separates a leading YAML frontmatter block from the
// document body. The returned frontmatter excludes the --- fences. When the
// document has no frontmatter, frontmatter is empty and body is the input.
func SplitFrontmatter(src string) (frontmatter, body string) {
	src = strings.TrimPrefix(src, "\uFEFF")
	m := frontmatterRegexp.FindStringSubmatchIndex(src)
	if m == nil {
		return "", src
	}
	return src[m[2]:m[3]], src[m[1]:]
}

// Truncate caps s at max runes. Byte-based slicing would split multibyte
// characters on CJK content.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
