package mdx

import (
	"regexp"
	"strings"
)

var (
	// Characters that survive heading slugification: word characters,
	// whitespace, hyphens, and the CJK unicode ranges so Chinese and
	// Japanese headings keep usable anchors.
	slugDropRegex     = regexp.MustCompile(`[^\w\s\x{4e00}-\x{9fff}\x{3040}-\x{309f}\x{30a0}-\x{30ff}-]`)
	slugSpaceRegex    = regexp.MustCompile(`\s+`)
	slugCollapseRegex = regexp.MustCompile(`-+`)
)

// PathToSlug converts a content-relative file path to URL slug segments.
// It strips the .mdx extension, removes route-group segments (folders in
// parentheses) and literal "index" segments, and keeps everything else in
// order. Example: "(core)/(api)/reference/auth.mdx" -> ["reference", "auth"].
func PathToSlug(path string) []string {
	trimmed := strings.TrimSuffix(path, ".mdx")

	var slug []string
	for _, segment := range strings.Split(trimmed, "/") {
		if segment == "" || segment == "index" || strings.HasPrefix(segment, "(") {
			continue
		}
		slug = append(slug, segment)
	}
	return slug
}

// SlugsEqual reports whether two slugs have the same segments in the same
// order. Two empty slugs are equal.
func SlugsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// HeadingSlug generates a GitHub-style anchor from heading text: lowercase,
// drop characters outside word/whitespace/hyphen (preserving CJK), collapse
// whitespace runs to single hyphens, collapse repeated hyphens, and trim
// leading/trailing hyphens. Idempotent on already-slugified input.
func HeadingSlug(text string) string {
	s := strings.ToLower(text)
	s = slugDropRegex.ReplaceAllString(s, "")
	s = slugSpaceRegex.ReplaceAllString(s, "-")
	s = slugCollapseRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
