package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultSnippetLength is the snippet size target in characters.
	DefaultSnippetLength = 120

	// snippetLead is how far before the first match the window starts.
	snippetLead = 30
)

// Span is a run of text with a highlight flag. Concatenating the Text of
// every span reconstructs the highlighted input exactly.
type Span struct {
	Text  string
	Match bool
}

// queryWords splits a query into lowercase whitespace-separated words.
func queryWords(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// ContentSnippet extracts a display window from content around the earliest
// occurrence of any query word: starting snippetLead characters before the
// match, maxLength characters wide, with a leading ellipsis when the window
// does not start at the beginning and a trailing one when it does not reach
// the end. Without a match the first maxLength characters are returned,
// ellipsis-suffixed only if truncated.
func ContentSnippet(content, query string, maxLength int) string {
	if content == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = DefaultSnippetLength
	}

	runes := []rune(content)
	words := queryWords(query)
	if len(words) == 0 {
		if len(runes) <= maxLength {
			return content
		}
		return string(runes[:maxLength])
	}

	lower := strings.ToLower(content)
	matchIndex := -1
	for _, word := range words {
		idx := strings.Index(lower, word)
		if idx == -1 {
			continue
		}
		at := utf8.RuneCountInString(lower[:idx])
		if matchIndex == -1 || at < matchIndex {
			matchIndex = at
		}
	}

	if matchIndex == -1 {
		if len(runes) <= maxLength {
			return content
		}
		return string(runes[:maxLength]) + "…"
	}

	start := matchIndex - snippetLead
	if start < 0 {
		start = 0
	}
	end := matchIndex + maxLength - snippetLead
	if end > len(runes) {
		end = len(runes)
	}
	if end < start {
		end = start
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "…" + snippet
	}
	if end < len(runes) {
		snippet += "…"
	}
	return snippet
}

// Highlight splits text into spans, marking every case-insensitive
// occurrence of any query word. An empty query or empty text yields the
// text unchanged in a single unmarked span.
func Highlight(text, query string) []Span {
	if text == "" {
		return nil
	}
	words := queryWords(query)
	if len(words) == 0 {
		return []Span{{Text: text}}
	}

	escaped := make([]string, len(words))
	for i, word := range words {
		escaped[i] = regexp.QuoteMeta(word)
	}
	re, err := regexp.Compile(`(?i)(` + strings.Join(escaped, "|") + `)`)
	if err != nil {
		return []Span{{Text: text}}
	}

	var spans []Span
	last := 0
	for _, m := range re.FindAllStringIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		spans = append(spans, Span{Text: text[m[0]:m[1]], Match: true})
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}
