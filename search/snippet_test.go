package search_test

import (
	"strings"
	"testing"

	"github.com/docstack/docsearch/search"
)

func TestContentSnippet(t *testing.T) {
	longTail := strings.Repeat("x", 40) + " install " + strings.Repeat("y", 200)

	tests := []struct {
		name      string
		content   string
		query     string
		maxLength int
		expected  string
	}{
		{
			name:     "empty content",
			content:  "",
			query:    "install",
			expected: "",
		},
		{
			name:      "no query, fits",
			content:   "short text",
			query:     "",
			maxLength: 120,
			expected:  "short text",
		},
		{
			name:      "no query, truncated without ellipsis",
			content:   "abcdefghij",
			query:     "",
			maxLength: 5,
			expected:  "abcde",
		},
		{
			name:      "no match, fits",
			content:   "abcdef",
			query:     "zzz",
			maxLength: 10,
			expected:  "abcdef",
		},
		{
			name:      "no match, truncated with ellipsis",
			content:   "abcdefghij",
			query:     "zzz",
			maxLength: 5,
			expected:  "abcde…",
		},
		{
			name:      "match at start, fits",
			content:   "install the tool",
			query:     "install",
			maxLength: 120,
			expected:  "install the tool",
		},
		{
			name:      "deep match gets a window with both ellipses",
			content:   longTail,
			query:     "install",
			maxLength: 120,
			expected:  "…" + longTail[11:131] + "…",
		},
		{
			name:      "earliest word wins",
			content:   "beta alpha",
			query:     "alpha beta",
			maxLength: 120,
			expected:  "beta alpha",
		},
		{
			name:      "case insensitive",
			content:   "Install Guide",
			query:     "install",
			maxLength: 120,
			expected:  "Install Guide",
		},
		{
			name:      "multibyte prefix before match",
			content:   "配置指南 install steps",
			query:     "install",
			maxLength: 120,
			expected:  "配置指南 install steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := search.ContentSnippet(tt.content, tt.query, tt.maxLength)
			if got != tt.expected {
				t.Errorf("ContentSnippet(%q, %q, %d) = %q, want %q",
					tt.content, tt.query, tt.maxLength, got, tt.expected)
			}
		})
	}
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		query    string
		expected []search.Span
	}{
		{
			name:     "empty text",
			text:     "",
			query:    "install",
			expected: nil,
		},
		{
			name:     "empty query",
			text:     "Run npm install",
			query:    "   ",
			expected: []search.Span{{Text: "Run npm install"}},
		},
		{
			name:  "single match",
			text:  "Run npm install now",
			query: "install",
			expected: []search.Span{
				{Text: "Run npm "},
				{Text: "install", Match: true},
				{Text: " now"},
			},
		},
		{
			name:  "multiple words, case insensitive",
			text:  "Install the CLI tool",
			query: "cli install",
			expected: []search.Span{
				{Text: "Install", Match: true},
				{Text: " the "},
				{Text: "CLI", Match: true},
				{Text: " tool"},
			},
		},
		{
			name:  "regex metacharacters treated literally",
			text:  "use c++ here",
			query: "c++",
			expected: []search.Span{
				{Text: "use "},
				{Text: "c++", Match: true},
				{Text: " here"},
			},
		},
		{
			name:  "match at end",
			text:  "npm install",
			query: "install",
			expected: []search.Span{
				{Text: "npm "},
				{Text: "install", Match: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := search.Highlight(tt.text, tt.query)
			if len(got) != len(tt.expected) {
				t.Fatalf("Highlight(%q, %q) = %+v, want %+v", tt.text, tt.query, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("span %d = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}

			// Concatenated spans reconstruct the input exactly.
			var rebuilt strings.Builder
			for _, span := range got {
				rebuilt.WriteString(span.Text)
			}
			if tt.text != "" && rebuilt.String() != tt.text {
				t.Errorf("spans rebuild %q, want %q", rebuilt.String(), tt.text)
			}
		})
	}
}
