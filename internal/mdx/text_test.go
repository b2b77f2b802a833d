package mdx_test

import (
	"strings"
	"testing"

	"github.com/docstack/docsearch/internal/mdx"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "import statements removed",
			input:    "import { Callout } from '@/components'\n\nSome text",
			expected: "Some text",
		},
		{
			name:     "self-closing component removed",
			input:    "Before <Callout type=\"info\" /> after",
			expected: "Before after",
		},
		{
			name:     "paired component removed with body",
			input:    "Before <Card title=\"x\">inner text</Card> after",
			expected: "Before after",
		},
		{
			name:     "fenced code block removed",
			input:    "Run this:\n```bash\nnpm install\n```\nDone.",
			expected: "Run this: Done.",
		},
		{
			name:     "inline code removed",
			input:    "Use the `--force` flag carefully",
			expected: "Use the flag carefully",
		},
		{
			name:     "link text kept",
			input:    "See the [installation guide](/docs/install) for details",
			expected: "See the installation guide for details",
		},
		{
			name:     "image dropped entirely",
			input:    "Diagram: ![architecture](./arch.png) shows flow",
			expected: "Diagram: shows flow",
		},
		{
			name:     "emphasis markers removed",
			input:    "This is **important** and _subtle_",
			expected: "This is important and subtle",
		},
		{
			name:     "heading markers removed",
			input:    "## Setup\nText below",
			expected: "Setup Text below",
		},
		{
			name:     "whitespace collapsed",
			input:    "one\n\n\ntwo   three",
			expected: "one two three",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mdx.CleanText(tt.input)
			if result != tt.expected {
				t.Errorf("mdx.CleanText(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSplitFrontmatter(t *testing.T) {
	src := "---\ntitle: Setup\ndescription: How to set up.\n---\n\n# Setup\n\nBody text.\n"

	fm, body := mdx.SplitFrontmatter(src)

	if !strings.Contains(fm, "title: Setup") {
		t.Errorf("frontmatter missing title, got %q", fm)
	}
	if strings.Contains(body, "---") {
		t.Errorf("body still contains frontmatter fences: %q", body)
	}
	if !strings.Contains(body, "Body text.") {
		t.Errorf("body missing content: %q", body)
	}
}

func TestSplitFrontmatter_ByteOrderMark(t *testing.T) {
	src := "\uFEFF---\ntitle: Setup\n---\n\nBody text.\n"

	fm, body := mdx.SplitFrontmatter(src)

	if !strings.Contains(fm, "title: Setup") {
		t.Errorf("frontmatter not detected behind BOM, got %q", fm)
	}
	if !strings.Contains(body, "Body text.") {
		t.Errorf("body missing content: %q", body)
	}
}

func TestSplitFrontmatter_NoFrontmatter(t *testing.T) {
	src := "# Just a heading\n\nText."

	fm, body := mdx.SplitFrontmatter(src)

	if fm != "" {
		t.Errorf("expected empty frontmatter, got %q", fm)
	}
	if body != src {
		t.Errorf("body changed without frontmatter: %q", body)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "shorter than max", input: "short", max: 10, expected: "short"},
		{name: "exactly max", input: "12345", max: 5, expected: "12345"},
		{name: "truncated", input: "1234567890", max: 5, expected: "12345"},
		{name: "multibyte safe", input: "配置你的项目", max: 2, expected: "配置"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := mdx.Truncate(tt.input, tt.max); result != tt.expected {
				t.Errorf("mdx.Truncate(%q, %d) = %q, want %q", tt.input, tt.max, result, tt.expected)
			}
		})
	}
}
