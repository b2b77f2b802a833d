package config_test

import (
	"strings"
	"testing"

	"github.com/docstack/docsearch/internal/config"
)

const mount = "/docs"

func guidesGroup() config.Group {
	return config.Group{
		Title: "Guides",
		Link:  "/docs/guides",
		Children: []config.PageNode{
			{Kind: config.NodeLeaf, Path: "."},
			{Kind: config.NodeLeaf, Path: "intro"},
			{
				Kind:  config.NodeSection,
				Title: "Advanced",
				Base:  "advanced",
				Children: []config.PageNode{
					{Kind: config.NodeLeaf, Path: "caching"},
					{
						Kind:  config.NodeSection,
						Title: "Operations",
						Children: []config.PageNode{
							{Kind: config.NodeLeaf, Path: "scaling"},
						},
					},
				},
			},
		},
	}
}

func testNavigation() config.Navigation {
	return config.Navigation{
		Groups: []config.Group{
			guidesGroup(),
			{Title: "Home", Link: "/docs"},
			{Title: "GitHub", Link: "https://github.com/docstack", External: true},
		},
	}
}

func TestGroupForSlug(t *testing.T) {
	nav := testNavigation()

	tests := []struct {
		name     string
		slug     []string
		expected string
	}{
		{name: "exact group link", slug: []string{"guides"}, expected: "Guides"},
		{name: "nested under group", slug: []string{"guides", "intro"}, expected: "Guides"},
		{name: "root group fallback", slug: []string{"changelog"}, expected: "Home"},
		{name: "empty slug falls to root", slug: nil, expected: "Home"},
		{name: "prefix must be segment-aligned", slug: []string{"guidesextra"}, expected: "Home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := nav.GroupForSlug(tt.slug, mount)
			if group == nil {
				t.Fatalf("GroupForSlug(%v) = nil, want %q", tt.slug, tt.expected)
			}
			if group.Title != tt.expected {
				t.Errorf("GroupForSlug(%v) = %q, want %q", tt.slug, group.Title, tt.expected)
			}
		})
	}
}

func TestSectionTitle(t *testing.T) {
	group := guidesGroup()

	tests := []struct {
		name     string
		slug     []string
		expected string
		ok       bool
	}{
		{name: "page in section", slug: []string{"guides", "advanced", "caching"}, expected: "Advanced", ok: true},
		{name: "deepest section wins", slug: []string{"guides", "advanced", "scaling"}, expected: "Operations", ok: true},
		{name: "direct child gets group title", slug: []string{"guides", "intro"}, expected: "Guides", ok: true},
		{name: "dot child is the group page", slug: []string{"guides"}, expected: "Guides", ok: true},
		{name: "unregistered page", slug: []string{"guides", "missing"}, ok: false},
		{name: "outside the group", slug: []string{"reference", "api"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, ok := group.SectionTitle(tt.slug, mount)
			if ok != tt.ok || title != tt.expected {
				t.Errorf("SectionTitle(%v) = (%q, %v), want (%q, %v)", tt.slug, title, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestFlattenPages(t *testing.T) {
	group := guidesGroup()

	pages := group.FlattenPages(mount)

	hrefs := make([]string, len(pages))
	for i, p := range pages {
		hrefs[i] = p.Href
	}
	expected := []string{
		"/docs/guides",
		"/docs/guides/intro",
		"/docs/guides/advanced/caching",
		"/docs/guides/advanced/scaling",
	}
	if strings.Join(hrefs, " ") != strings.Join(expected, " ") {
		t.Errorf("FlattenPages() hrefs = %v, want %v", hrefs, expected)
	}

	if strings.Join(pages[2].Slug, "/") != "guides/advanced/caching" {
		t.Errorf("slug = %v, want guides/advanced/caching", pages[2].Slug)
	}
}

func TestPageNavigation(t *testing.T) {
	group := guidesGroup()

	nav := group.PageNavigation([]string{"guides", "intro"}, mount)
	if nav.Prev == nil || nav.Prev.Href != "/docs/guides" {
		t.Errorf("prev = %+v, want /docs/guides", nav.Prev)
	}
	if nav.Next == nil || nav.Next.Href != "/docs/guides/advanced/caching" {
		t.Errorf("next = %+v, want /docs/guides/advanced/caching", nav.Next)
	}

	first := group.PageNavigation([]string{"guides"}, mount)
	if first.Prev != nil {
		t.Errorf("first page should have no prev, got %+v", first.Prev)
	}

	missing := group.PageNavigation([]string{"guides", "missing"}, mount)
	if missing.Prev != nil || missing.Next != nil {
		t.Errorf("unregistered page should have no navigation, got %+v", missing)
	}
}
