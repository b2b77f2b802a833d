package config

import (
	"strings"

	"github.com/docstack/docsearch/internal/mdx"
)

// FlatPage is one entry in the flattened, ordered page list of a group.
type FlatPage struct {
	Href string
	Slug []string
}

// PageNavigation holds the previous and next pages around a given page.
type PageNavigation struct {
	Prev *FlatPage
	Next *FlatPage
}

// GroupForSlug returns the navigation group whose link prefix matches the
// slug. A group whose link equals the mount path acts as the root group and
// matches only when no other group does. Returns nil when the slug belongs
// to no group.
func (n Navigation) GroupForSlug(slug []string, mount string) *Group {
	slugPath := strings.Join(slug, "/")

	var root *Group
	for i := range n.Groups {
		g := &n.Groups[i]
		if g.External {
			continue
		}
		linkPath := groupPath(g.Link, mount)
		if linkPath == "" {
			root = g
			continue
		}
		if slugPath == linkPath || strings.HasPrefix(slugPath, linkPath+"/") {
			return g
		}
	}
	return root
}

// SectionTitle returns the title of the deepest navigation section that
// registers the page at slug as a direct child, falling back to the group
// title when the page sits directly under the group. ok is false when the
// page is not registered under this group.
func (g *Group) SectionTitle(slug []string, mount string) (title string, ok bool) {
	rel, ok := g.relativePath(slug, mount)
	if !ok {
		return "", false
	}

	var deepest string
	var walk func(nodes []PageNode, base string)
	walk = func(nodes []PageNode, base string) {
		for _, node := range nodes {
			if node.Kind != NodeSection {
				continue
			}
			sectionBase := joinBase(base, node.Base)
			for _, child := range node.Children {
				if child.Kind == NodeLeaf && childPath(sectionBase, child.Path) == rel {
					deepest = node.Title
				}
			}
			walk(node.Children, sectionBase)
		}
	}
	walk(g.Children, "")

	if deepest != "" {
		return deepest, true
	}
	for _, node := range g.Children {
		if node.Kind == NodeLeaf && childPath("", node.Path) == rel {
			return g.Title, true
		}
	}
	return "", false
}

// FlattenPages walks the group's page tree in order, accumulating the flat
// list of navigable pages with their hrefs and slugs.
func (g *Group) FlattenPages(mount string) []FlatPage {
	baseLink := strings.TrimSuffix(g.Link, "/")
	prefix := splitPath(groupPath(g.Link, mount))

	var result []FlatPage
	var collect func(nodes []PageNode, base string)
	collect = func(nodes []PageNode, base string) {
		for _, node := range nodes {
			if node.Kind == NodeLeaf {
				pagePath := childPath(base, node.Path)
				href := baseLink
				if pagePath != "" {
					href = baseLink + "/" + pagePath
				}
				slug := append(append([]string{}, prefix...), splitPath(pagePath)...)
				result = append(result, FlatPage{Href: href, Slug: slug})
				continue
			}
			collect(node.Children, joinBase(base, node.Base))
		}
	}
	collect(g.Children, "")
	return result
}

// PageNavigation returns the pages before and after the page at slug in the
// group's flattened order. Both are nil when the slug is not in the group.
func (g *Group) PageNavigation(slug []string, mount string) PageNavigation {
	pages := g.FlattenPages(mount)
	for i := range pages {
		if mdx.SlugsEqual(pages[i].Slug, slug) {
			var nav PageNavigation
			if i > 0 {
				nav.Prev = &pages[i-1]
			}
			if i < len(pages)-1 {
				nav.Next = &pages[i+1]
			}
			return nav
		}
	}
	return PageNavigation{}
}

func (g *Group) relativePath(slug []string, mount string) (string, bool) {
	slugPath := strings.Join(slug, "/")
	linkPath := groupPath(g.Link, mount)
	if linkPath == "" {
		return slugPath, true
	}
	if slugPath == linkPath {
		return "", true
	}
	if strings.HasPrefix(slugPath, linkPath+"/") {
		return slugPath[len(linkPath)+1:], true
	}
	return "", false
}

// groupPath strips the docs mount prefix and surrounding slashes from a
// group link, yielding its slug-relative path.
func groupPath(link, mount string) string {
	p := strings.TrimPrefix(link, mount)
	return strings.Trim(p, "/")
}

func childPath(base, path string) string {
	if path == "." {
		return base
	}
	if base == "" {
		return path
	}
	return base + "/" + path
}

func joinBase(base, sectionBase string) string {
	if sectionBase == "" {
		return base
	}
	if base == "" {
		return sectionBase
	}
	return base + "/" + sectionBase
}

func splitPath(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
