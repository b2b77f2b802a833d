// Package config loads and validates the documentation-site configuration:
// navigation groups with their page trees, and the i18n locale set. The
// configuration file is JSON, validated against an embedded JSON Schema
// before decoding.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://docstack.dev/schema/docsearch-config.json"

// DefaultLocale is used when the configuration has no i18n block.
const DefaultLocale = "en"

// Config is the validated documentation-site configuration.
type Config struct {
	Title      string     `json:"title"`
	SiteName   string     `json:"siteName"`
	Navigation Navigation `json:"navigation"`
	I18N       *I18N      `json:"i18n"`
}

// Navigation holds the top-level navigation groups.
type Navigation struct {
	Style  string  `json:"style"`
	Groups []Group `json:"groups"`
}

// Group is one navigation group: a titled link with a tree of pages.
type Group struct {
	Title    string     `json:"title"`
	Icon     string     `json:"icon"`
	Link     string     `json:"link"`
	External bool       `json:"external"`
	Children []PageNode `json:"children"`
}

// I18N configures the locale set of the site.
type I18N struct {
	Locales       map[string]Locale `json:"locales"`
	DefaultLocale string            `json:"defaultLocale"`
}

// Locale describes one configured locale.
type Locale struct {
	Label string `json:"label"`
}

// NodeKind discriminates the PageNode variant.
type NodeKind int

const (
	// NodeLeaf is a page reference: a path segment string.
	NodeLeaf NodeKind = iota
	// NodeSection is a titled section holding child nodes.
	NodeSection
)

// PageNode is a navigation tree node: either a leaf page path or a section
// with children. Kind selects which fields are meaningful.
type PageNode struct {
	Kind NodeKind

	// Leaf fields.
	Path string

	// Section fields.
	Title    string
	Icon     string
	Base     string
	Children []PageNode
}

// UnmarshalJSON decodes the "string or section object" config shape into the
// tagged variant.
func (n *PageNode) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var path string
		if err := json.Unmarshal(data, &path); err != nil {
			return err
		}
		*n = PageNode{Kind: NodeLeaf, Path: path}
		return nil
	}

	var section struct {
		Title    string     `json:"title"`
		Icon     string     `json:"icon"`
		Base     string     `json:"base"`
		Children []PageNode `json:"children"`
	}
	if err := json.Unmarshal(data, &section); err != nil {
		return err
	}
	*n = PageNode{
		Kind:     NodeSection,
		Title:    section.Title,
		Icon:     section.Icon,
		Base:     section.Base,
		Children: section.Children,
	}
	return nil
}

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// Parse validates raw configuration JSON against the schema and decodes it.
func Parse(data []byte) (*Config, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile config schema: %w", err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid config JSON: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("invalid docs configuration: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// LocaleCodes returns the configured locale codes in sorted order, or just
// the default locale when no i18n block is configured.
func (c *Config) LocaleCodes() []string {
	if c.I18N == nil || len(c.I18N.Locales) == 0 {
		return []string{c.FallbackLocale()}
	}
	codes := make([]string, 0, len(c.I18N.Locales))
	for code := range c.I18N.Locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// FallbackLocale returns the configured default locale, or DefaultLocale.
func (c *Config) FallbackLocale() string {
	if c.I18N != nil && c.I18N.DefaultLocale != "" {
		return c.I18N.DefaultLocale
	}
	return DefaultLocale
}
