// pkg/catalog/catalog.go

// Package catalog holds the list of tools offered by cyberkit and its
// companion site, and searches it.
package catalog

import (
	_ "embed"
	"slices"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

//go:embed tools.yaml
var toolsYAML []byte

type Category string

const (
	All       Category = "all"
	Security  Category = "security"
	Developer Category = "developer"
	Education Category = "education"
)

// Categories in display order.
var Categories = []Category{All, Security, Developer, Education}

var ErrUnknownCategory = cerr.New("unknown tool category")

type Tool struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Category    Category `yaml:"category" json:"category"`
	Label       string   `yaml:"label" json:"label"`
	Tags        []string `yaml:"tags" json:"tags"`
	// Command is the cyberkit invocation for tools available in the CLI.
	Command string `yaml:"command,omitempty" json:"command,omitempty"`
}

type Catalog struct {
	Tools []Tool `yaml:"tools"`
}

// cliCommands maps catalog ids to the commands implementing them.
var cliCommands = map[string]string{
	"password-generator": "cyberkit create password",
	"hash-generator":     "cyberkit create hash",
	"uuid-generator":     "cyberkit create uuid",
	"jwt-decoder":        "cyberkit inspect jwt",
	"minify-me":          "cyberkit minify",
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(toolsYAML)
}

// Parse decodes a catalog document and checks every tool's category.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, cerr.Wrap(err, "parse tool catalog")
	}
	for i := range c.Tools {
		t := &c.Tools[i]
		if _, err := ParseCategory(string(t.Category)); err != nil || t.Category == All {
			return nil, cerr.Newf("tool %q: invalid category %q", t.ID, t.Category)
		}
		if t.Command == "" {
			t.Command = cliCommands[t.ID]
		}
	}
	return &c, nil
}

// ParseCategory accepts a category name in any case; empty means All.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if c == "" {
		return All, nil
	}
	if !slices.Contains(Categories, c) {
		return "", cerr.WithHintf(cerr.Wrapf(ErrUnknownCategory, "%q", name),
			"Choose one of: all, security, developer, education")
	}
	return c, nil
}

// Search returns tools in category whose title, description or tags contain
// query, case-insensitively. An empty query matches everything.
func (c *Catalog) Search(query string, category Category) []Tool {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Tool
	for _, t := range c.Tools {
		if category != All && category != "" && t.Category != category {
			continue
		}
		if q == "" || strings.Contains(t.haystack(), q) {
			out = append(out, t)
		}
	}
	return out
}

func (t Tool) haystack() string {
	return strings.ToLower(t.Title + " " + t.Description + " " + strings.Join(t.Tags, " "))
}

// CLI lists the tools cyberkit itself implements.
func (c *Catalog) CLI() []Tool {
	var out []Tool
	for _, t := range c.Tools {
		if t.Command != "" {
			out = append(out, t)
		}
	}
	return out
}
