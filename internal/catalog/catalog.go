// Package catalog defines the static option catalog the prompt builder draws
// from: personas, categories and their bilingual option pools. Catalogs are
// immutable once loaded; all runtime state (visible subsets, selections) lives
// in the builder package.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"promptstudio/internal/i18n"
)

// Option is an atomic selectable value with per-language display strings.
// The English string bears identity: two options are the same option iff
// their English strings match.
type Option map[i18n.Language]string

// NewOption builds a catalog option from its Spanish and English strings.
func NewOption(es, en string) Option {
	return Option{i18n.Spanish: es, i18n.English: en}
}

// NewCustomOption builds an ad-hoc, user-authored option. The raw input is
// used for every language so the canonical key equals what the user typed.
func NewCustomOption(text string) Option {
	return Option{i18n.Spanish: text, i18n.English: text}
}

// CanonicalKey returns the identity-bearing string of the option.
func (o Option) CanonicalKey() string {
	return o[i18n.English]
}

// Localized resolves the display string for the requested language, falling
// back to i18n.Fallback when the requested language has no value.
func (o Option) Localized(lang i18n.Language) string {
	if v, ok := o[lang]; ok && v != "" {
		return v
	}
	return o[i18n.Fallback]
}

// Equal reports identity by canonical key.
func (o Option) Equal(other Option) bool {
	return o.CanonicalKey() == other.CanonicalKey()
}

// Category is a named group of options.
type Category struct {
	// ID is the stable key ("lighting", "outfit", ...). It doubles as the
	// i18n message key for the display label.
	ID string

	// SingleSelect restricts the category to at most one selection.
	SingleSelect bool

	// ExcludeFromRandom keeps the category out of random idea generation.
	ExcludeFromRandom bool

	// Options is the full selectable pool, possibly much larger than what
	// is shown at once.
	Options []Option

	// DefaultVisible is how many options a fresh view shows. A value
	// larger than the pool degrades to the full pool.
	DefaultVisible int
}

// Label returns the localized display label of the category.
func (c Category) Label(lang i18n.Language) string {
	return i18n.T(lang, c.ID)
}

// PersonaID identifies a configured account/persona.
type PersonaID string

// ContentType is the kind of output the user is asking the backend for.
type ContentType string

const (
	ImagePrompt ContentType = "Image Prompt"
	PostText    ContentType = "Post Text"
)

// Persona describes an account the studio generates content for.
type Persona struct {
	ID          PersonaID `yaml:"id"`
	Name        string    `yaml:"name"`
	Tagline     string    `yaml:"tagline"`
	Description string    `yaml:"description"`
	Instagram   string    `yaml:"instagram"`
	Twitter     string    `yaml:"twitter"`
	Color       string    `yaml:"color"`
}

// Catalog is the full option configuration for one persona: an ordered list
// of categories. Iteration order is significant, it drives prompt composition.
type Catalog struct {
	Persona    Persona
	Categories []Category
}

// Category returns the category with the given id, if present.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// =============================================================================
// YAML OVERRIDE LOADING
// =============================================================================

// yamlOption mirrors Option in catalog override files.
type yamlOption struct {
	ES string `yaml:"es"`
	EN string `yaml:"en"`
}

type yamlCategory struct {
	ID                string       `yaml:"id"`
	SingleSelect      bool         `yaml:"single_select"`
	ExcludeFromRandom bool         `yaml:"exclude_from_random"`
	DefaultVisible    int          `yaml:"default_visible"`
	Options           []yamlOption `yaml:"options"`
}

type yamlCatalog struct {
	Persona    Persona        `yaml:"persona"`
	Categories []yamlCategory `yaml:"categories"`
}

// LoadFile reads a catalog override from a YAML file. Used to extend or
// replace the built-in catalogs without recompiling.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if raw.Persona.ID == "" {
		return nil, fmt.Errorf("catalog file %s: persona.id is required", path)
	}

	cat := &Catalog{Persona: raw.Persona}
	for _, yc := range raw.Categories {
		if yc.ID == "" {
			return nil, fmt.Errorf("catalog file %s: category without id", path)
		}
		opts := make([]Option, 0, len(yc.Options))
		for _, yo := range yc.Options {
			if yo.EN == "" {
				return nil, fmt.Errorf("catalog file %s: option in %q missing en value", path, yc.ID)
			}
			es := yo.ES
			if es == "" {
				es = yo.EN
			}
			opts = append(opts, NewOption(es, yo.EN))
		}
		visible := yc.DefaultVisible
		if visible <= 0 {
			visible = len(opts)
		}
		cat.Categories = append(cat.Categories, Category{
			ID:                yc.ID,
			SingleSelect:      yc.SingleSelect,
			ExcludeFromRandom: yc.ExcludeFromRandom,
			DefaultVisible:    visible,
			Options:           opts,
		})
	}
	return cat, nil
}
