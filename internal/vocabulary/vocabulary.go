// Package vocabulary holds the fixed set of concepts tracked in transcripts
// and the ordered categories they are filed under.
package vocabulary

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// OtherCategory collects concepts that match no declared category.
const OtherCategory = "Altro"

// ErrInvalid reports a vocabulary file that fails validation.
var ErrInvalid = errors.New("invalid vocabulary")

//go:embed default.yaml
var defaultVocabulary []byte

// Category is a named cluster of representative terms.
type Category struct {
	Name  string
	Label string
	Terms []string
}

// Matches reports whether any term of c is contained in concept.
func (c Category) Matches(concept string) bool {
	for _, term := range c.Terms {
		if strings.Contains(concept, term) {
			return true
		}
	}
	return false
}

// DisplayLabel is the prefix used when rendering a topic label for c.
func (c Category) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Name
}

// Vocabulary is immutable once built; share it by pointer.
type Vocabulary struct {
	concepts   []string
	index      map[string]struct{}
	categories []Category
	byName     map[string]int
}

type fileSchema struct {
	Concepts   []string         `yaml:"concepts"`
	Categories []categorySchema `yaml:"categories"`
}

type categorySchema struct {
	Name  string   `yaml:"name"`
	Label string   `yaml:"label"`
	Terms []string `yaml:"terms"`
}

// Default returns the compiled-in probability vocabulary.
func Default() *Vocabulary {
	v, err := Parse(defaultVocabulary)
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary: %v", err))
	}
	return v
}

// Load reads and validates a vocabulary file.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Parse decodes and validates YAML vocabulary data.
// Concepts are lowercased, trimmed and kept in ascending order.
func Parse(data []byte) (*Vocabulary, error) {
	var raw fileSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if len(raw.Concepts) == 0 {
		return nil, fmt.Errorf("%w: no concepts", ErrInvalid)
	}

	v := &Vocabulary{
		concepts:   make([]string, 0, len(raw.Concepts)),
		index:      make(map[string]struct{}, len(raw.Concepts)),
		categories: make([]Category, 0, len(raw.Categories)),
		byName:     make(map[string]int, len(raw.Categories)),
	}

	for i, c := range raw.Concepts {
		concept := normalize(c)
		if concept == "" {
			return nil, fmt.Errorf("%w: concept %d is empty", ErrInvalid, i+1)
		}
		if _, dup := v.index[concept]; dup {
			return nil, fmt.Errorf("%w: duplicate concept %q", ErrInvalid, concept)
		}
		v.index[concept] = struct{}{}
		v.concepts = append(v.concepts, concept)
	}
	sort.Strings(v.concepts)

	for i, c := range raw.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category %d has no name", ErrInvalid, i+1)
		}
		if name == OtherCategory {
			return nil, fmt.Errorf("%w: category name %q is reserved", ErrInvalid, name)
		}
		if _, dup := v.byName[name]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalid, name)
		}
		if len(c.Terms) == 0 {
			return nil, fmt.Errorf("%w: category %q has no terms", ErrInvalid, name)
		}

		terms := make([]string, 0, len(c.Terms))
		for _, t := range c.Terms {
			term := normalize(t)
			if term == "" {
				return nil, fmt.Errorf("%w: category %q has an empty term", ErrInvalid, name)
			}
			terms = append(terms, term)
		}

		v.byName[name] = len(v.categories)
		v.categories = append(v.categories, Category{
			Name:  name,
			Label: strings.TrimSpace(c.Label),
			Terms: terms,
		})
	}

	return v, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Concepts returns the concepts in iteration order.
func (v *Vocabulary) Concepts() []string {
	out := make([]string, len(v.concepts))
	copy(out, v.concepts)
	return out
}

// Contains reports whether concept is part of the vocabulary.
func (v *Vocabulary) Contains(concept string) bool {
	_, ok := v.index[concept]
	return ok
}

// Categories returns the categories in declaration order.
func (v *Vocabulary) Categories() []Category {
	out := make([]Category, len(v.categories))
	for i, c := range v.categories {
		c.Terms = append([]string(nil), c.Terms...)
		out[i] = c
	}
	return out
}

// Category looks up a declared category by name.
func (v *Vocabulary) Category(name string) (Category, bool) {
	i, ok := v.byName[name]
	if !ok {
		return Category{}, false
	}
	return v.categories[i], true
}

// Classify returns the first declared category matching concept,
// or OtherCategory.
func (v *Vocabulary) Classify(concept string) string {
	for _, c := range v.categories {
		if c.Matches(concept) {
			return c.Name
		}
	}
	return OtherCategory
}

// Label returns the rendering prefix for a category name. Undeclared names,
// OtherCategory included, render as themselves.
func (v *Vocabulary) Label(name string) string {
	if c, ok := v.Category(name); ok {
		return c.DisplayLabel()
	}
	return name
}
