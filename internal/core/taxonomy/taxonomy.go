package taxonomy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is a single ID→label row. Parent is only set on subcategories.
type Entry struct {
	ID     int    `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Parent int    `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// Taxonomy holds the three classification tables a ToolRecord may reference.
type Taxonomy struct {
	Categories    []Entry `json:"categories" yaml:"categories"`
	Subcategories []Entry `json:"subcategories" yaml:"subcategories"`
	Tags          []Entry `json:"tags" yaml:"tags"`

	categoryIDs    map[int]struct{}
	subcategoryIDs map[int]struct{}
	tagIDs         map[int]struct{}
}

// New validates the tables and indexes them for membership checks.
func New(categories, subcategories, tags []Entry) (*Taxonomy, error) {
	t := &Taxonomy{Categories: categories, Subcategories: subcategories, Tags: tags}
	if err := t.index(); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads a YAML taxonomy file with top-level categories, subcategories and tags lists.
func Load(path string) (*Taxonomy, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	var raw struct {
		Categories    []Entry `yaml:"categories"`
		Subcategories []Entry `yaml:"subcategories"`
		Tags          []Entry `yaml:"tags"`
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse taxonomy file %s: %w", path, err)
	}
	t, err := New(raw.Categories, raw.Subcategories, raw.Tags)
	if err != nil {
		return nil, fmt.Errorf("taxonomy file %s: %w", path, err)
	}
	return t, nil
}

func (t *Taxonomy) index() error {
	var err error
	if t.categoryIDs, err = indexEntries("category", t.Categories); err != nil {
		return err
	}
	if t.subcategoryIDs, err = indexEntries("subcategory", t.Subcategories); err != nil {
		return err
	}
	if t.tagIDs, err = indexEntries("tag", t.Tags); err != nil {
		return err
	}
	for _, s := range t.Subcategories {
		if s.Parent == 0 {
			continue
		}
		if _, ok := t.categoryIDs[s.Parent]; !ok {
			return fmt.Errorf("subcategory %d references unknown category %d", s.ID, s.Parent)
		}
	}
	return nil
}

func indexEntries(kind string, entries []Entry) (map[int]struct{}, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s table is empty", kind)
	}
	ids := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		if e.ID <= 0 {
			return nil, fmt.Errorf("%s %q has non-positive id %d", kind, e.Label, e.ID)
		}
		if strings.TrimSpace(e.Label) == "" {
			return nil, fmt.Errorf("%s %d has an empty label", kind, e.ID)
		}
		if _, dup := ids[e.ID]; dup {
			return nil, fmt.Errorf("duplicate %s id %d", kind, e.ID)
		}
		ids[e.ID] = struct{}{}
	}
	return ids, nil
}

func (t *Taxonomy) HasCategory(id int) bool {
	_, ok := t.categoryIDs[id]
	return ok
}

func (t *Taxonomy) HasSubcategory(id int) bool {
	_, ok := t.subcategoryIDs[id]
	return ok
}

func (t *Taxonomy) HasTag(id int) bool {
	_, ok := t.tagIDs[id]
	return ok
}

// Contains returns an error naming the first ID that is not part of its table.
func (t *Taxonomy) Contains(categories, subcategories, tags []int) error {
	for _, id := range categories {
		if !t.HasCategory(id) {
			return fmt.Errorf("unknown category id %d", id)
		}
	}
	for _, id := range subcategories {
		if !t.HasSubcategory(id) {
			return fmt.Errorf("unknown subcategory id %d", id)
		}
	}
	for _, id := range tags {
		if !t.HasTag(id) {
			return fmt.Errorf("unknown tag id %d", id)
		}
	}
	return nil
}

// Render formats a table as one "ID: Label" line per entry for prompt embedding.
// Subcategories carry their parent category.
func Render(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d: %s", e.ID, e.Label)
		if e.Parent != 0 {
			fmt.Fprintf(&b, " (category %d)", e.Parent)
		}
	}
	return b.String()
}
