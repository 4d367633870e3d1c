// Package taxonomy classifies ontology entity names into coarse type
// labels. The table is built once from enumerated name lists and is
// total: any name outside the lists classifies as Other.
package taxonomy

import (
	"errors"
	"fmt"
	"sort"
)

// Label is the coarse type assigned to an ontology entity.
type Label string

// Entity type labels stamped onto relation endpoints.
const (
	Agent    Label = "Agent"
	Document Label = "Document"
	Code     Label = "Code"
	Other    Label = "Other"
)

// ErrOverlap is returned when a name is listed in more than one category.
var ErrOverlap = errors.New("taxonomy: name listed in multiple categories")

// Taxonomy is an immutable name-to-label classification table.
type Taxonomy struct {
	byName map[string]Label
}

// Build constructs a Taxonomy from the three category name lists. The
// lists must be pairwise disjoint; a name appearing in two categories is
// a configuration error, not something to resolve silently. Duplicates
// within a single list are tolerated.
func Build(agents, documents, code []string) (*Taxonomy, error) {
	byName := make(map[string]Label, len(agents)+len(documents)+len(code))
	categories := []struct {
		label Label
		names []string
	}{
		{Agent, agents},
		{Document, documents},
		{Code, code},
	}
	for _, cat := range categories {
		for _, name := range cat.names {
			if prev, ok := byName[name]; ok && prev != cat.label {
				return nil, fmt.Errorf("%w: %q is both %s and %s", ErrOverlap, name, prev, cat.label)
			}
			byName[name] = cat.label
		}
	}
	return &Taxonomy{byName: byName}, nil
}

// Lookup returns the label for name. Total: names absent from every
// category list classify as Other, the expected common case. Safe on a
// nil Taxonomy.
func (t *Taxonomy) Lookup(name string) Label {
	if t == nil {
		return Other
	}
	if label, ok := t.byName[name]; ok {
		return label
	}
	return Other
}

// Len returns the number of explicitly classified names.
func (t *Taxonomy) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byName)
}

// Names returns every explicitly classified name in sorted order.
func (t *Taxonomy) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
