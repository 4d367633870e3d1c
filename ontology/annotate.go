package ontology

import "github.com/brunobiangulo/ontotag/taxonomy"

// Stats summarises one annotation pass. ByLabel counts endpoint
// occurrences, so its values sum to twice the relation count.
type Stats struct {
	Relations int                    `json:"relations"`
	Entities  int                    `json:"entities"`
	ByLabel   map[taxonomy.Label]int `json:"by_label"`
}

// Annotate stamps a taxonomy label onto every source and target entity,
// in place. Lookup is total, so the pass cannot fail, and every other
// field of every relation is left untouched. Running it again with the
// same taxonomy changes nothing.
func Annotate(g Graph, t *taxonomy.Taxonomy) Stats {
	stats := Stats{
		Relations: len(g),
		ByLabel:   make(map[taxonomy.Label]int),
	}
	seen := make(map[string]struct{})
	for i := range g {
		for _, e := range []*Entity{&g[i].Source, &g[i].Target} {
			e.Type = t.Lookup(e.Name)
			stats.ByLabel[e.Type]++
			seen[e.Name] = struct{}{}
		}
	}
	stats.Entities = len(seen)
	return stats
}
