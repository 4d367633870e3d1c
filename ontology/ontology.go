// Package ontology loads, annotates, and persists a relational
// ontology stored as a JSON array of relation records. Each relation
// carries a source and a target entity reference plus arbitrary other
// fields; the annotator only ever rewrites the two entity type fields
// and leaves everything else byte-identical.
package ontology

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/brunobiangulo/ontotag/taxonomy"
)

var (
	// ErrRead is returned when the ontology source cannot be read.
	// Nothing has been mutated when it surfaces.
	ErrRead = errors.New("ontology: source unreadable")

	// ErrMalformed is returned when the document does not parse into
	// the expected relation sequence. Nothing has been mutated.
	ErrMalformed = errors.New("ontology: malformed graph")

	// ErrWrite is returned when the destination cannot be written. The
	// destination may be left truncated; the run is not transactional.
	ErrWrite = errors.New("ontology: destination unwritable")
)

// Entity is one endpoint of a relation: a name used as the taxonomy
// lookup key, the type label stamped by annotation, and any other
// fields the record carried, preserved verbatim.
type Entity struct {
	Name string
	Type taxonomy.Label

	fields Object
}

// UnmarshalJSON requires a "name" string field; a "type" field is
// optional on input since annotation overwrites it anyway.
func (e *Entity) UnmarshalJSON(data []byte) error {
	if err := e.fields.UnmarshalJSON(data); err != nil {
		return err
	}
	raw, ok := e.fields.Get("name")
	if !ok {
		return errors.New(`missing "name"`)
	}
	if err := json.Unmarshal(raw, &e.Name); err != nil {
		return fmt.Errorf(`field "name": %w`, err)
	}
	if raw, ok := e.fields.Get("type"); ok {
		// A malformed incoming type is not fatal: annotation
		// overwrites it regardless.
		var label string
		if err := json.Unmarshal(raw, &label); err == nil {
			e.Type = taxonomy.Label(label)
		}
	}
	return nil
}

// MarshalJSON re-emits the entity's incoming fields with "type"
// replaced by the current label. An entity that arrived without a type
// gains one as its last field.
func (e *Entity) MarshalJSON() ([]byte, error) {
	if _, ok := e.fields.Get("name"); !ok {
		name, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		e.fields.Set("name", name)
	}
	label, err := json.Marshal(string(e.Type))
	if err != nil {
		return nil, err
	}
	e.fields.Set("type", label)
	return json.Marshal(e.fields)
}

// Relation is one edge of the graph: source and target entity
// references plus arbitrary passthrough fields.
type Relation struct {
	Source Entity
	Target Entity

	fields Object
}

// UnmarshalJSON requires "source" and "target" sub-records.
func (r *Relation) UnmarshalJSON(data []byte) error {
	if err := r.fields.UnmarshalJSON(data); err != nil {
		return err
	}
	raw, ok := r.fields.Get("source")
	if !ok {
		return errors.New(`missing "source"`)
	}
	if err := json.Unmarshal(raw, &r.Source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	raw, ok = r.fields.Get("target")
	if !ok {
		return errors.New(`missing "target"`)
	}
	if err := json.Unmarshal(raw, &r.Target); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	return nil
}

// MarshalJSON re-emits the relation with source and target refreshed
// and every other field untouched.
func (r *Relation) MarshalJSON() ([]byte, error) {
	src, err := json.Marshal(&r.Source)
	if err != nil {
		return nil, err
	}
	r.fields.Set("source", src)
	tgt, err := json.Marshal(&r.Target)
	if err != nil {
		return nil, err
	}
	r.fields.Set("target", tgt)
	return json.Marshal(r.fields)
}

// Label returns the relation's own type name when the record carries
// one, either as a {"type": {"name": ...}} sub-object or as a plain
// "type"/"label" string. Returns "" when absent.
func (r *Relation) Label() string {
	raw, ok := r.fields.Get("type")
	if !ok {
		raw, ok = r.fields.Get("label")
		if !ok {
			return ""
		}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Name
	}
	return ""
}

// Field returns the raw bytes of an arbitrary relation field.
func (r *Relation) Field(key string) (json.RawMessage, bool) {
	return r.fields.Get(key)
}

// Graph is the ordered sequence of relations making up one ontology.
// The annotator never reorders, drops, or adds relations.
type Graph []Relation

// Load reads and parses the ontology document at path.
func Load(path string) (Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Decode(data)
}

// Decode parses a JSON document into the relation sequence. Errors name
// the failing relation index and field so an operator can fix the input
// by hand.
func Decode(data []byte) (Graph, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: document is not a relation array: %v", ErrMalformed, err)
	}
	g := make(Graph, len(raws))
	for i, raw := range raws {
		if err := json.Unmarshal(raw, &g[i]); err != nil {
			return nil, fmt.Errorf("%w: relation %d: %v", ErrMalformed, i, err)
		}
	}
	return g, nil
}

// Save writes the graph to path in the same shape it is read in: a
// two-space-indented JSON array. The write is not transactional; a
// failure partway can leave the destination truncated.
func Save(g Graph, path string) error {
	data, err := Encode(g)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// Encode renders the graph as two-space-indented JSON.
func Encode(g Graph) ([]byte, error) {
	if g == nil {
		g = Graph{}
	}
	return json.MarshalIndent(g, "", "  ")
}
