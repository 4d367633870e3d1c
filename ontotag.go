// Package ontotag annotates a relational ontology with coarse entity
// type labels. It loads a JSON document holding an ordered sequence of
// relation records, stamps Agent/Document/Code/Other onto every source
// and target entity by name, and writes the document back otherwise
// unchanged.
package ontotag

import (
	"context"
	"log/slog"

	"github.com/brunobiangulo/ontotag/ontology"
	"github.com/brunobiangulo/ontotag/taxonomy"
)

// Annotator runs the classify-and-annotate pass over one ontology
// document: load, stamp types, persist. Each run is idempotent given
// the same taxonomy and input.
type Annotator struct {
	cfg    Config
	tax    *taxonomy.Taxonomy
	logger *slog.Logger
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Annotator) { a.logger = l }
}

// WithTaxonomy overrides the configured taxonomy source with a
// pre-built table.
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(a *Annotator) { a.tax = t }
}

// New validates cfg and resolves the taxonomy.
func New(cfg Config, opts ...Option) (*Annotator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Annotator{cfg: cfg, logger: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	if a.tax == nil {
		t, err := cfg.Taxonomy.build()
		if err != nil {
			return nil, err
		}
		a.tax = t
	}
	return a, nil
}

// Taxonomy returns the resolved classification table.
func (a *Annotator) Taxonomy() *taxonomy.Taxonomy {
	return a.tax
}

// Result reports a completed run.
type Result struct {
	Stats  ontology.Stats `json:"stats"`
	Output string         `json:"output"`
}

// Run executes one load, annotate, persist pass. Every failure aborts
// the run: read and parse failures leave the destination untouched; a
// write failure can leave it truncated. There are no retries.
func (a *Annotator) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g, err := ontology.Load(a.cfg.OntologyPath)
	if err != nil {
		return nil, err
	}
	a.logger.Info("loaded ontology",
		"path", a.cfg.OntologyPath,
		"relations", len(g))

	stats := ontology.Annotate(g, a.tax)
	a.logger.Debug("annotated graph",
		"entities", stats.Entities,
		"by_label", stats.ByLabel)

	out := a.cfg.OutputPath
	if out == "" {
		out = a.cfg.OntologyPath
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ontology.Save(g, out); err != nil {
		return nil, err
	}
	a.logger.Info("persisted annotated ontology", "path", out)

	return &Result{Stats: stats, Output: out}, nil
}
