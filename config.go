package ontotag

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brunobiangulo/ontotag/taxonomy"
)

// Config holds all configuration for an annotation run.
type Config struct {
	// OntologyPath is the ontology document to annotate.
	OntologyPath string `json:"ontology_path" yaml:"ontology_path"`

	// OutputPath is where the annotated graph is written. Empty means
	// rewrite the source in place, which is how the tool normally runs.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Taxonomy selects the name lists used for classification.
	Taxonomy TaxonomyConfig `json:"taxonomy" yaml:"taxonomy"`
}

// TaxonomyConfig selects a taxonomy source. Path wins over the inline
// lists; with neither set, the built-in software-engineering taxonomy
// is used.
type TaxonomyConfig struct {
	// Path points at a YAML, JSON, or XLSX taxonomy definition.
	Path string `json:"path" yaml:"path"`

	Agents    []string `json:"agents" yaml:"agents"`
	Documents []string `json:"documents" yaml:"documents"`
	Code      []string `json:"code" yaml:"code"`
	Other     []string `json:"other" yaml:"other"`
}

// DefaultConfig returns a Config that annotates
// ontologies/software-engineering/ontology.json in place with the
// built-in taxonomy.
func DefaultConfig() Config {
	return Config{
		OntologyPath: "ontologies/software-engineering/ontology.json",
	}
}

// LoadConfig reads a YAML (or JSON) config file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate checks the config for values that cannot work.
func (c *Config) Validate() error {
	if c.OntologyPath == "" {
		return fmt.Errorf("%w: ontology_path is required", ErrInvalidConfig)
	}
	return nil
}

// build resolves the configured taxonomy source into a table.
func (tc TaxonomyConfig) build() (*taxonomy.Taxonomy, error) {
	if tc.Path != "" {
		return taxonomy.LoadFile(tc.Path)
	}
	if len(tc.Agents)+len(tc.Documents)+len(tc.Code)+len(tc.Other) > 0 {
		f := taxonomy.File{
			Agents:    tc.Agents,
			Documents: tc.Documents,
			Code:      tc.Code,
			Other:     tc.Other,
		}
		return f.Build()
	}
	return taxonomy.Default(), nil
}
