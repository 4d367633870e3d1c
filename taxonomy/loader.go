package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a taxonomy definition. YAML is a
// superset of JSON, so one decoder covers both formats.
type File struct {
	Agents    []string `json:"agents" yaml:"agents"`
	Documents []string `json:"documents" yaml:"documents"`
	Code      []string `json:"code" yaml:"code"`

	// Other pins names to the default label. They would classify as
	// Other anyway; listing them documents intent and lets Build catch
	// a name that later sneaks into a real category.
	Other []string `json:"other" yaml:"other"`
}

// LoadFile reads a taxonomy definition from a YAML, JSON, or XLSX file,
// chosen by extension.
func LoadFile(path string) (*Taxonomy, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return LoadWorkbook(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing taxonomy file: %w", err)
	}
	return f.Build()
}

// Build validates the file's name lists and constructs the taxonomy.
func (f *File) Build() (*Taxonomy, error) {
	t, err := Build(f.Agents, f.Documents, f.Code)
	if err != nil {
		return nil, err
	}
	for _, name := range f.Other {
		if label := t.Lookup(name); label != Other {
			return nil, fmt.Errorf("%w: %q is both %s and %s", ErrOverlap, name, label, Other)
		}
	}
	return t, nil
}
