package taxonomy

import (
	"errors"
	"sort"
	"testing"
)

func mustBuild(t *testing.T, agents, documents, code []string) *Taxonomy {
	t.Helper()
	tax, err := Build(agents, documents, code)
	if err != nil {
		t.Fatalf("building taxonomy: %v", err)
	}
	return tax
}

// ---------------------------------------------------------------------------
// Build
// ---------------------------------------------------------------------------

func TestBuildRejectsOverlap(t *testing.T) {
	_, err := Build([]string{"Engineer"}, []string{"Engineer"}, nil)
	if err == nil {
		t.Fatal("expected overlap error")
	}
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
}

func TestBuildRejectsOverlapAcrossAllPairs(t *testing.T) {
	cases := []struct {
		name                    string
		agents, documents, code []string
	}{
		{"agent-document", []string{"X"}, []string{"X"}, nil},
		{"agent-code", []string{"X"}, nil, []string{"X"}},
		{"document-code", nil, []string{"X"}, []string{"X"}},
	}
	for _, tc := range cases {
		if _, err := Build(tc.agents, tc.documents, tc.code); !errors.Is(err, ErrOverlap) {
			t.Errorf("%s: expected ErrOverlap, got %v", tc.name, err)
		}
	}
}

func TestBuildAllowsDuplicateWithinCategory(t *testing.T) {
	tax := mustBuild(t, []string{"Engineer", "Engineer"}, nil, nil)
	if got := tax.Lookup("Engineer"); got != Agent {
		t.Fatalf("expected Agent, got %s", got)
	}
	if tax.Len() != 1 {
		t.Fatalf("expected 1 classified name, got %d", tax.Len())
	}
}

// ---------------------------------------------------------------------------
// Lookup
// ---------------------------------------------------------------------------

func TestLookupClassifiesEachCategory(t *testing.T) {
	tax := mustBuild(t, []string{"Engineer"}, []string{"Requirement"}, []string{"Code"})

	cases := map[string]Label{
		"Engineer":    Agent,
		"Requirement": Document,
		"Code":        Code,
	}
	for name, want := range cases {
		if got := tax.Lookup(name); got != want {
			t.Errorf("Lookup(%q) = %s, want %s", name, got, want)
		}
	}
}

func TestLookupDefaultsToOther(t *testing.T) {
	tax := mustBuild(t, []string{"Engineer"}, nil, nil)

	// Absence from every list is the common case, not a failure.
	for _, name := range []string{"Budget", "Methodology", "", "engineer"} {
		if got := tax.Lookup(name); got != Other {
			t.Errorf("Lookup(%q) = %s, want Other", name, got)
		}
	}
}

func TestLookupNilTaxonomy(t *testing.T) {
	var tax *Taxonomy
	if got := tax.Lookup("anything"); got != Other {
		t.Fatalf("nil taxonomy Lookup = %s, want Other", got)
	}
	if tax.Len() != 0 {
		t.Fatalf("nil taxonomy Len = %d, want 0", tax.Len())
	}
	if tax.Names() != nil {
		t.Fatal("nil taxonomy Names should be nil")
	}
}

func TestLookupDeterministic(t *testing.T) {
	tax := mustBuild(t, []string{"Engineer"}, []string{"Requirement"}, nil)
	for i := 0; i < 100; i++ {
		if got := tax.Lookup("Engineer"); got != Agent {
			t.Fatalf("iteration %d: Lookup(Engineer) = %s", i, got)
		}
	}
}

// ---------------------------------------------------------------------------
// Accessors and defaults
// ---------------------------------------------------------------------------

func TestNamesSorted(t *testing.T) {
	tax := mustBuild(t, []string{"Zeta", "Alpha"}, []string{"Mid"}, nil)
	names := tax.Names()
	if len(names) != 3 {
		t.Fatalf("expected 3 names, got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
}

func TestDefaultTaxonomy(t *testing.T) {
	tax := Default()

	cases := map[string]Label{
		"Engineer":            Agent,
		"ProductManager":      Agent,
		"Requirement":         Document,
		"TestResult":          Document,
		"Code":                Code,
		"SourceFile":          Code,
		"SoftwareApplication": Other,
		"Methodology":         Other,
	}
	for name, want := range cases {
		if got := tax.Lookup(name); got != want {
			t.Errorf("Lookup(%q) = %s, want %s", name, got, want)
		}
	}

	want := len(DefaultAgents) + len(DefaultDocuments) + len(DefaultCode)
	if tax.Len() != want {
		t.Fatalf("expected %d classified names, got %d", want, tax.Len())
	}
}
