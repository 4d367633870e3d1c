package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/brunobiangulo/ontotag/ontology"
	"github.com/brunobiangulo/ontotag/taxonomy"
)

func annotatedGraph(t *testing.T) ontology.Graph {
	t.Helper()
	g, err := ontology.Decode([]byte(`[
		{"source": {"name": "Engineer"}, "target": {"name": "Requirement"}, "type": {"name": "writes"}},
		{"source": {"name": "Engineer"}, "target": {"name": "Budget"}}
	]`))
	if err != nil {
		t.Fatalf("decoding graph: %v", err)
	}
	tax, err := taxonomy.Build([]string{"Engineer"}, []string{"Requirement"}, nil)
	if err != nil {
		t.Fatalf("building taxonomy: %v", err)
	}
	ontology.Annotate(g, tax)
	return g
}

func writeTestReport(t *testing.T) *excelize.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteXLSX(path, annotatedGraph(t)); err != nil {
		t.Fatalf("writing report: %v", err)
	}
	wb, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening report: %v", err)
	}
	t.Cleanup(func() { wb.Close() })
	return wb
}

func TestWriteXLSXSheets(t *testing.T) {
	wb := writeTestReport(t)

	want := []string{sheetSummary, sheetEntities, sheetRelations, sheetUnclassified}
	got := wb.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheet list = %v, want %v", got, want)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("sheet %d = %q, want %q", i, got[i], name)
		}
	}
}

func TestSummarySheet(t *testing.T) {
	wb := writeTestReport(t)

	rows, err := wb.GetRows(sheetSummary)
	if err != nil {
		t.Fatalf("reading summary: %v", err)
	}
	// Header plus one row per label.
	if len(rows) != 5 {
		t.Fatalf("expected 5 summary rows, got %d", len(rows))
	}
	if rows[0][0] != "Label" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	// Agent: 1 entity, 2 occurrences (Engineer appears twice as source).
	if rows[1][0] != "Agent" || rows[1][1] != "1" || rows[1][2] != "2" {
		t.Fatalf("unexpected Agent row: %v", rows[1])
	}
	// Other: Budget.
	if rows[4][0] != "Other" || rows[4][1] != "1" {
		t.Fatalf("unexpected Other row: %v", rows[4])
	}
}

func TestEntitiesSheetSorted(t *testing.T) {
	wb := writeTestReport(t)

	rows, err := wb.GetRows(sheetEntities)
	if err != nil {
		t.Fatalf("reading entities: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 entities, got %d rows", len(rows))
	}
	wantNames := []string{"Budget", "Engineer", "Requirement"}
	for i, name := range wantNames {
		if rows[i+1][0] != name {
			t.Errorf("entity row %d = %q, want %q", i, rows[i+1][0], name)
		}
	}
	if rows[2][1] != "Agent" || rows[2][2] != "2" {
		t.Fatalf("unexpected Engineer row: %v", rows[2])
	}
}

func TestRelationsSheetInDocumentOrder(t *testing.T) {
	wb := writeTestReport(t)

	rows, err := wb.GetRows(sheetRelations)
	if err != nil {
		t.Fatalf("reading relations: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 relations, got %d rows", len(rows))
	}
	if rows[1][2] != "writes" || rows[1][3] != "Requirement" {
		t.Fatalf("unexpected first relation: %v", rows[1])
	}
	if rows[2][3] != "Budget" || rows[2][4] != "Other" {
		t.Fatalf("unexpected second relation: %v", rows[2])
	}
}

func TestUnclassifiedSheet(t *testing.T) {
	wb := writeTestReport(t)

	rows, err := wb.GetRows(sheetUnclassified)
	if err != nil {
		t.Fatalf("reading unclassified: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 unclassified entity, got %d rows", len(rows))
	}
	if rows[1][0] != "Budget" || rows[1][1] != "1" {
		t.Fatalf("unexpected unclassified row: %v", rows[1])
	}
}
