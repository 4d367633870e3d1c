// Package report renders an annotated ontology as an XLSX workbook.
// The Unclassified sheet is the one operators actually read: it lists
// the names that fell through to Other, which is where taxonomy growth
// starts.
package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/brunobiangulo/ontotag/ontology"
	"github.com/brunobiangulo/ontotag/taxonomy"
)

const (
	sheetSummary      = "Summary"
	sheetEntities     = "Entities"
	sheetRelations    = "Relations"
	sheetUnclassified = "Unclassified"
)

type entityRow struct {
	name   string
	label  taxonomy.Label
	degree int
}

// WriteXLSX writes the workbook for an annotated graph to path.
func WriteXLSX(path string, g ontology.Graph) error {
	wb := excelize.NewFile()
	defer wb.Close()

	entities := collectEntities(g)

	if err := writeSummary(wb, entities); err != nil {
		return err
	}
	if err := writeEntities(wb, entities); err != nil {
		return err
	}
	if err := writeRelations(wb, g); err != nil {
		return err
	}
	if err := writeUnclassified(wb, entities); err != nil {
		return err
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("saving report workbook: %w", err)
	}
	return nil
}

// collectEntities aggregates distinct entities with their degree,
// sorted by name.
func collectEntities(g ontology.Graph) []entityRow {
	byName := make(map[string]*entityRow)
	for i := range g {
		for _, e := range []*ontology.Entity{&g[i].Source, &g[i].Target} {
			row, ok := byName[e.Name]
			if !ok {
				row = &entityRow{name: e.Name, label: e.Type}
				byName[e.Name] = row
			}
			row.degree++
		}
	}

	rows := make([]entityRow, 0, len(byName))
	for _, row := range byName {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })
	return rows
}

func writeSummary(wb *excelize.File, entities []entityRow) error {
	// The default sheet becomes Summary so the workbook opens on it.
	if err := wb.SetSheetName(wb.GetSheetName(0), sheetSummary); err != nil {
		return fmt.Errorf("naming summary sheet: %w", err)
	}

	counts := make(map[taxonomy.Label]int)
	degrees := make(map[taxonomy.Label]int)
	for _, e := range entities {
		counts[e.label]++
		degrees[e.label] += e.degree
	}

	if err := wb.SetSheetRow(sheetSummary, "A1",
		&[]any{"Label", "Entities", "Occurrences"}); err != nil {
		return err
	}
	for i, label := range []taxonomy.Label{taxonomy.Agent, taxonomy.Document, taxonomy.Code, taxonomy.Other} {
		cell := fmt.Sprintf("A%d", i+2)
		if err := wb.SetSheetRow(sheetSummary, cell,
			&[]any{string(label), counts[label], degrees[label]}); err != nil {
			return err
		}
	}
	return nil
}

func writeEntities(wb *excelize.File, entities []entityRow) error {
	if _, err := wb.NewSheet(sheetEntities); err != nil {
		return fmt.Errorf("creating entities sheet: %w", err)
	}
	if err := wb.SetSheetRow(sheetEntities, "A1",
		&[]any{"Name", "Type", "Degree"}); err != nil {
		return err
	}
	for i, e := range entities {
		cell := fmt.Sprintf("A%d", i+2)
		if err := wb.SetSheetRow(sheetEntities, cell,
			&[]any{e.name, string(e.label), e.degree}); err != nil {
			return err
		}
	}
	return nil
}

func writeRelations(wb *excelize.File, g ontology.Graph) error {
	if _, err := wb.NewSheet(sheetRelations); err != nil {
		return fmt.Errorf("creating relations sheet: %w", err)
	}
	if err := wb.SetSheetRow(sheetRelations, "A1",
		&[]any{"Source", "Source Type", "Relation", "Target", "Target Type"}); err != nil {
		return err
	}
	for i := range g {
		cell := fmt.Sprintf("A%d", i+2)
		if err := wb.SetSheetRow(sheetRelations, cell, &[]any{
			g[i].Source.Name, string(g[i].Source.Type),
			g[i].Label(),
			g[i].Target.Name, string(g[i].Target.Type),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeUnclassified(wb *excelize.File, entities []entityRow) error {
	if _, err := wb.NewSheet(sheetUnclassified); err != nil {
		return fmt.Errorf("creating unclassified sheet: %w", err)
	}
	if err := wb.SetSheetRow(sheetUnclassified, "A1",
		&[]any{"Name", "Degree"}); err != nil {
		return err
	}
	row := 2
	for _, e := range entities {
		if e.label != taxonomy.Other {
			continue
		}
		cell := fmt.Sprintf("A%d", row)
		if err := wb.SetSheetRow(sheetUnclassified, cell,
			&[]any{e.name, e.degree}); err != nil {
			return err
		}
		row++
	}
	return nil
}
