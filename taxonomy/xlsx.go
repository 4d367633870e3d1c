package taxonomy

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadWorkbook reads taxonomy name lists from an XLSX workbook with one
// sheet per category ("Agents", "Documents", "Code", optionally
// "Other"; matched case-insensitively). Names come from the first
// column; a leading "Name" header row is skipped and unrelated sheets
// are ignored.
func LoadWorkbook(path string) (*Taxonomy, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening taxonomy workbook: %w", err)
	}
	defer wb.Close()

	var f File
	found := false
	for _, sheet := range wb.GetSheetList() {
		var dst *[]string
		switch strings.ToLower(sheet) {
		case "agents":
			dst = &f.Agents
		case "documents":
			dst = &f.Documents
		case "code":
			dst = &f.Code
		case "other":
			dst = &f.Other
		default:
			continue
		}
		found = true

		rows, err := wb.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}
		for i, row := range rows {
			if len(row) == 0 {
				continue
			}
			name := strings.TrimSpace(row[0])
			if name == "" {
				continue
			}
			if i == 0 && strings.EqualFold(name, "name") {
				continue
			}
			*dst = append(*dst, name)
		}
	}
	if !found {
		return nil, fmt.Errorf("no taxonomy sheets found in %s", path)
	}
	return f.Build()
}
