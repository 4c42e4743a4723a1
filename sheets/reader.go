package sheets

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"stpsched/schedule"
)

// sheetCandidates returns the ordered sheet names tried for a roster
// type. Headers are data here: rows are read raw, layout discovery
// happens later.
func sheetCandidates(roster schedule.RosterType) []string {
	switch roster {
	case schedule.RosterDuties:
		return []string{"ДЕЖУРСТВА", "Дежурства", "СТАРШИЕ", "Старшие", "ГРАФИК", "График", "Sheet1"}
	case schedule.RosterHeads:
		return []string{"РГ", "РУКОВОДИТЕЛИ", "Руководители", "ГРАФИК", "График", "Sheet1"}
	default:
		return []string{"ГРАФИК", "График", "график", "Sheet1"}
	}
}

// ReadGrid opens the spreadsheet and returns the first candidate sheet
// that yields any rows, falling back to the file's first sheet. Only
// when every candidate fails does the file count as unparseable.
func ReadGrid(path string, roster schedule.RosterType) (Grid, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return Grid{}, fmt.Errorf("open %s: %w", path, schedule.ErrParseFailure)
	}
	defer file.Close()

	names := sheetCandidates(roster)
	if first := file.GetSheetName(0); first != "" {
		names = append(names, first)
	}

	tried := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, done := tried[name]; done {
			continue
		}
		tried[name] = struct{}{}

		rows, err := file.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}
		return NewGrid(rows), nil
	}

	return Grid{}, fmt.Errorf("no readable sheet in %s: %w", path, schedule.ErrParseFailure)
}
