package sheets

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"stpsched/schedule"
)

const (
	// Month and day labels live somewhere in the top rows of the
	// human-authored sheets; five rows covers every layout seen so far.
	headerScanRows = 5
	// Employee names sit in the leftmost columns.
	nameScanCols = 3
)

// dayHeaderPattern matches "1Пт", "2Сб" and similar day-number plus
// weekday-abbreviation labels.
var dayHeaderPattern = regexp.MustCompile(`(\d{1,2})([А-Яа-я]{1,2})`)

// FindMonthRange locates the inclusive column range holding the given
// month's days. The start is the first cell containing the normalized
// month name; the range ends right before the first occurrence of any
// other month, or at the last column.
func FindMonthRange(grid Grid, month string) (int, int, error) {
	normalized := schedule.NormalizeMonth(month)

	startCol := -1
	for row := 0; row < min(headerScanRows, grid.Rows()) && startCol < 0; row++ {
		for col := 0; col < grid.Cols(); col++ {
			if strings.Contains(strings.ToUpper(grid.Value(row, col)), normalized) {
				startCol = col
				break
			}
		}
	}
	if startCol < 0 {
		return 0, 0, fmt.Errorf("month %q: %w", normalized, schedule.ErrMonthNotFound)
	}

	endCol := grid.Cols() - 1
	for col := startCol + 1; col < grid.Cols(); col++ {
		if columnStartsOtherMonth(grid, col, normalized) {
			endCol = col - 1
			break
		}
	}

	return startCol, endCol, nil
}

func columnStartsOtherMonth(grid Grid, col int, currentMonth string) bool {
	for row := 0; row < min(headerScanRows, grid.Rows()); row++ {
		upper := strings.ToUpper(grid.Value(row, col))
		if upper == "" {
			continue
		}
		for _, other := range schedule.Months() {
			if name := other.String(); name != currentMonth && strings.Contains(upper, name) {
				return true
			}
		}
	}
	return false
}

// FindDayHeaders maps column index to day label within the month range.
// Several header rows may each label different columns; a later match
// for an already-labelled column overwrites the earlier one.
func FindDayHeaders(grid Grid, startCol, endCol int) map[int]string {
	headers := make(map[int]string)

	for row := 0; row < min(headerScanRows, grid.Rows()); row++ {
		for col := startCol; col <= endCol; col++ {
			value := grid.Value(row, col)
			if value == "" {
				continue
			}

			if match := dayHeaderPattern.FindStringSubmatch(value); match != nil {
				headers[col] = match[1] + " (" + match[2] + ")"
				continue
			}
			if day, err := strconv.Atoi(value); err == nil && day >= 1 && day <= 31 {
				headers[col] = strconv.Itoa(day)
			}
		}
	}

	return headers
}

// FindEmployeeRow returns the first row whose name-bearing columns
// contain the full name as an exact substring. The data source enforces
// no uniqueness; first match wins.
func FindEmployeeRow(grid Grid, fullName string) (int, error) {
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < min(nameScanCols, grid.Cols()); col++ {
			if strings.Contains(grid.Value(row, col), fullName) {
				return row, nil
			}
		}
	}
	return 0, fmt.Errorf("employee %q: %w", fullName, schedule.ErrUserNotFound)
}
