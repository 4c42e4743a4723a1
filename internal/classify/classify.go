// Package classify maps raw schedule cell values to day categories.
package classify

import (
	"strings"

	"stpsched/schedule"
)

// dayOffMarkers are cell values that mean "no shift scheduled": empty
// cells, the roster's day-off letter, and the literal leftovers earlier
// tooling exports wrote into blank cells.
var dayOffMarkers = map[string]struct{}{
	"":           {},
	"В":          {},
	"НЕ УКАЗАНО": {},
	"NAN":        {},
	"NONE":       {},
}

const (
	vacationMarker = "ОТПУСК"
	absenceMarker  = "Н"
	sickMarker     = "ЛНТС"
)

// Day categorizes a single raw cell value. The function is total:
// anything not matching a marker falls through to CategoryWork, which
// keeps one malformed cell from failing a whole report.
//
// Precedence is fixed: blank, vacation, unexplained absence, sick leave,
// then the time-range catch-all. The absence check is a bare
// single-letter substring test inherited from the roster notation
// ("Н" alone in a cell), so it also fires inside longer values such as
// the sick-leave code; see DESIGN.md.
func Day(raw string) schedule.Category {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))

	if _, off := dayOffMarkers[cleaned]; off {
		return schedule.CategoryDayOff
	}
	if strings.Contains(cleaned, vacationMarker) {
		return schedule.CategoryVacation
	}
	if strings.Contains(cleaned, absenceMarker) {
		return schedule.CategoryMissing
	}
	if strings.Contains(cleaned, sickMarker) {
		return schedule.CategorySick
	}

	// Time ranges and anything unrecognized count as work.
	return schedule.CategoryWork
}
