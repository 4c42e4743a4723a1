// Package schedule holds the domain model of the STP work-schedule
// engine: roster types, per-day categories and the error taxonomy shared
// by the ingestion and reporting layers.
package schedule

import (
	"errors"
	"strconv"
	"strings"
)

// RosterType selects which of the uploaded spreadsheet families a lookup
// targets. It drives both the filename patterns and the candidate sheet
// names tried by the reader.
type RosterType string

const (
	// RosterRegular is the individual shift schedule ("ГРАФИК").
	RosterRegular RosterType = "regular"
	// RosterDuties is the on-call / senior-duty rotation ("ДЕЖУРСТВА").
	RosterDuties RosterType = "duties"
	// RosterHeads is the group supervisors' schedule ("РГ").
	RosterHeads RosterType = "heads"
)

// ParseRosterType maps a user-supplied roster name to a RosterType.
func ParseRosterType(value string) (RosterType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "regular", "my":
		return RosterRegular, nil
	case "duties", "duty":
		return RosterDuties, nil
	case "heads", "head":
		return RosterHeads, nil
	default:
		return "", errors.New("unknown roster type: " + value + " (valid: regular, duties, heads)")
	}
}

// Category is the classification of a single day's cell value.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryDayOff   Category = "day_off"
	CategoryVacation Category = "vacation"
	CategorySick     Category = "sick"
	CategoryMissing  Category = "missing"
)

// DayValue is a raw (day label, cell value) pair extracted from a grid,
// ordered by column.
type DayValue struct {
	Day   string
	Value string
}

// DayEntry is one classified day of a monthly report.
type DayEntry struct {
	Day        string
	Value      string
	Category   Category
	WorkHours  float64
	NightHours float64
}

// DayNumber extracts the day-of-month number from the day label
// ("4 (Пн)" or "4"). Unparseable labels yield 0.
func (e DayEntry) DayNumber() int {
	return DayLabelNumber(e.Day)
}

// DayLabelNumber parses the leading day number out of a day label.
func DayLabelNumber(label string) int {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}

// Expected, recoverable lookup failures. Callers render different
// user-facing text for each, so the four conditions stay distinguishable
// via errors.Is.
var (
	ErrFileNotFound  = errors.New("schedule file not found")
	ErrParseFailure  = errors.New("no readable sheet in schedule file")
	ErrMonthNotFound = errors.New("month not found in schedule file")
	ErrUserNotFound  = errors.New("employee not found in schedule file")
)

// ShortName shortens a full "Фамилия Имя Отчество" to "Фамилия И.О.".
func ShortName(fullName string) string {
	parts := strings.Fields(strings.TrimSpace(fullName))
	switch {
	case len(parts) >= 3:
		return parts[0] + " " + firstLetter(parts[1]) + "." + firstLetter(parts[2]) + "."
	case len(parts) == 2:
		return parts[0] + " " + firstLetter(parts[1]) + "."
	default:
		return fullName
	}
}

func firstLetter(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// KnownDivision reports whether the division code belongs to one of the
// STP organizational units the schedule uploads cover.
func KnownDivision(division string) bool {
	upper := strings.ToUpper(division)
	return strings.Contains(upper, "НТП") || strings.Contains(upper, "НЦК")
}

// BaseDivision strips the numeric suffix off a division code
// ("НТП1" -> "НТП").
func BaseDivision(division string) string {
	if strings.Contains(strings.ToUpper(division), "НТП") {
		return "НТП"
	}
	return "НЦК"
}
