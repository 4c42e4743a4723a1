package sheets

import (
	"fmt"
	"sort"
	"strings"

	"stpsched/internal/classify"
	"stpsched/internal/timeutil"
	"stpsched/output"
	"stpsched/schedule"
)

// blankValue is what an empty cell reads as in the extracted schedule.
const blankValue = "Не указано"

// Service is the stable entry point of the schedule engine: it composes
// file location, sheet reading, layout discovery, classification and
// formatting for one (employee, month, division, roster) query.
type Service struct {
	locator *Locator
	cache   *gridCache
}

// NewService creates a service over the uploads directory.
func NewService(uploadsDir string) *Service {
	return &Service{
		locator: NewLocator(uploadsDir),
		cache:   newGridCache(),
	}
}

// Locator exposes file lookup for diagnostics.
func (s *Service) Locator() *Locator {
	return s.locator
}

// UserSchedule extracts the raw (day label, cell value) pairs for the
// employee and month, ordered by sheet column. Failures keep their
// typed cause: schedule.ErrFileNotFound, ErrParseFailure,
// ErrMonthNotFound or ErrUserNotFound.
func (s *Service) UserSchedule(fullName, month, division string, roster schedule.RosterType) ([]schedule.DayValue, error) {
	path, err := s.locator.Find(division, roster)
	if err != nil {
		return nil, err
	}

	grid, err := s.cache.read(path, roster)
	if err != nil {
		return nil, err
	}

	startCol, endCol, err := FindMonthRange(grid, month)
	if err != nil {
		return nil, err
	}

	headers := FindDayHeaders(grid, startCol, endCol)
	if len(headers) == 0 {
		return nil, fmt.Errorf("no day headers for %q in %s: %w", month, path, schedule.ErrMonthNotFound)
	}

	row, err := FindEmployeeRow(grid, fullName)
	if err != nil {
		return nil, err
	}

	columns := make([]int, 0, len(headers))
	for col := range headers {
		columns = append(columns, col)
	}
	sort.Ints(columns)

	days := make([]schedule.DayValue, 0, len(columns))
	for _, col := range columns {
		value := grid.Value(row, col)
		if value == "" || strings.EqualFold(value, "nan") || strings.EqualFold(value, "none") {
			value = blankValue
		}
		days = append(days, schedule.DayValue{Day: headers[col], Value: value})
	}

	return days, nil
}

// ClassifiedSchedule runs the raw extraction through the category
// classifier and shift-hours calculator.
func (s *Service) ClassifiedSchedule(fullName, month, division string, roster schedule.RosterType) ([]schedule.DayEntry, error) {
	raw, err := s.UserSchedule(fullName, month, division, roster)
	if err != nil {
		return nil, err
	}
	return Classify(raw), nil
}

// Classify turns raw day values into classified entries. Hours are
// computed only for work days; a work value without a parseable time
// range keeps zero hours rather than failing the report.
func Classify(raw []schedule.DayValue) []schedule.DayEntry {
	entries := make([]schedule.DayEntry, 0, len(raw))
	for _, day := range raw {
		entry := schedule.DayEntry{
			Day:      day.Day,
			Value:    day.Value,
			Category: classify.Day(day.Value),
		}
		if entry.Category == schedule.CategoryWork {
			entry.WorkHours = timeutil.WorkHours(day.Value)
			entry.NightHours = timeutil.NightHours(day.Value)
		}
		entries = append(entries, entry)
	}
	return entries
}

// FormattedSchedule returns the compact or detailed text report for the
// query. Lower-layer failures propagate typed; rendering them for the
// user is the caller's concern.
func (s *Service) FormattedSchedule(fullName, month, division string, compact bool, roster schedule.RosterType) (string, error) {
	entries, err := s.ClassifiedSchedule(fullName, month, division, roster)
	if err != nil {
		return "", err
	}

	title := monthTitle(month)
	if compact {
		return output.FormatCompact(title, entries), nil
	}
	return output.FormatDetailed(title, entries), nil
}

func monthTitle(month string) string {
	if m, ok := schedule.LookupMonth(month); ok {
		return m.Title()
	}
	runes := []rune(strings.ToLower(strings.TrimSpace(month)))
	if len(runes) == 0 {
		return ""
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
