// Package output renders classified monthly schedules as text reports.
package output

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"stpsched/schedule"
)

// Stats aggregates a month's classified days.
type Stats struct {
	WorkDays     int
	WorkHours    float64
	DaysOff      int
	VacationDays int
	SickDays     int
	MissingDays  int
}

// Summarize counts days and paid hours per category.
func Summarize(days []schedule.DayEntry) Stats {
	var stats Stats
	for _, day := range days {
		switch day.Category {
		case schedule.CategoryWork:
			stats.WorkDays++
			stats.WorkHours += day.WorkHours
		case schedule.CategoryDayOff:
			stats.DaysOff++
		case schedule.CategoryVacation:
			stats.VacationDays++
		case schedule.CategorySick:
			stats.SickDays++
		case schedule.CategoryMissing:
			stats.MissingDays++
		}
	}
	return stats
}

// FormatCompact renders the date-range-grouped summary: one line per
// distinct work-schedule string, then one summary line per non-work
// bucket that has any days.
func FormatCompact(monthTitle string, days []schedule.DayEntry) string {
	lines := []string{"Мой график • " + monthTitle, ""}

	buckets := splitByCategory(days)

	if work := buckets[schedule.CategoryWork]; len(work) > 0 {
		lines = append(lines, "Рабочие:")
		lines = append(lines, groupWorkDays(work)...)
	}
	if vacation := buckets[schedule.CategoryVacation]; len(vacation) > 0 {
		lines = append(lines, "", "Отпуск: "+FormatDayRange(labels(vacation)))
	}
	if sick := buckets[schedule.CategorySick]; len(sick) > 0 {
		lines = append(lines, "", "БЛ: "+FormatDayRange(labels(sick)))
	}
	if missing := buckets[schedule.CategoryMissing]; len(missing) > 0 {
		lines = append(lines, "", "Отсутствия: "+FormatDayRange(labels(missing)))
	}
	if off := buckets[schedule.CategoryDayOff]; len(off) > 0 {
		lines = append(lines, "", "Выходные: "+dayOffList(off))
	}

	return strings.Join(lines, "\n")
}

// FormatDetailed renders one line per day in day-number order plus an
// aggregate statistics block.
func FormatDetailed(monthTitle string, days []schedule.DayEntry) string {
	ordered := make([]schedule.DayEntry, len(days))
	copy(ordered, days)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DayNumber() < ordered[j].DayNumber()
	})

	lines := []string{"Мой график • " + monthTitle, "", "Расписание по дням:"}

	for _, day := range ordered {
		switch day.Category {
		case schedule.CategoryWork:
			if day.WorkHours > 0 {
				lines = append(lines, fmt.Sprintf("%s: %s (%dч)", day.Day, day.Value, roundHours(day.WorkHours)))
			} else {
				lines = append(lines, fmt.Sprintf("%s: %s", day.Day, day.Value))
			}
		case schedule.CategoryDayOff:
			lines = append(lines, day.Day+": Выходной")
		case schedule.CategoryVacation:
			lines = append(lines, day.Day+": Отпуск")
		case schedule.CategorySick:
			lines = append(lines, day.Day+": Больничный")
		case schedule.CategoryMissing:
			lines = append(lines, day.Day+": Отсутствие")
		}
	}

	stats := Summarize(days)
	lines = append(lines, "", "Статистика:")
	lines = append(lines, fmt.Sprintf("Рабочих дней: %d", stats.WorkDays))
	if stats.WorkHours > 0 {
		lines = append(lines, fmt.Sprintf("Рабочих часов: %dч", roundHours(stats.WorkHours)))
	}
	lines = append(lines, fmt.Sprintf("Выходных: %d", stats.DaysOff))
	if stats.VacationDays > 0 {
		lines = append(lines, fmt.Sprintf("Отпуск: %d дн.", stats.VacationDays))
	}
	if stats.SickDays > 0 {
		lines = append(lines, fmt.Sprintf("БЛ: %d дн.", stats.SickDays))
	}
	if stats.MissingDays > 0 {
		lines = append(lines, fmt.Sprintf("Отсутствий: %d дн.", stats.MissingDays))
	}

	return strings.Join(lines, "\n")
}

// groupWorkDays merges work days sharing the same raw schedule string
// into "5-7 → 09:00-18:00" lines, ordered by first appearance.
func groupWorkDays(work []schedule.DayEntry) []string {
	order := make([]string, 0, len(work))
	groups := make(map[string][]int, len(work))

	for _, day := range work {
		if _, seen := groups[day.Value]; !seen {
			order = append(order, day.Value)
		}
		groups[day.Value] = append(groups[day.Value], day.DayNumber())
	}

	lines := make([]string, 0, len(order))
	for _, value := range order {
		lines = append(lines, FormatConsecutiveDays(groups[value])+" → "+value)
	}
	return lines
}

// dayOffList keeps short day-off lists verbatim and collapses longer
// ones into ranges.
func dayOffList(off []schedule.DayEntry) string {
	if len(off) <= 3 {
		numbers := make([]string, 0, len(off))
		for _, day := range off {
			fields := strings.Fields(day.Day)
			if len(fields) > 0 {
				numbers = append(numbers, fields[0])
			}
		}
		return strings.Join(numbers, ", ")
	}
	return FormatDayRange(labels(off))
}

func splitByCategory(days []schedule.DayEntry) map[schedule.Category][]schedule.DayEntry {
	buckets := make(map[schedule.Category][]schedule.DayEntry, 5)
	for _, day := range days {
		buckets[day.Category] = append(buckets[day.Category], day)
	}
	return buckets
}

func labels(days []schedule.DayEntry) []string {
	out := make([]string, 0, len(days))
	for _, day := range days {
		out = append(out, day.Day)
	}
	return out
}

func roundHours(hours float64) int {
	return int(math.Round(hours))
}
