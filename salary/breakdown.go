// Package salary splits a month's worked hours into the four pay
// classes the payroll calculation consumes: regular, night, holiday and
// night-holiday hours. The multipliers themselves are payroll policy
// and stay with the caller.
package salary

import (
	"time"

	"stpsched/schedule"
)

// Calendar answers whether a calendar date is a paid holiday. The
// production calendar lives outside this engine; storage.HolidayStore is
// the local adapter.
type Calendar interface {
	IsHoliday(date time.Time) (bool, error)
}

// DayBreakdown is one work day's hours split across pay classes.
// Exactly two of the four buckets are ever non-zero: regular/night for
// ordinary days, holiday/night-holiday for holidays.
type DayBreakdown struct {
	Day          string
	Date         time.Time
	Regular      float64
	Night        float64
	Holiday      float64
	NightHoliday float64
}

// Totals sums the pay classes over a month.
type Totals struct {
	Regular      float64
	Night        float64
	Holiday      float64
	NightHoliday float64
}

// Breakdown computes the per-day pay-class split for the classified
// month. Non-work days contribute nothing. A calendar lookup failure
// downgrades the day to a non-holiday rather than failing the month.
func Breakdown(days []schedule.DayEntry, year int, month schedule.Month, calendar Calendar) []DayBreakdown {
	breakdowns := make([]DayBreakdown, 0, len(days))

	for _, day := range days {
		if day.Category != schedule.CategoryWork || day.WorkHours <= 0 {
			continue
		}

		breakdown := DayBreakdown{Day: day.Day}

		dayNumber := day.DayNumber()
		if dayNumber >= 1 && dayNumber <= 31 {
			breakdown.Date = time.Date(year, time.Month(month), dayNumber, 0, 0, 0, 0, time.Local)
		}

		holiday := false
		if calendar != nil && !breakdown.Date.IsZero() {
			if isHoliday, err := calendar.IsHoliday(breakdown.Date); err == nil {
				holiday = isHoliday
			}
		}

		dayHours := day.WorkHours - day.NightHours
		if dayHours < 0 {
			dayHours = 0
		}

		if holiday {
			breakdown.Holiday = dayHours
			breakdown.NightHoliday = day.NightHours
		} else {
			breakdown.Regular = dayHours
			breakdown.Night = day.NightHours
		}

		breakdowns = append(breakdowns, breakdown)
	}

	return breakdowns
}

// Sum aggregates day breakdowns into month totals.
func Sum(breakdowns []DayBreakdown) Totals {
	var totals Totals
	for _, b := range breakdowns {
		totals.Regular += b.Regular
		totals.Night += b.Night
		totals.Holiday += b.Holiday
		totals.NightHoliday += b.NightHoliday
	}
	return totals
}
