package salary

import (
	"errors"
	"testing"
	"time"

	"stpsched/schedule"
)

// fakeCalendar marks a fixed set of days as holidays and can simulate a
// failing backend.
type fakeCalendar struct {
	holidays map[string]bool
	err      error
}

func (c fakeCalendar) IsHoliday(date time.Time) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	return c.holidays[date.Format("2006-01-02")], nil
}

func workDay(day string, workHours, nightHours float64) schedule.DayEntry {
	return schedule.DayEntry{
		Day:        day,
		Category:   schedule.CategoryWork,
		WorkHours:  workHours,
		NightHours: nightHours,
	}
}

func TestBreakdownSplitsHolidayAndRegular(t *testing.T) {
	t.Parallel()

	days := []schedule.DayEntry{
		workDay("11 (Чт)", 8, 0),
		workDay("12 (Пт)", 7, 7),
		{Day: "13 (Сб)", Category: schedule.CategoryDayOff},
	}
	calendar := fakeCalendar{holidays: map[string]bool{"2026-06-12": true}}

	breakdowns := Breakdown(days, 2026, schedule.June, calendar)

	if len(breakdowns) != 2 {
		t.Fatalf("expected 2 work-day breakdowns, got %d: %v", len(breakdowns), breakdowns)
	}

	regular := breakdowns[0]
	if regular.Regular != 8 || regular.Night != 0 || regular.Holiday != 0 || regular.NightHoliday != 0 {
		t.Fatalf("unexpected regular day split: %+v", regular)
	}
	if regular.Date.Day() != 11 || regular.Date.Month() != time.June {
		t.Fatalf("unexpected date: %v", regular.Date)
	}

	holiday := breakdowns[1]
	if holiday.Holiday != 0 || holiday.NightHoliday != 7 || holiday.Regular != 0 || holiday.Night != 0 {
		t.Fatalf("unexpected holiday day split: %+v", holiday)
	}
}

func TestBreakdownDayAndNightShares(t *testing.T) {
	t.Parallel()

	// 11 paid hours of which 7.5 fall into the night window.
	days := []schedule.DayEntry{workDay("1", 11, 7.5)}

	breakdowns := Breakdown(days, 2026, schedule.June, fakeCalendar{})
	if len(breakdowns) != 1 {
		t.Fatalf("expected 1 breakdown, got %v", breakdowns)
	}
	if b := breakdowns[0]; b.Regular != 3.5 || b.Night != 7.5 {
		t.Fatalf("unexpected split: %+v", b)
	}
}

func TestBreakdownCalendarFailureMeansRegular(t *testing.T) {
	t.Parallel()

	days := []schedule.DayEntry{workDay("12", 8, 0)}
	calendar := fakeCalendar{err: errors.New("backend down")}

	breakdowns := Breakdown(days, 2026, schedule.June, calendar)
	if len(breakdowns) != 1 {
		t.Fatalf("expected 1 breakdown, got %v", breakdowns)
	}
	if b := breakdowns[0]; b.Regular != 8 || b.Holiday != 0 {
		t.Fatalf("calendar failure should fall back to regular hours: %+v", b)
	}
}

func TestBreakdownNilCalendar(t *testing.T) {
	t.Parallel()

	breakdowns := Breakdown([]schedule.DayEntry{workDay("5", 8, 0)}, 2026, schedule.June, nil)
	if len(breakdowns) != 1 || breakdowns[0].Regular != 8 {
		t.Fatalf("nil calendar should still produce regular hours: %v", breakdowns)
	}
}

func TestSum(t *testing.T) {
	t.Parallel()

	totals := Sum([]DayBreakdown{
		{Regular: 8},
		{Regular: 3.5, Night: 7.5},
		{Holiday: 1, NightHoliday: 7},
	})

	want := Totals{Regular: 11.5, Night: 7.5, Holiday: 1, NightHoliday: 7}
	if totals != want {
		t.Fatalf("Sum = %+v, want %+v", totals, want)
	}
}
