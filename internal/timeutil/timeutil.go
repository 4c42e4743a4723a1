// Package timeutil implements shift-interval arithmetic for schedule
// cell values of the form "HH:MM-HH:MM".
package timeutil

import (
	"math"
	"regexp"
	"strconv"
)

var shiftPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})-(\d{1,2}):(\d{2})`)

const (
	minutesPerDay = 24 * 60

	// Night window per the pay regulations: 22:00 through 06:00.
	nightStartMinute = 22 * 60
	nightEndMinute   = 30 * 60 // 06:00 next day on the wrapped timeline

	// Shifts of 8 hours and longer include one unpaid lunch hour.
	lunchThresholdMinutes = 8 * 60
	lunchBreakMinutes     = 60
)

// Shift is a work interval in minutes from midnight of the shift's
// calendar day. End exceeds 24h for shifts crossing midnight.
type Shift struct {
	Start int
	End   int
}

// ParseShift extracts the first HH:MM-HH:MM range from a raw cell value.
// An end time earlier than the start is read as crossing midnight.
func ParseShift(raw string) (Shift, bool) {
	match := shiftPattern.FindStringSubmatch(raw)
	if match == nil {
		return Shift{}, false
	}

	startHour, _ := strconv.Atoi(match[1])
	startMin, _ := strconv.Atoi(match[2])
	endHour, _ := strconv.Atoi(match[3])
	endMin, _ := strconv.Atoi(match[4])

	shift := Shift{
		Start: startHour*60 + startMin,
		End:   endHour*60 + endMin,
	}
	if shift.End < shift.Start {
		shift.End += minutesPerDay
	}
	return shift, true
}

// CrossesMidnight reports whether the shift ends on the next calendar day.
func (s Shift) CrossesMidnight() bool {
	return s.End > minutesPerDay
}

// RawHours is the elapsed shift length before any lunch deduction.
func (s Shift) RawHours() float64 {
	return float64(s.End-s.Start) / 60
}

// WorkHours is the paid shift length: elapsed time minus one lunch hour
// for shifts of 8 hours and longer, rounded to one decimal.
func (s Shift) WorkHours() float64 {
	minutes := s.End - s.Start
	if minutes >= lunchThresholdMinutes {
		minutes -= lunchBreakMinutes
	}
	return round1(float64(minutes) / 60)
}

// NightHours is the paid portion of the shift falling inside the
// 22:00-06:00 window. The lunch deduction is not attributable to a
// particular time of day, so night minutes are scaled by the same
// paid/elapsed ratio as the whole shift.
func (s Shift) NightHours() float64 {
	nightMinutes := 0
	for _, base := range []int{-minutesPerDay, 0, minutesPerDay} {
		nightMinutes += overlap(s.Start, s.End, nightStartMinute+base, nightEndMinute+base)
	}
	if nightMinutes == 0 {
		return 0
	}

	raw := s.RawHours()
	if raw <= 0 {
		return 0
	}
	return round1(float64(nightMinutes) / 60 * (s.WorkHours() / raw))
}

func overlap(aStart, aEnd, bStart, bEnd int) int {
	start := max(aStart, bStart)
	end := min(aEnd, bEnd)
	if end <= start {
		return 0
	}
	return end - start
}

// WorkHours computes paid hours straight from a raw cell value,
// returning 0 when the value holds no time range.
func WorkHours(raw string) float64 {
	shift, ok := ParseShift(raw)
	if !ok {
		return 0
	}
	return shift.WorkHours()
}

// NightHours computes paid night hours straight from a raw cell value,
// returning 0 when the value holds no time range.
func NightHours(raw string) float64 {
	shift, ok := ParseShift(raw)
	if !ok {
		return 0
	}
	return shift.NightHours()
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
