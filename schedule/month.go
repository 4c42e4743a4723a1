package schedule

import "strings"

// Month is a canonical calendar month. The zero value is invalid.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// monthNames holds the canonical uppercase Russian spellings, the form
// used inside the schedule spreadsheets themselves.
var monthNames = [...]string{
	"ЯНВАРЬ",
	"ФЕВРАЛЬ",
	"МАРТ",
	"АПРЕЛЬ",
	"МАЙ",
	"ИЮНЬ",
	"ИЮЛЬ",
	"АВГУСТ",
	"СЕНТЯБРЬ",
	"ОКТЯБРЬ",
	"НОЯБРЬ",
	"ДЕКАБРЬ",
}

// monthSpellings maps every accepted lowercase spelling to its month.
var monthSpellings = map[string]Month{
	"январь":    January,
	"jan":       January,
	"january":   January,
	"февраль":   February,
	"feb":       February,
	"february":  February,
	"март":      March,
	"mar":       March,
	"march":     March,
	"апрель":    April,
	"apr":       April,
	"april":     April,
	"май":       May,
	"may":       May,
	"июнь":      June,
	"jun":       June,
	"june":      June,
	"июль":      July,
	"jul":       July,
	"july":      July,
	"август":    August,
	"aug":       August,
	"august":    August,
	"сентябрь":  September,
	"sep":       September,
	"september": September,
	"октябрь":   October,
	"oct":       October,
	"october":   October,
	"ноябрь":    November,
	"nov":       November,
	"november":  November,
	"декабрь":   December,
	"dec":       December,
}

// String returns the canonical uppercase Russian name.
func (m Month) String() string {
	if m < January || m > December {
		return ""
	}
	return monthNames[m-1]
}

// Title returns the name capitalized for report headers ("Июнь").
func (m Month) Title() string {
	name := m.String()
	if name == "" {
		return ""
	}
	runes := []rune(strings.ToLower(name))
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

// Prev returns the previous month, or the month itself for January.
// Navigation is truncated at the year boundary, not cyclic: the same
// month coming back signals "no further navigation" to the caller.
func (m Month) Prev() Month {
	if m <= January || m > December {
		return m
	}
	return m - 1
}

// Next returns the next month, or the month itself for December.
func (m Month) Next() Month {
	if m < January || m >= December {
		return m
	}
	return m + 1
}

// LookupMonth resolves any accepted spelling (Russian full name, English
// full name or 3-letter abbreviation, any case) to its Month.
func LookupMonth(name string) (Month, bool) {
	m, ok := monthSpellings[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// NormalizeMonth returns the canonical uppercase name for any accepted
// spelling. Unknown input comes back uppercased as-is: the legacy
// behavior the grid scan relies on, kept so that a sheet using an
// unanticipated label can still be matched verbatim.
func NormalizeMonth(name string) string {
	if m, ok := LookupMonth(name); ok {
		return m.String()
	}
	return strings.ToUpper(strings.TrimSpace(name))
}

// Months returns all twelve months in calendar order.
func Months() []Month {
	months := make([]Month, 0, 12)
	for m := January; m <= December; m++ {
		months = append(months, m)
	}
	return months
}
