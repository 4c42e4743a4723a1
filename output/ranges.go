package output

import (
	"sort"
	"strconv"
	"strings"

	"stpsched/schedule"
)

// FormatDayRange renders day labels as a compact comma-joined list of
// day numbers with contiguous runs collapsed ("5-7, 10"). Labels that
// carry no parseable day number are listed verbatim instead.
func FormatDayRange(labels []string) string {
	if len(labels) == 0 {
		return ""
	}

	numbers := make([]int, 0, len(labels))
	for _, label := range labels {
		if n := schedule.DayLabelNumber(label); n > 0 {
			numbers = append(numbers, n)
		}
	}
	if len(numbers) == 0 {
		trimmed := make([]string, 0, len(labels))
		for _, label := range labels {
			fields := strings.Fields(label)
			if len(fields) > 0 {
				trimmed = append(trimmed, fields[0])
			}
		}
		return strings.Join(trimmed, ", ")
	}

	return FormatConsecutiveDays(numbers)
}

// FormatConsecutiveDays collapses sorted distinct day numbers into range
// tokens: singletons as "a", runs as "a-b", joined with ", ".
func FormatConsecutiveDays(days []int) string {
	if len(days) == 0 {
		return ""
	}

	sorted := make([]int, len(days))
	copy(sorted, days)
	sort.Ints(sorted)

	tokens := make([]string, 0, len(sorted))
	start := sorted[0]
	end := start

	for _, day := range sorted[1:] {
		if day == end+1 {
			end = day
			continue
		}
		tokens = append(tokens, rangeToken(start, end))
		start, end = day, day
	}
	tokens = append(tokens, rangeToken(start, end))

	return strings.Join(tokens, ", ")
}

func rangeToken(start, end int) string {
	if start == end {
		return strconv.Itoa(start)
	}
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}
