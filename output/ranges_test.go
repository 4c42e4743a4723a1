package output

import (
	"strconv"
	"strings"
	"testing"
)

func TestFormatConsecutiveDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		days []int
		want string
	}{
		{name: "empty", days: nil, want: ""},
		{name: "singleton", days: []int{5}, want: "5"},
		{name: "run and singleton", days: []int{5, 6, 7, 10}, want: "5-7, 10"},
		{name: "unsorted input", days: []int{10, 6, 5, 7}, want: "5-7, 10"},
		{name: "two runs", days: []int{1, 2, 3, 8, 9, 10}, want: "1-3, 8-10"},
		{name: "all singletons", days: []int{2, 4, 6}, want: "2, 4, 6"},
		{name: "whole month", days: rangeInts(1, 31), want: "1-31"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatConsecutiveDays(tc.days); got != tc.want {
				t.Fatalf("FormatConsecutiveDays(%v) = %q, want %q", tc.days, got, tc.want)
			}
		})
	}
}

// TestFormatConsecutiveDaysRoundTrip expands the rendered tokens back
// into a set and checks it matches the input exactly.
func TestFormatConsecutiveDaysRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := [][]int{
		{5, 6, 7, 10},
		{1},
		{1, 3, 5, 7, 9, 11},
		{1, 2, 3, 4, 5, 28, 29, 30, 31},
		rangeInts(1, 31),
	}

	for _, days := range inputs {
		rendered := FormatConsecutiveDays(days)
		expanded := expandRanges(t, rendered)

		if len(expanded) != len(days) {
			t.Fatalf("round trip of %v via %q produced %v", days, rendered, expanded)
		}
		for i, day := range days {
			if expanded[i] != day {
				t.Fatalf("round trip of %v via %q produced %v", days, rendered, expanded)
			}
		}
	}
}

func TestFormatDayRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{name: "empty", labels: nil, want: ""},
		{name: "labelled days collapse", labels: []string{"5 (Пн)", "6 (Вт)", "7 (Ср)", "10 (Сб)"}, want: "5-7, 10"},
		{name: "bare numbers", labels: []string{"1", "2", "3"}, want: "1-3"},
		{name: "non-numeric fallback", labels: []string{"лето", "осень"}, want: "лето, осень"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatDayRange(tc.labels); got != tc.want {
				t.Fatalf("FormatDayRange(%v) = %q, want %q", tc.labels, got, tc.want)
			}
		})
	}
}

func rangeInts(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func expandRanges(t *testing.T, rendered string) []int {
	t.Helper()

	if rendered == "" {
		return nil
	}

	out := make([]int, 0, 31)
	for _, token := range strings.Split(rendered, ", ") {
		if from, to, found := strings.Cut(token, "-"); found {
			start, err := strconv.Atoi(from)
			if err != nil {
				t.Fatalf("bad range token %q", token)
			}
			end, err := strconv.Atoi(to)
			if err != nil {
				t.Fatalf("bad range token %q", token)
			}
			for i := start; i <= end; i++ {
				out = append(out, i)
			}
			continue
		}
		day, err := strconv.Atoi(token)
		if err != nil {
			t.Fatalf("bad token %q", token)
		}
		out = append(out, day)
	}
	return out
}
