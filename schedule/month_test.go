package schedule

import "testing"

func TestNormalizeMonthSpellings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "russian lower", input: "июнь", want: "ИЮНЬ"},
		{name: "russian upper", input: "ИЮНЬ", want: "ИЮНЬ"},
		{name: "russian mixed", input: "Июнь", want: "ИЮНЬ"},
		{name: "english full", input: "june", want: "ИЮНЬ"},
		{name: "english abbreviation", input: "jun", want: "ИЮНЬ"},
		{name: "abbreviation upper", input: "DEC", want: "ДЕКАБРЬ"},
		{name: "january english", input: "January", want: "ЯНВАРЬ"},
		{name: "padded", input: "  март  ", want: "МАРТ"},
		{name: "unknown passthrough uppercased", input: "сметана", want: "СМЕТАНА"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeMonth(tc.input)
			if got != tc.want {
				t.Fatalf("NormalizeMonth(%q) = %q, want %q", tc.input, got, tc.want)
			}
			if again := NormalizeMonth(got); again != tc.want {
				t.Fatalf("NormalizeMonth not idempotent: %q -> %q -> %q", tc.input, got, again)
			}
		})
	}
}

func TestLookupMonthCoversAllSpellings(t *testing.T) {
	t.Parallel()

	for spelling, want := range monthSpellings {
		got, ok := LookupMonth(spelling)
		if !ok {
			t.Fatalf("LookupMonth(%q) missed", spelling)
		}
		if got != want {
			t.Fatalf("LookupMonth(%q) = %v, want %v", spelling, got, want)
		}
	}
}

func TestMonthNeighbors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		month    Month
		wantPrev Month
		wantNext Month
	}{
		{name: "middle of year", month: June, wantPrev: May, wantNext: July},
		{name: "january has no previous", month: January, wantPrev: January, wantNext: February},
		{name: "december has no next", month: December, wantPrev: November, wantNext: December},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.month.Prev(); got != tc.wantPrev {
				t.Fatalf("%v.Prev() = %v, want %v", tc.month, got, tc.wantPrev)
			}
			if got := tc.month.Next(); got != tc.wantNext {
				t.Fatalf("%v.Next() = %v, want %v", tc.month, got, tc.wantNext)
			}
		})
	}
}

func TestMonthsOrder(t *testing.T) {
	t.Parallel()

	months := Months()
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}
	if months[0] != January || months[11] != December {
		t.Fatalf("unexpected month order: first %v, last %v", months[0], months[11])
	}
	for i := 1; i < len(months); i++ {
		if months[i] != months[i-1]+1 {
			t.Fatalf("months out of order at index %d: %v after %v", i, months[i], months[i-1])
		}
	}
}

func TestMonthTitle(t *testing.T) {
	t.Parallel()

	if got := June.Title(); got != "Июнь" {
		t.Fatalf("June.Title() = %q, want %q", got, "Июнь")
	}
	if got := September.Title(); got != "Сентябрь" {
		t.Fatalf("September.Title() = %q, want %q", got, "Сентябрь")
	}
}
