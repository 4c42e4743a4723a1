package classify

import (
	"testing"

	"stpsched/schedule"
)

func TestDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  schedule.Category
	}{
		{name: "empty cell", input: "", want: schedule.CategoryDayOff},
		{name: "whitespace only", input: "   ", want: schedule.CategoryDayOff},
		{name: "day-off letter", input: "В", want: schedule.CategoryDayOff},
		{name: "day-off letter lowercase", input: "в", want: schedule.CategoryDayOff},
		{name: "not specified marker", input: "Не указано", want: schedule.CategoryDayOff},
		{name: "nan leftover", input: "nan", want: schedule.CategoryDayOff},
		{name: "vacation", input: "ОТПУСК", want: schedule.CategoryVacation},
		{name: "vacation lowercase with dates", input: "отпуск 01.06-14.06", want: schedule.CategoryVacation},
		{name: "vacation beats time range", input: "ОТПУСК с 10:00", want: schedule.CategoryVacation},
		{name: "absence letter", input: "Н", want: schedule.CategoryMissing},
		{name: "absence letter inside sick code", input: "ЛНТС", want: schedule.CategoryMissing},
		{name: "day shift", input: "09:00-18:00", want: schedule.CategoryWork},
		{name: "night shift", input: "22:00-06:00", want: schedule.CategoryWork},
		{name: "bare dash range", input: "8-20", want: schedule.CategoryWork},
		{name: "unrecognized defaults to work", input: "СТАЖИРОВКА", want: schedule.CategoryWork},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Day(tc.input); got != tc.want {
				t.Fatalf("Day(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
