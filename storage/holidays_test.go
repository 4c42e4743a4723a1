package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *HolidayStore {
	t.Helper()

	store, err := OpenHolidays(filepath.Join(t.TempDir(), "holidays.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func date(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}

func TestHolidayStoreAddAndLookup(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	day := date(t, "2026-06-12")

	if err := store.Add(day, "День России"); err != nil {
		t.Fatalf("add: %v", err)
	}

	found, err := store.IsHoliday(day)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !found {
		t.Fatalf("stored day should be a holiday")
	}

	found, err = store.IsHoliday(date(t, "2026-06-13"))
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found {
		t.Fatalf("unstored day should not be a holiday")
	}
}

func TestHolidayStoreAddReplacesName(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	day := date(t, "2026-01-01")

	if err := store.Add(day, "НГ"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Add(day, "Новый год"); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	holidays, err := store.List(2026)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(holidays) != 1 || holidays[0].Name != "Новый год" {
		t.Fatalf("expected single renamed holiday, got %v", holidays)
	}
}

func TestHolidayStoreListFiltersByYear(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	entries := []struct {
		day  string
		name string
	}{
		{day: "2026-06-12", name: "День России"},
		{day: "2026-01-01", name: "Новый год"},
		{day: "2025-12-31", name: "Канун"},
	}
	for _, entry := range entries {
		if err := store.Add(date(t, entry.day), entry.name); err != nil {
			t.Fatalf("add %s: %v", entry.day, err)
		}
	}

	holidays, err := store.List(2026)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(holidays) != 2 {
		t.Fatalf("expected 2 holidays in 2026, got %v", holidays)
	}
	if !holidays[0].Date.Before(holidays[1].Date) {
		t.Fatalf("holidays should be date-ordered: %v", holidays)
	}
	if holidays[0].Name != "Новый год" || holidays[1].Name != "День России" {
		t.Fatalf("unexpected listing: %v", holidays)
	}
}

func TestHolidayStoreRemove(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	day := date(t, "2026-05-01")

	if err := store.Add(day, "Праздник весны"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Remove(day); err != nil {
		t.Fatalf("remove: %v", err)
	}

	found, err := store.IsHoliday(day)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found {
		t.Fatalf("removed day should not be a holiday")
	}

	if err := store.Remove(day); !errors.Is(err, ErrHolidayNotFound) {
		t.Fatalf("expected ErrHolidayNotFound, got %v", err)
	}
}
