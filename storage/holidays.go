// Package storage persists the local holiday calendar backing the
// salary hours split.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02"

var ErrHolidayNotFound = errors.New("holiday not found")

// Holiday is one paid holiday entry.
type Holiday struct {
	Date time.Time
	Name string
}

// HolidayStore is a sqlite-backed holiday calendar. It satisfies
// salary.Calendar.
type HolidayStore struct {
	db *sql.DB
}

// OpenHolidays opens (and bootstraps) the holiday database at path.
func OpenHolidays(path string) (*HolidayStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open holidays db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping holidays db: %w", err)
	}

	store := &HolidayStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *HolidayStore) Close() error {
	return s.db.Close()
}

func (s *HolidayStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS holidays (
	day TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT ''
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create holidays schema: %w", err)
	}
	return nil
}

// Add inserts or replaces a holiday for the date.
func (s *HolidayStore) Add(date time.Time, name string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO holidays (day, name) VALUES (?, ?);`,
		date.Format(dateLayout),
		name,
	)
	if err != nil {
		return fmt.Errorf("insert holiday: %w", err)
	}
	return nil
}

// Remove deletes the holiday for the date; ErrHolidayNotFound when the
// date was not stored.
func (s *HolidayStore) Remove(date time.Time) error {
	result, err := s.db.Exec(`DELETE FROM holidays WHERE day = ?;`, date.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}
	if affected == 0 {
		return ErrHolidayNotFound
	}
	return nil
}

// IsHoliday reports whether the date is stored as a holiday.
func (s *HolidayStore) IsHoliday(date time.Time) (bool, error) {
	var one int
	err := s.db.QueryRow(
		`SELECT 1 FROM holidays WHERE day = ?;`,
		date.Format(dateLayout),
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query holiday: %w", err)
	}
	return true, nil
}

// List returns the stored holidays for a year in date order.
func (s *HolidayStore) List(year int) ([]Holiday, error) {
	rows, err := s.db.Query(
		`SELECT day, name FROM holidays WHERE day LIKE ? ORDER BY day;`,
		fmt.Sprintf("%04d-%%", year),
	)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	defer rows.Close()

	holidays := make([]Holiday, 0, 16)
	for rows.Next() {
		var (
			day  string
			name string
		)
		if err := rows.Scan(&day, &name); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		date, err := time.ParseInLocation(dateLayout, day, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse holiday date %q: %w", day, err)
		}
		holidays = append(holidays, Holiday{Date: date, Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holidays: %w", err)
	}

	return holidays, nil
}
