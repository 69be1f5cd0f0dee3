package domain

import (
	"fmt"
	"time"
)

// DayLayout is the layout of ledger date keys.
const DayLayout = "2006-01-02"

// DayKey formats t as a calendar date in loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DayLayout)
}

// ParseDay parses a ledger date key.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", day, err)
	}
	return t, nil
}

// ShiftDay returns the date key n calendar days after day (n may be negative).
func ShiftDay(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DayLayout), nil
}

// LastDays returns n date keys ending at today, newest first.
func LastDays(today string, n int) ([]string, error) {
	t, err := ParseDay(today)
	if err != nil {
		return nil, err
	}
	days := make([]string, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, t.AddDate(0, 0, -i).Format(DayLayout))
	}
	return days, nil
}
