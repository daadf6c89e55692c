package utils

import (
	"time"
)

// DateKeyLayout is the ISO calendar date format used to key daily logs.
const DateKeyLayout = "2006-01-02"

// DateKey formats t as a UTC-normalized YYYY-MM-DD key.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateKeyLayout)
}

// TodayKey returns the date key for the current instant.
func TodayKey() string {
	return DateKey(time.Now())
}

// ShiftDateKey moves a date key by the given number of days.
func ShiftDateKey(dateKey string, days int) (string, error) {
	t, err := time.Parse(DateKeyLayout, dateKey)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(DateKeyLayout), nil
}

// PreviousDayKey returns the key for the day before dateKey.
func PreviousDayKey(dateKey string) (string, error) {
	return ShiftDateKey(dateKey, -1)
}

// ValidDateKey reports whether s parses as a date key.
func ValidDateKey(s string) bool {
	_, err := time.Parse(DateKeyLayout, s)
	return err == nil
}
