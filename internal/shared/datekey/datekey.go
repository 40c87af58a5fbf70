package datekey

import (
	"fmt"
	"time"
)

// Layout is the canonical date key format. Attendance records, expenses and
// calendar cells all join on this exact string, so it is always built from
// local calendar fields, never from a UTC-shifted instant.
const Layout = "2006-01-02"

// MonthLayout is the key format for month filters (reports).
const MonthLayout = "2006-01"

// ToKey formats t as a zero-padded YYYY-MM-DD key in t's own location.
func ToKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseKey is the inverse of ToKey. The result is midnight local time so
// that ToKey(ParseKey(s)) == s for every valid key.
func ParseKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", s, err)
	}
	return t, nil
}

// IsValid reports whether s is a well-formed date key.
func IsValid(s string) bool {
	_, err := ParseKey(s)
	return err == nil
}

// MonthKey formats t as a YYYY-MM key.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// MonthOfKey returns the YYYY-MM prefix of a date key.
func MonthOfKey(key string) string {
	if len(key) < len(MonthLayout) {
		return ""
	}
	return key[:len(MonthLayout)]
}

// ParseMonthKey parses a YYYY-MM key into the first day of that month,
// midnight local time.
func ParseMonthKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", s, err)
	}
	return t, nil
}

// Today returns the current local date as a key.
func Today() string {
	return ToKey(time.Now())
}
