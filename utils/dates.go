package utils

import (
	"strings"
	"time"
)

// DateLayout is the calendar-day format used as the logical key for
// completions and check-ins. It is a local day, not a timestamp.
const DateLayout = "2006-01-02"

// DayKey returns the YYYY-MM-DD key for a point in time.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekdayName returns the lower-cased English weekday name ("monday").
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// SameDay reports calendar-date equality, ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
