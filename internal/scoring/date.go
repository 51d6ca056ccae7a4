package scoring

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ToLocalDateString formats the calendar date of t in t's own location.
// It never converts to UTC first, so late-evening local times keep their date.
func ToLocalDateString(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseLocalDate parses a YYYY-MM-DD string into midnight of that date in loc.
func ParseLocalDate(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse local date %q: %w", date, err)
	}

	return t, nil
}

// weekday is computed from the calendar fields alone, so it does not depend on
// any timezone or DST rule.
func weekday(date string) (time.Weekday, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, false
	}
	return t.Weekday(), true
}

func IsFriday(date string) bool {
	day, ok := weekday(date)
	return ok && day == time.Friday
}

func ValidDate(date string) bool {
	_, ok := weekday(date)
	return ok
}

// AddDays shifts a YYYY-MM-DD string by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("failed to parse date %q: %w", date, err)
	}
	return ToLocalDateString(t.AddDate(0, 0, n)), nil
}
