package scoring

import (
	"fmt"
	"time"
)

type Period string

const (
	Week    Period = "week"
	Month   Period = "month"
	AllTime Period = "all"
)

const (
	weekCap    = 7
	allTimeCap = 60
)

func ParsePeriod(name string) (Period, error) {
	switch Period(name) {
	case Week, Month, AllTime:
		return Period(name), nil
	case "":
		return AllTime, nil
	default:
		return "", fmt.Errorf("unknown period %q", name)
	}
}

// DaysTrackedCap returns the days-tracked ceiling of the composite ranking for
// a period. now is read in its own location.
func DaysTrackedCap(period Period, now time.Time) int {
	switch period {
	case Week:
		return weekCap
	case Month:
		return daysInMonth(now.Year(), now.Month())
	default:
		return allTimeCap
	}
}

// PeriodRange returns the inclusive local date range of a period ending today.
func PeriodRange(period Period, now time.Time) (start, end string) {
	end = ToLocalDateString(now)
	switch period {
	case Week:
		start = ToLocalDateString(now.AddDate(0, 0, -(weekCap - 1)))
	case Month:
		start = fmt.Sprintf("%04d-%02d-01", now.Year(), int(now.Month()))
	default:
		start = ToLocalDateString(now.AddDate(0, 0, -(allTimeCap - 1)))
	}
	return start, end
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
