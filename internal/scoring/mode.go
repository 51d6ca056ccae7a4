package scoring

import (
	"errors"
	"fmt"
)

var ErrUnknownMode = errors.New("unknown scoring mode")

// ScoringMode selects the per-prayer score table and the metric used for the
// special sub-score of the composite ranking.
type ScoringMode struct {
	name    string
	table   map[PrayerStatus]float64
	special func(stats PeriodStats) float64
}

var Standard = ScoringMode{
	name: "standard",
	table: map[PrayerStatus]float64{
		NotPrayed: 0,
		Qaza:      0.5,
		Home:      1,
		Masjid:    27,
	},
	special: func(stats PeriodStats) float64 {
		return stats.MasjidPercentage
	},
}

// HomeOptimized rewards prayers at home almost as much as in congregation.
var HomeOptimized = ScoringMode{
	name: "home",
	table: map[PrayerStatus]float64{
		NotPrayed: 0,
		Qaza:      13,
		Home:      27,
		Masjid:    27,
	},
	special: func(stats PeriodStats) float64 {
		if stats.Friday.TotalFridays > 0 {
			return stats.Friday.Consistency
		}
		return stats.Consistency
	},
}

func (m ScoringMode) String() string {
	return m.name
}

// Score returns the score of a status, zero for anything that is not a valid status.
func (m ScoringMode) Score(status PrayerStatus) float64 {
	if m.table == nil {
		return Standard.table[status]
	}
	return m.table[status]
}

func (m ScoringMode) specialMetric(stats PeriodStats) float64 {
	if m.special == nil {
		return Standard.special(stats)
	}
	return m.special(stats)
}

func ParseScoringMode(name string) (ScoringMode, error) {
	switch name {
	case "", Standard.name:
		return Standard, nil
	case HomeOptimized.name, "masjid":
		return HomeOptimized, nil
	default:
		return ScoringMode{}, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}
