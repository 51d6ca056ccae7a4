package scoring

import "math"

// Weights of the period-level ranking composite.
const (
	rankAverageWeight     = 0.45
	rankConsistencyWeight = 0.20
	rankStreakWeight      = 0.10
	rankSpecialWeight     = 0.10
	rankDaysWeight        = 0.15
)

// Weights of the single-day composite used by the daily trend.
const (
	dayAverageWeight     = 0.50
	dayConsistencyWeight = 0.25
	dayStreakWeight      = 0.15
	dayMasjidWeight      = 0.10
)

// CalculateCompositeScore ranks a period on a 0-100 scale. daysTrackedCap is
// the number of tracked days that earns the full days sub-score and depends on
// the reporting period.
func CalculateCompositeScore(stats PeriodStats, daysTrackedCap int, mode ScoringMode) float64 {
	average := percentOf(stats.AverageScore, FridayMaxScore)
	consistency := clampPercent(stats.Consistency)
	streak := percentOf(float64(stats.CurrentStreak), StreakCap)
	special := clampPercent(mode.specialMetric(stats))
	days := percentOf(float64(stats.TotalDays), float64(daysTrackedCap))

	score := average*rankAverageWeight +
		consistency*rankConsistencyWeight +
		streak*rankStreakWeight +
		special*rankSpecialWeight +
		days*rankDaysWeight

	return round2(score)
}

// DayCompositeScore scores one complete day on a 0-100 scale from the day's own
// slots and the streak length reached on that day.
func DayCompositeScore(c DayClassification, streak int) float64 {
	dailyMax := float64(DailyMaxScore)
	if c.IsFriday {
		dailyMax = FridayMaxScore
	}

	var consistency, masjid float64
	if c.MarkedCount > 0 {
		marked := float64(c.MarkedCount)
		consistency = float64(c.MarkedCount-c.Breakdown.NotPrayed) / marked * 100
		masjid = float64(c.Breakdown.Masjid) / marked * 100
	}

	score := percentOf(c.DayScore, dailyMax)*dayAverageWeight +
		clampPercent(consistency)*dayConsistencyWeight +
		percentOf(float64(streak), StreakCap)*dayStreakWeight +
		clampPercent(masjid)*dayMasjidWeight

	return round2(score)
}

// percentOf normalizes value against ceiling and clamps to [0, 100].
// A non-positive ceiling yields zero.
func percentOf(value, ceiling float64) float64 {
	if ceiling <= 0 {
		return 0
	}
	return clampPercent(value / ceiling * 100)
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
