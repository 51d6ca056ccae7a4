package scoring

type TrendPoint struct {
	Date           string  `json:"date"`
	AverageScore   float64 `json:"average_score"`
	CompositeScore float64 `json:"composite_score"`
}

// BuildDailyTrend emits one point per complete day, scored on that day alone.
// Incomplete days produce no point but still reset the running streak.
func BuildDailyTrend(records DayRecords, mode ScoringMode) []TrendPoint {
	dates := records.SortedDates()
	points := make([]TrendPoint, 0, len(dates))

	running := 0
	for _, date := range dates {
		c := ClassifyDay(date, records[date], mode)
		if c.StreakEligible() {
			running++
		} else {
			running = 0
		}

		if !c.IsComplete {
			continue
		}

		points = append(points, TrendPoint{
			Date:           date,
			AverageScore:   c.DayScore,
			CompositeScore: DayCompositeScore(c, running),
		})
	}

	return points
}

// BuildCumulativeTrend emits one point per complete day, carrying the period
// average and ranking composite of everything from the first date up to and
// including that day.
func BuildCumulativeTrend(records DayRecords, mode ScoringMode, daysTrackedCap int) []TrendPoint {
	dates := records.SortedDates()
	points := make([]TrendPoint, 0, len(dates))

	var acc accumulator
	for _, date := range dates {
		c := ClassifyDay(date, records[date], mode)
		acc.add(c)
		if !c.IsComplete {
			continue
		}

		// The last day of the prefix is complete, so the descending current
		// streak scan equals the running count.
		stats := acc.snapshot(acc.running)
		points = append(points, TrendPoint{
			Date:           date,
			AverageScore:   round2(stats.AverageScore),
			CompositeScore: CalculateCompositeScore(stats, daysTrackedCap, mode),
		})
	}

	return points
}
