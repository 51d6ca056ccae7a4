package scoring

type Breakdown struct {
	NotPrayed int `json:"not_prayed"`
	Qaza      int `json:"qaza"`
	Home      int `json:"home"`
	Masjid    int `json:"masjid"`
}

func (b *Breakdown) add(status PrayerStatus) {
	switch status {
	case NotPrayed:
		b.NotPrayed++
	case Qaza:
		b.Qaza++
	case Home:
		b.Home++
	case Masjid:
		b.Masjid++
	}
}

func (b *Breakdown) merge(other Breakdown) {
	b.NotPrayed += other.NotPrayed
	b.Qaza += other.Qaza
	b.Home += other.Home
	b.Masjid += other.Masjid
}

type FridayStats struct {
	TotalFridays int     `json:"total_fridays"`
	Recited      int     `json:"recited"`
	Missed       int     `json:"missed"`
	Consistency  float64 `json:"consistency"`
}

// PeriodStats aggregates complete days only. Streaks are the exception and
// look at every day in the range.
type PeriodStats struct {
	TotalDays        int         `json:"total_days"`
	TotalScore       float64     `json:"total_score"`
	TotalPrayers     int         `json:"total_prayers"`
	PrayerBreakdown  Breakdown   `json:"prayer_breakdown"`
	AverageScore     float64     `json:"average_score"`
	Consistency      float64     `json:"consistency"`
	MasjidPercentage float64     `json:"masjid_percentage"`
	CurrentStreak    int         `json:"current_streak"`
	BestStreak       int         `json:"best_streak"`
	Friday           FridayStats `json:"friday"`
}

// accumulator folds classified days in ascending date order.
type accumulator struct {
	stats   PeriodStats
	running int
}

func (a *accumulator) add(c DayClassification) {
	if c.StreakEligible() {
		a.running++
		a.stats.BestStreak = max(a.stats.BestStreak, a.running)
	} else {
		a.running = 0
	}

	if !c.IsComplete {
		return
	}

	a.stats.TotalDays++
	a.stats.TotalScore += c.DayScore
	a.stats.TotalPrayers += c.MarkedCount
	a.stats.PrayerBreakdown.merge(c.Breakdown)

	if c.IsFriday && c.FridayActivity.Valid() {
		a.stats.Friday.TotalFridays++
		if c.FridayActivity == Recited {
			a.stats.Friday.Recited++
		} else {
			a.stats.Friday.Missed++
		}
	}
}

// snapshot derives the ratio fields. currentStreak is supplied by the caller.
func (a accumulator) snapshot(currentStreak int) PeriodStats {
	stats := a.stats
	stats.CurrentStreak = currentStreak

	if stats.TotalDays > 0 {
		stats.AverageScore = stats.TotalScore / float64(stats.TotalDays)
	}

	if stats.TotalPrayers > 0 {
		total := float64(stats.TotalPrayers)
		stats.Consistency = float64(stats.TotalPrayers-stats.PrayerBreakdown.NotPrayed) / total * 100
		stats.MasjidPercentage = float64(stats.PrayerBreakdown.Masjid) / total * 100
	}

	if stats.Friday.TotalFridays > 0 {
		stats.Friday.Consistency = float64(stats.Friday.Recited) / float64(stats.Friday.TotalFridays) * 100
	}

	return stats
}

// CalculatePeriodStats aggregates records in ascending date order. today is the
// caller's local date (YYYY-MM-DD); an unfinished today does not break the
// current streak.
func CalculatePeriodStats(records DayRecords, mode ScoringMode, today string) PeriodStats {
	dates := records.SortedDates()
	classified := make([]DayClassification, len(dates))

	var acc accumulator
	for i, date := range dates {
		classified[i] = ClassifyDay(date, records[date], mode)
		acc.add(classified[i])
	}

	return acc.snapshot(currentStreak(dates, classified, today))
}

func currentStreak(dates []string, classified []DayClassification, today string) int {
	streak := 0
	for i := len(dates) - 1; i >= 0; i-- {
		if i == len(dates)-1 && dates[i] == today && classified[i].MarkedCount < PrayersPerDay {
			continue
		}

		if !classified[i].StreakEligible() {
			break
		}
		streak++
	}
	return streak
}
