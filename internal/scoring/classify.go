package scoring

type DayClassification struct {
	IsComplete  bool    `json:"is_complete"`
	DayScore    float64 `json:"day_score"`
	MarkedCount int     `json:"marked_count"`
	// AllMarkedAreGood is true only when all five prayers are marked and none
	// of them is not_prayed or qaza.
	AllMarkedAreGood bool `json:"all_marked_are_good"`
	IsFriday         bool `json:"is_friday"`
	// FridayActivity is empty unless the day is a Friday with a valid mark.
	FridayActivity FridayActivityStatus `json:"friday_activity,omitempty"`
	Breakdown      Breakdown            `json:"breakdown"`
}

// StreakEligible ignores the Friday activity: streaks depend on the five
// prayers only.
func (c DayClassification) StreakEligible() bool {
	return c.AllMarkedAreGood && c.MarkedCount == PrayersPerDay
}

func ClassifyDay(date string, record DayRecord, mode ScoringMode) DayClassification {
	c := DayClassification{
		AllMarkedAreGood: true,
		IsFriday:         IsFriday(date),
	}

	for _, prayer := range PrayerTypes {
		status := record.Status(prayer)
		if !status.Valid() {
			c.AllMarkedAreGood = false
			continue
		}

		c.DayScore += mode.Score(status)
		c.MarkedCount++
		c.Breakdown.add(status)
		if status == NotPrayed || status == Qaza {
			c.AllMarkedAreGood = false
		}
	}

	c.IsComplete = c.MarkedCount == PrayersPerDay
	if c.IsFriday {
		if record.SurahAlKahf.Valid() {
			c.FridayActivity = record.SurahAlKahf
			c.DayScore += record.SurahAlKahf.Score()
		} else {
			c.IsComplete = false
		}
	}

	return c
}

// CalculateDayScore returns false when there is no record for the date at all,
// which is different from a record scoring zero.
func CalculateDayScore(record *DayRecord, date string, mode ScoringMode) (float64, bool) {
	if record == nil {
		return 0, false
	}
	return ClassifyDay(date, *record, mode).DayScore, true
}
