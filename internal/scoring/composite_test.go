package scoring

import (
	"math"
	"testing"
)

func TestCalculateCompositeScore(t *testing.T) {
	table := []struct {
		name     string
		stats    PeriodStats
		cap      int
		mode     ScoringMode
		expected float64
	}{
		{
			name: "Standard/Near perfect period",
			stats: PeriodStats{
				AverageScore:     135,
				Consistency:      100,
				CurrentStreak:    30,
				MasjidPercentage: 100,
				TotalDays:        60,
			},
			cap:      60,
			mode:     Standard,
			expected: 96.90,
		},
		{
			name:     "Standard/Masjid percentage is the special metric",
			stats:    PeriodStats{Consistency: 80, MasjidPercentage: 40},
			cap:      7,
			mode:     Standard,
			expected: 20,
		},
		{
			name: "Home/Friday consistency is the special metric",
			stats: PeriodStats{
				Consistency: 80,
				Friday:      FridayStats{TotalFridays: 2, Recited: 1, Missed: 1, Consistency: 50},
			},
			cap:      7,
			mode:     HomeOptimized,
			expected: 21,
		},
		{
			name:     "Home/Falls back to consistency without Fridays",
			stats:    PeriodStats{Consistency: 80, MasjidPercentage: 40},
			cap:      7,
			mode:     HomeOptimized,
			expected: 24,
		},
		{
			name: "Clamped above",
			stats: PeriodStats{
				AverageScore:     1000,
				Consistency:      250,
				CurrentStreak:    400,
				MasjidPercentage: 300,
				TotalDays:        90,
			},
			cap:      7,
			mode:     Standard,
			expected: 100,
		},
		{
			name: "Clamped below",
			stats: PeriodStats{
				AverageScore:     -5,
				Consistency:      -10,
				CurrentStreak:    -1,
				MasjidPercentage: -3,
				TotalDays:        -2,
			},
			cap:      7,
			mode:     Standard,
			expected: 0,
		},
		{
			name:     "Zero cap disables the days component",
			stats:    PeriodStats{TotalDays: 10},
			cap:      0,
			mode:     Standard,
			expected: 0,
		},
		{
			name:     "Week cap",
			stats:    PeriodStats{TotalDays: 7},
			cap:      7,
			mode:     Standard,
			expected: 15,
		},
		{
			name:     "Average is normalized against the Friday maximum",
			stats:    PeriodStats{AverageScore: FridayMaxScore},
			cap:      7,
			mode:     Standard,
			expected: 45,
		},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			got := CalculateCompositeScore(v.stats, v.cap, v.mode)
			if math.Abs(got-v.expected) > 0.01 {
				t.Fatalf("expected composite %v, got %v", v.expected, got)
			}
		})
	}
}

func TestCompositeScoreBounds(t *testing.T) {
	values := []float64{-1e9, -1, 0, 0.5, 27, 99.99, 100, 145, 1e9, math.Inf(1), math.NaN()}
	caps := []int{-7, 0, 1, 7, 31, 60}

	for _, mode := range []ScoringMode{Standard, HomeOptimized} {
		for _, value := range values {
			for _, cap := range caps {
				stats := PeriodStats{
					TotalDays:        int(math.Min(math.Max(value, -1e6), 1e6)),
					AverageScore:     value,
					Consistency:      value,
					MasjidPercentage: value,
					CurrentStreak:    cap * 3,
					Friday:           FridayStats{TotalFridays: cap, Consistency: value},
				}

				got := CalculateCompositeScore(stats, cap, mode)
				if math.IsNaN(got) || got < 0 || got > 100 {
					t.Fatalf("composite out of bounds for value %v cap %d mode %s: %v", value, cap, mode, got)
				}
			}
		}
	}
}

func TestDayCompositeScore(t *testing.T) {
	table := []struct {
		name     string
		date     string
		record   DayRecord
		streak   int
		expected float64
	}{
		{
			name:     "All masjid, first day of streak",
			date:     thursday,
			record:   fullDay(Masjid),
			streak:   1,
			expected: 85.5,
		},
		{
			name:     "Friday with recitation uses the Friday maximum",
			date:     friday,
			record:   withFriday(fullDay(Masjid), Recited),
			streak:   30,
			expected: 100,
		},
		{
			name:     "All home in standard mode",
			date:     thursday,
			record:   fullDay(Home),
			streak:   0,
			expected: 26.85,
		},
		{
			name:     "Friday recited all home in standard mode",
			date:     friday,
			record:   withFriday(fullDay(Home), Recited),
			streak:   0,
			expected: 30.17,
		},
		{
			name:     "All not prayed",
			date:     thursday,
			record:   fullDay(NotPrayed),
			streak:   0,
			expected: 0,
		},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			c := ClassifyDay(v.date, v.record, Standard)
			got := DayCompositeScore(c, v.streak)
			if math.Abs(got-v.expected) > 0.01 {
				t.Fatalf("expected day composite %v, got %v", v.expected, got)
			}
		})
	}
}
