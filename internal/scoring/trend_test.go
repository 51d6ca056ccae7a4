package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// tenDays spans 2024-03-11 (Monday) to 2024-03-20 with two incomplete days.
func tenDays() DayRecords {
	records := DayRecords{}
	for day := 11; day <= 20; day++ {
		date, _ := AddDays("2024-03-11", day-11)
		records[date] = fullDay(Masjid)
	}

	records["2024-03-15"] = withFriday(fullDay(Masjid), Recited)
	records["2024-03-13"] = DayRecord{Fajr: Masjid, Dhuhr: Masjid}
	records["2024-03-18"] = DayRecord{Isha: Home}
	return records
}

func TestBuildDailyTrend(t *testing.T) {
	points := BuildDailyTrend(tenDays(), Standard)

	expectedDates := []string{
		"2024-03-11", "2024-03-12", "2024-03-14", "2024-03-15",
		"2024-03-16", "2024-03-17", "2024-03-19", "2024-03-20",
	}

	if len(points) != len(expectedDates) {
		t.Fatalf("expected %d points, got %d", len(expectedDates), len(points))
	}

	dates := make([]string, 0, len(points))
	for _, point := range points {
		dates = append(dates, point.Date)
	}

	if diff := cmp.Diff(expectedDates, dates); diff != "" {
		t.Error(diff)
	}

	// The streak restarts after 2024-03-13, so 2024-03-14 is day one again.
	expectedFirst := []TrendPoint{
		{Date: "2024-03-11", AverageScore: 135, CompositeScore: 85.5},
		{Date: "2024-03-12", AverageScore: 135, CompositeScore: 86},
		{Date: "2024-03-14", AverageScore: 135, CompositeScore: 85.5},
		{Date: "2024-03-15", AverageScore: 145, CompositeScore: 86},
	}

	if diff := cmp.Diff(expectedFirst, points[:4], cmpopts.EquateApprox(0, 0.01)); diff != "" {
		t.Error(diff)
	}
}

func TestBuildDailyTrendEmpty(t *testing.T) {
	points := BuildDailyTrend(DayRecords{}, HomeOptimized)
	if len(points) != 0 {
		t.Fatalf("expected no points, got %d", len(points))
	}
}

func TestBuildCumulativeTrend(t *testing.T) {
	records := DayRecords{
		"2024-03-11": fullDay(Masjid),
		"2024-03-12": {Fajr: Masjid},
		"2024-03-13": fullDay(Masjid),
		"2024-03-14": fullDay(Masjid),
	}

	expected := []TrendPoint{
		{Date: "2024-03-11", AverageScore: 135, CompositeScore: 74.37},
		{Date: "2024-03-13", AverageScore: 135, CompositeScore: 76.52},
		{Date: "2024-03-14", AverageScore: 135, CompositeScore: 78.99},
	}

	got := BuildCumulativeTrend(records, Standard, 7)
	if diff := cmp.Diff(expected, got, cmpopts.EquateApprox(0, 0.01)); diff != "" {
		t.Error(diff)
	}
}

func TestCumulativeTrendMatchesPeriodStats(t *testing.T) {
	records := tenDays()
	points := BuildCumulativeTrend(records, HomeOptimized, 60)
	if len(points) == 0 {
		t.Fatal("expected points, got none")
	}

	stats := CalculatePeriodStats(records, HomeOptimized, "2024-04-01")
	last := points[len(points)-1]

	if composite := CalculateCompositeScore(stats, 60, HomeOptimized); last.CompositeScore != composite {
		t.Fatalf("expected last composite %v, got %v", composite, last.CompositeScore)
	}

	if average := round2(stats.AverageScore); last.AverageScore != average {
		t.Fatalf("expected last average %v, got %v", average, last.AverageScore)
	}
}
