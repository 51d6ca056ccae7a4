package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fullDay(status PrayerStatus) DayRecord {
	return DayRecord{
		Fajr:    status,
		Dhuhr:   status,
		Asr:     status,
		Maghrib: status,
		Isha:    status,
	}
}

func withFriday(record DayRecord, status FridayActivityStatus) DayRecord {
	record.SurahAlKahf = status
	return record
}

const (
	thursday = "2024-03-14"
	friday   = "2024-03-15"
)

func TestClassifyDay(t *testing.T) {
	table := []struct {
		name     string
		date     string
		record   DayRecord
		mode     ScoringMode
		expected DayClassification
	}{
		{
			name:   "Complete/All masjid on Thursday",
			date:   thursday,
			record: fullDay(Masjid),
			mode:   Standard,
			expected: DayClassification{
				IsComplete:       true,
				DayScore:         135,
				MarkedCount:      5,
				AllMarkedAreGood: true,
				Breakdown:        Breakdown{Masjid: 5},
			},
		},
		{
			name:   "Incomplete/Friday without recitation",
			date:   friday,
			record: fullDay(Masjid),
			mode:   Standard,
			expected: DayClassification{
				IsComplete:       false,
				DayScore:         135,
				MarkedCount:      5,
				AllMarkedAreGood: true,
				IsFriday:         true,
				Breakdown:        Breakdown{Masjid: 5},
			},
		},
		{
			name:   "Complete/Friday recited",
			date:   friday,
			record: withFriday(fullDay(Masjid), Recited),
			mode:   Standard,
			expected: DayClassification{
				IsComplete:       true,
				DayScore:         145,
				MarkedCount:      5,
				AllMarkedAreGood: true,
				IsFriday:         true,
				FridayActivity:   Recited,
				Breakdown:        Breakdown{Masjid: 5},
			},
		},
		{
			name:   "Complete/Friday missed scores no bonus",
			date:   friday,
			record: withFriday(fullDay(Home), Missed),
			mode:   HomeOptimized,
			expected: DayClassification{
				IsComplete:       true,
				DayScore:         135,
				MarkedCount:      5,
				AllMarkedAreGood: true,
				IsFriday:         true,
				FridayActivity:   Missed,
				Breakdown:        Breakdown{Home: 5},
			},
		},
		{
			name:   "Incomplete/Recitation ignored on Thursday",
			date:   thursday,
			record: DayRecord{Fajr: Home, SurahAlKahf: Recited},
			mode:   Standard,
			expected: DayClassification{
				DayScore:    1,
				MarkedCount: 1,
				Breakdown:   Breakdown{Home: 1},
			},
		},
		{
			name:   "Incomplete/Unknown statuses are unmarked",
			date:   thursday,
			record: DayRecord{Fajr: "prayed", Dhuhr: Masjid, Asr: Masjid, Maghrib: Masjid, Isha: Masjid},
			mode:   Standard,
			expected: DayClassification{
				DayScore:    108,
				MarkedCount: 4,
				Breakdown:   Breakdown{Masjid: 4},
			},
		},
		{
			name:   "Complete/Qaza is not streak eligible",
			date:   thursday,
			record: DayRecord{Fajr: Qaza, Dhuhr: Home, Asr: Home, Maghrib: Home, Isha: NotPrayed},
			mode:   Standard,
			expected: DayClassification{
				IsComplete:  true,
				DayScore:    3.5,
				MarkedCount: 5,
				Breakdown:   Breakdown{NotPrayed: 1, Qaza: 1, Home: 3},
			},
		},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			got := ClassifyDay(v.date, v.record, v.mode)
			if diff := cmp.Diff(v.expected, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestStreakEligibleIgnoresFriday(t *testing.T) {
	c := ClassifyDay(friday, fullDay(Home), Standard)
	if c.IsComplete {
		t.Fatalf("expected Friday without recitation to be incomplete")
	}

	if !c.StreakEligible() {
		t.Fatalf("expected five good prayers to be streak eligible")
	}
}

func TestCalculateDayScore(t *testing.T) {
	masjid := fullDay(Masjid)
	home := fullDay(Home)

	table := []struct {
		name      string
		record    *DayRecord
		mode      ScoringMode
		expected  float64
		hasRecord bool
	}{
		{name: "Masjid/Standard", record: &masjid, mode: Standard, expected: 135, hasRecord: true},
		{name: "Masjid/Home optimized", record: &masjid, mode: HomeOptimized, expected: 135, hasRecord: true},
		{name: "Home/Standard", record: &home, mode: Standard, expected: 5, hasRecord: true},
		{name: "Home/Home optimized", record: &home, mode: HomeOptimized, expected: 135, hasRecord: true},
		{name: "No record", record: nil, mode: Standard, expected: 0, hasRecord: false},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			score, ok := CalculateDayScore(v.record, thursday, v.mode)
			if ok != v.hasRecord {
				t.Fatalf("expected hasRecord %t, got %t", v.hasRecord, ok)
			}

			if score != v.expected {
				t.Fatalf("expected score %v, got %v", v.expected, score)
			}
		})
	}
}

func TestFridayBonusOnIncompleteDay(t *testing.T) {
	record := withFriday(DayRecord{Fajr: Masjid}, Recited)

	score, ok := CalculateDayScore(&record, friday, Standard)
	if !ok {
		t.Fatal("expected a record")
	}

	if score != MaxPrayerScore+FridayBonus {
		t.Fatalf("expected score %d, got %v", MaxPrayerScore+FridayBonus, score)
	}

	if ClassifyDay(friday, record, Standard).IsComplete {
		t.Fatal("expected a Friday with one prayer to be incomplete")
	}
}

func TestParseScoringMode(t *testing.T) {
	table := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "Default", input: "", expected: "standard"},
		{name: "Standard", input: "standard", expected: "standard"},
		{name: "Home", input: "home", expected: "home"},
		{name: "Legacy masjid flag", input: "masjid", expected: "home"},
		{name: "Unknown", input: "weekly", wantErr: true},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			mode, err := ParseScoringMode(v.input)
			if v.wantErr {
				if err == nil {
					t.Fatalf("expected error, got mode %s", mode)
				}
				return
			}

			if err != nil {
				t.Fatalf("wasn't expecting error, got: %v", err)
			}

			if mode.String() != v.expected {
				t.Fatalf("expected mode %s, got %s", v.expected, mode)
			}
		})
	}
}
