package scoring

type PrayerType string

const (
	Fajr    PrayerType = "fajr"
	Dhuhr   PrayerType = "dhuhr"
	Asr     PrayerType = "asr"
	Maghrib PrayerType = "maghrib"
	Isha    PrayerType = "isha"
)

// PrayerTypes is the fixed iteration order for the five daily prayers.
var PrayerTypes = [PrayersPerDay]PrayerType{Fajr, Dhuhr, Asr, Maghrib, Isha}

type PrayerStatus string

const (
	NotPrayed PrayerStatus = "not_prayed"
	Qaza      PrayerStatus = "qaza"
	Home      PrayerStatus = "home"
	Masjid    PrayerStatus = "masjid"
)

func (s PrayerStatus) Valid() bool {
	switch s {
	case NotPrayed, Qaza, Home, Masjid:
		return true
	default:
		return false
	}
}

// FridayActivitySlot is the record key of the Friday bonus activity.
const FridayActivitySlot = "surah_alkahf"

type FridayActivityStatus string

const (
	Recited FridayActivityStatus = "recited"
	Missed  FridayActivityStatus = "missed"
)

func (s FridayActivityStatus) Valid() bool {
	return s == Recited || s == Missed
}

func (s FridayActivityStatus) Score() float64 {
	if s == Recited {
		return FridayBonus
	}
	return 0
}

const (
	PrayersPerDay = 5

	// MaxPrayerScore is the highest per-prayer score in every mode.
	MaxPrayerScore = 27
	FridayBonus    = 10

	// DailyMaxScore is the highest score of a non-Friday day.
	DailyMaxScore = PrayersPerDay * MaxPrayerScore
	// FridayMaxScore is the highest score of any day.
	FridayMaxScore = DailyMaxScore + FridayBonus

	// StreakCap is the streak length that earns the full streak sub-score.
	StreakCap = 30
)
