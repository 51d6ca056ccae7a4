package scoring

import (
	"slices"
	"time"
)

// DayRecord is one user's marks for one calendar day. An empty field means the
// slot was never marked or has been cleared.
type DayRecord struct {
	Fajr        PrayerStatus         `json:"fajr,omitempty"`
	Dhuhr       PrayerStatus         `json:"dhuhr,omitempty"`
	Asr         PrayerStatus         `json:"asr,omitempty"`
	Maghrib     PrayerStatus         `json:"maghrib,omitempty"`
	Isha        PrayerStatus         `json:"isha,omitempty"`
	SurahAlKahf FridayActivityStatus `json:"surah_alkahf,omitempty"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func (r DayRecord) Status(prayer PrayerType) PrayerStatus {
	switch prayer {
	case Fajr:
		return r.Fajr
	case Dhuhr:
		return r.Dhuhr
	case Asr:
		return r.Asr
	case Maghrib:
		return r.Maghrib
	case Isha:
		return r.Isha
	default:
		return ""
	}
}

// SetStatus sets or, with an empty status, clears one prayer slot.
func (r *DayRecord) SetStatus(prayer PrayerType, status PrayerStatus) {
	switch prayer {
	case Fajr:
		r.Fajr = status
	case Dhuhr:
		r.Dhuhr = status
	case Asr:
		r.Asr = status
	case Maghrib:
		r.Maghrib = status
	case Isha:
		r.Isha = status
	}
}

// IsEmpty reports whether no slot of the record is set.
func (r DayRecord) IsEmpty() bool {
	for _, prayer := range PrayerTypes {
		if r.Status(prayer) != "" {
			return false
		}
	}
	return r.SurahAlKahf == ""
}

// DayRecords maps YYYY-MM-DD date strings to records.
type DayRecords map[string]DayRecord

// SortedDates returns the valid date keys in ascending order. The fixed-width
// layout makes string order chronological.
func (r DayRecords) SortedDates() []string {
	dates := make([]string, 0, len(r))
	for date := range r {
		if ValidDate(date) {
			dates = append(dates, date)
		}
	}
	slices.Sort(dates)
	return dates
}
