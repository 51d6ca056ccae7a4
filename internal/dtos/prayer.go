package dtos

type GetPrayersQuery struct {
	StartDate string `validate:"required,localdate"`
	EndDate   string `validate:"required,localdate"`
}

type UpdatePrayerRequest struct {
	Slot   string `json:"slot" validate:"required,oneof=fajr dhuhr asr maghrib isha surah_alkahf"`
	Status string `json:"status" validate:"omitempty,oneof=not_prayed qaza home masjid recited missed"`
}

type DayRecordResponse struct {
	Date        string `json:"date"`
	Fajr        string `json:"fajr,omitempty"`
	Dhuhr       string `json:"dhuhr,omitempty"`
	Asr         string `json:"asr,omitempty"`
	Maghrib     string `json:"maghrib,omitempty"`
	Isha        string `json:"isha,omitempty"`
	SurahAlKahf string `json:"surah_alkahf,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type DayScoreResponse struct {
	Date        string   `json:"date"`
	Mode        string   `json:"mode"`
	Score       *float64 `json:"score"`
	IsComplete  bool     `json:"is_complete"`
	MarkedCount int      `json:"marked_count"`
}
