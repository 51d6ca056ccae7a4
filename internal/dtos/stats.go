package dtos

import "github.com/mdayat/prayer-tracker/internal/scoring"

type StatsQuery struct {
	Period string `validate:"omitempty,oneof=week month all"`
	Mode   string `validate:"omitempty,oneof=standard home masjid"`
}

type TrendQuery struct {
	Kind   string `validate:"omitempty,oneof=daily cumulative"`
	Period string `validate:"omitempty,oneof=week month all"`
	Mode   string `validate:"omitempty,oneof=standard home masjid"`
}

type StatsResponse struct {
	Period         string  `json:"period"`
	Mode           string  `json:"mode"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	DaysTrackedCap int     `json:"days_tracked_cap"`
	CompositeScore float64 `json:"composite_score"`
	scoring.PeriodStats
}

type TrendResponse struct {
	Kind   string               `json:"kind"`
	Period string               `json:"period"`
	Mode   string               `json:"mode"`
	Points []scoring.TrendPoint `json:"points"`
}
