package dtos

type LeaderboardQuery struct {
	Scope  string `validate:"omitempty,oneof=friends global"`
	Period string `validate:"omitempty,oneof=week month all"`
	Mode   string `validate:"omitempty,oneof=standard home masjid"`
}

type LeaderboardEntryResponse struct {
	Rank           int     `json:"rank"`
	UserId         string  `json:"user_id"`
	Name           string  `json:"name"`
	IsCurrentUser  bool    `json:"is_current_user"`
	CompositeScore float64 `json:"composite_score"`
	AverageScore   float64 `json:"average_score"`
	Consistency    float64 `json:"consistency"`
	CurrentStreak  int     `json:"current_streak"`
	BestStreak     int     `json:"best_streak"`
	TotalDays      int     `json:"total_days"`
}

type LeaderboardResponse struct {
	Scope   string                     `json:"scope"`
	Period  string                     `json:"period"`
	Mode    string                     `json:"mode"`
	Entries []LeaderboardEntryResponse `json:"entries"`
}
