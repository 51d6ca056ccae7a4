package handlers

import (
	"net/http"

	"github.com/mdayat/prayer-tracker/configs"
	"github.com/mdayat/prayer-tracker/internal/dtos"
	"github.com/mdayat/prayer-tracker/internal/httputil"
	"github.com/mdayat/prayer-tracker/internal/services"
	"github.com/rs/zerolog/log"
)

type LeaderboardHandler interface {
	GetLeaderboard(res http.ResponseWriter, req *http.Request)
}

type leaderboard struct {
	configs configs.Configs
	service services.PrayerServicer
}

func NewLeaderboardHandler(configs configs.Configs, service services.PrayerServicer) LeaderboardHandler {
	return &leaderboard{
		configs: configs,
		service: service,
	}
}

func (l leaderboard) GetLeaderboard(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	query := dtos.LeaderboardQuery{
		Scope:  req.URL.Query().Get("scope"),
		Period: req.URL.Query().Get("period"),
		Mode:   req.URL.Query().Get("mode"),
	}

	if err := l.configs.Validate.Struct(query); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid query params")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	period, mode, err := parsePeriodAndMode(query.Period, query.Mode)
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid query params")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	scope := services.LeaderboardScope(query.Scope)
	if scope == "" {
		scope = services.FriendsScope
	}

	userId := ctx.Value(userIdKey{}).(string)
	entries, err := l.service.GetLeaderboard(ctx, services.LeaderboardParams{
		UserId: userId,
		Scope:  scope,
		Period: period,
		Mode:   mode,
	})

	if err != nil {
		statusCode := httpStatus(err)
		logger.Error().Err(err).Caller().Int("status_code", statusCode).Msg("failed to get leaderboard")
		http.Error(res, http.StatusText(statusCode), statusCode)
		return
	}

	resBody := dtos.LeaderboardResponse{
		Scope:   string(scope),
		Period:  string(period),
		Mode:    mode.String(),
		Entries: make([]dtos.LeaderboardEntryResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		resBody.Entries = append(resBody.Entries, dtos.LeaderboardEntryResponse{
			Rank:           entry.Rank,
			UserId:         entry.Member.Id,
			Name:           entry.Member.Name,
			IsCurrentUser:  entry.IsCurrentUser,
			CompositeScore: entry.CompositeScore,
			AverageScore:   entry.Stats.AverageScore,
			Consistency:    entry.Stats.Consistency,
			CurrentStreak:  entry.Stats.CurrentStreak,
			BestStreak:     entry.Stats.BestStreak,
			TotalDays:      entry.Stats.TotalDays,
		})
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    resBody,
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got leaderboard")
}
