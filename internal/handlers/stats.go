package handlers

import (
	"net/http"

	"github.com/mdayat/prayer-tracker/configs"
	"github.com/mdayat/prayer-tracker/internal/dtos"
	"github.com/mdayat/prayer-tracker/internal/httputil"
	"github.com/mdayat/prayer-tracker/internal/scoring"
	"github.com/mdayat/prayer-tracker/internal/services"
	"github.com/rs/zerolog/log"
)

type StatsHandler interface {
	GetStats(res http.ResponseWriter, req *http.Request)
	GetTrend(res http.ResponseWriter, req *http.Request)
}

type stats struct {
	configs configs.Configs
	service services.PrayerServicer
}

func NewStatsHandler(configs configs.Configs, service services.PrayerServicer) StatsHandler {
	return &stats{
		configs: configs,
		service: service,
	}
}

// parsePeriodAndMode expects values already checked by the validator.
func parsePeriodAndMode(periodString, modeString string) (scoring.Period, scoring.ScoringMode, error) {
	period, err := scoring.ParsePeriod(periodString)
	if err != nil {
		return "", scoring.ScoringMode{}, err
	}

	mode, err := scoring.ParseScoringMode(modeString)
	if err != nil {
		return "", scoring.ScoringMode{}, err
	}

	return period, mode, nil
}

func (s stats) GetStats(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	query := dtos.StatsQuery{
		Period: req.URL.Query().Get("period"),
		Mode:   req.URL.Query().Get("mode"),
	}

	if err := s.configs.Validate.Struct(query); err != nil {
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

	userId := ctx.Value(userIdKey{}).(string)
	result, err := s.service.GetPeriodStats(ctx, services.PeriodParams{
		UserId: userId,
		Period: period,
		Mode:   mode,
	})

	if err != nil {
		statusCode := httpStatus(err)
		logger.Error().Err(err).Caller().Int("status_code", statusCode).Msg("failed to get period stats")
		http.Error(res, http.StatusText(statusCode), statusCode)
		return
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody: dtos.StatsResponse{
			Period:         string(result.Period),
			Mode:           result.Mode.String(),
			StartDate:      result.StartDate,
			EndDate:        result.EndDate,
			DaysTrackedCap: result.DaysTrackedCap,
			CompositeScore: result.CompositeScore,
			PeriodStats:    result.Stats,
		},
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got period stats")
}

func (s stats) GetTrend(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	query := dtos.TrendQuery{
		Kind:   req.URL.Query().Get("kind"),
		Period: req.URL.Query().Get("period"),
		Mode:   req.URL.Query().Get("mode"),
	}

	if err := s.configs.Validate.Struct(query); err != nil {
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

	kind := services.TrendKind(query.Kind)
	if kind == "" {
		kind = services.DailyTrend
	}

	userId := ctx.Value(userIdKey{}).(string)
	points, err := s.service.GetTrend(ctx, services.TrendParams{
		UserId: userId,
		Kind:   kind,
		Period: period,
		Mode:   mode,
	})

	if err != nil {
		statusCode := httpStatus(err)
		logger.Error().Err(err).Caller().Int("status_code", statusCode).Msg("failed to get trend")
		http.Error(res, http.StatusText(statusCode), statusCode)
		return
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody: dtos.TrendResponse{
			Kind:   string(kind),
			Period: string(period),
			Mode:   mode.String(),
			Points: points,
		},
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got trend")
}
