package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mdayat/prayer-tracker/configs"
	"github.com/mdayat/prayer-tracker/internal/dtos"
	"github.com/mdayat/prayer-tracker/internal/httputil"
	"github.com/mdayat/prayer-tracker/internal/scoring"
	"github.com/mdayat/prayer-tracker/internal/services"
	"github.com/rs/zerolog/log"
)

type PrayerHandler interface {
	GetPrayers(res http.ResponseWriter, req *http.Request)
	GetDayScore(res http.ResponseWriter, req *http.Request)
	UpdatePrayer(res http.ResponseWriter, req *http.Request)
}

type prayer struct {
	configs configs.Configs
	service services.PrayerServicer
}

func NewPrayerHandler(configs configs.Configs, service services.PrayerServicer) PrayerHandler {
	return &prayer{
		configs: configs,
		service: service,
	}
}

func toDayRecordResponse(date string, record scoring.DayRecord) dtos.DayRecordResponse {
	resBody := dtos.DayRecordResponse{
		Date:        date,
		Fajr:        string(record.Fajr),
		Dhuhr:       string(record.Dhuhr),
		Asr:         string(record.Asr),
		Maghrib:     string(record.Maghrib),
		Isha:        string(record.Isha),
		SurahAlKahf: string(record.SurahAlKahf),
	}

	if !record.UpdatedAt.IsZero() {
		resBody.UpdatedAt = record.UpdatedAt.Format(time.RFC3339)
	}

	return resBody
}

func (p prayer) GetPrayers(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	query := dtos.GetPrayersQuery{
		StartDate: req.URL.Query().Get("start"),
		EndDate:   req.URL.Query().Get("end"),
	}

	if err := p.configs.Validate.Struct(query); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid query params")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	userId := ctx.Value(userIdKey{}).(string)
	records, err := p.service.GetDayRecords(ctx, userId, query.StartDate, query.EndDate)
	if err != nil {
		statusCode := httpStatus(err)
		logger.Error().Err(err).Caller().Int("status_code", statusCode).Msg("failed to get prayer logs")
		http.Error(res, http.StatusText(statusCode), statusCode)
		return
	}

	dates := records.SortedDates()
	resBody := make([]dtos.DayRecordResponse, 0, len(dates))
	for _, date := range dates {
		resBody = append(resBody, toDayRecordResponse(date, records[date]))
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

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got prayers")
}

func (p prayer) GetDayScore(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	date := chi.URLParam(req, "date")
	if !scoring.ValidDate(date) {
		logger.Error().Str("date", date).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid date")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	mode, err := scoring.ParseScoringMode(req.URL.Query().Get("mode"))
	if err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid mode query param")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	userId := ctx.Value(userIdKey{}).(string)
	result, err := p.service.GetDayScore(ctx, userId, date, mode)
	if err != nil {
		statusCode := httpStatus(err)
		logger.Error().Err(err).Caller().Int("status_code", statusCode).Msg("failed to get day score")
		http.Error(res, http.StatusText(statusCode), statusCode)
		return
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody: dtos.DayScoreResponse{
			Date:        result.Date,
			Mode:        mode.String(),
			Score:       result.Score,
			IsComplete:  result.Classification.IsComplete,
			MarkedCount: result.Classification.MarkedCount,
		},
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully got day score")
}

func (p prayer) UpdatePrayer(res http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := log.Ctx(ctx).With().Logger()

	var reqBody dtos.UpdatePrayerRequest
	if err := httputil.DecodeAndValidate(req, p.configs.Validate, &reqBody); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusBadRequest).Msg("invalid request body")
		http.Error(res, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	date := chi.URLParam(req, "date")
	userId := ctx.Value(userIdKey{}).(string)

	record, err := p.service.UpdateDayRecord(ctx, services.UpdateDayRecordParams{
		UserId: userId,
		Date:   date,
		Slot:   reqBody.Slot,
		Status: reqBody.Status,
	})

	if err != nil {
		statusCode := httpStatus(err)
		logger.Error().Err(err).Caller().Int("status_code", statusCode).Msg("failed to update prayer log")
		http.Error(res, http.StatusText(statusCode), statusCode)
		return
	}

	params := httputil.SendSuccessResponseParams{
		StatusCode: http.StatusOK,
		ResBody:    toDayRecordResponse(date, record),
	}

	if err := httputil.SendSuccessResponse(res, params); err != nil {
		logger.Error().Err(err).Caller().Int("status_code", http.StatusInternalServerError).Msg("failed to send success response")
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.Info().Int("status_code", http.StatusOK).Msg("successfully updated prayer log")
}
