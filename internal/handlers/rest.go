package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/mdayat/prayer-tracker/configs"
	"github.com/mdayat/prayer-tracker/internal/services"
)

func NewRestHandler(configs configs.Configs, customMiddleware MiddlewareHandler, prayerService services.PrayerServicer) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.CleanPath)
	router.Use(chiMiddleware.RealIP)
	router.Use(customMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(httprate.LimitByIP(100, 1*time.Minute))

	options := cors.Options{
		AllowedOrigins:   strings.Split(configs.Env.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"User-Agent", "Content-Type", "Accept", "Accept-Encoding", "Accept-Language", "Cache-Control", "Connection", "Host", "Origin", "Referer", "Authorization"},
		ExposedHeaders:   []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(options))
	router.Use(chiMiddleware.Heartbeat("/ping"))

	router.Group(func(r chi.Router) {
		r.Use(customMiddleware.Authenticate)

		prayerHandler := NewPrayerHandler(configs, prayerService)
		r.Get("/prayers", prayerHandler.GetPrayers)
		r.Get("/prayers/{date}/score", prayerHandler.GetDayScore)
		r.Put("/prayers/{date}", prayerHandler.UpdatePrayer)

		statsHandler := NewStatsHandler(configs, prayerService)
		r.Get("/stats", statsHandler.GetStats)
		r.Get("/stats/trend", statsHandler.GetTrend)

		leaderboardHandler := NewLeaderboardHandler(configs, prayerService)
		r.Get("/leaderboard", leaderboardHandler.GetLeaderboard)
	})

	return router
}

// httpStatus maps service errors to response codes.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrInvalidSlot),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrNotFriday):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
