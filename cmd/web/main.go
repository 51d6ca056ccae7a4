package main

import (
	"context"
	"net/http"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/mdayat/prayer-tracker/configs"
	"github.com/mdayat/prayer-tracker/internal/handlers"
	"github.com/mdayat/prayer-tracker/internal/services"
	"github.com/mdayat/prayer-tracker/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	logger := log.With().Caller().Logger()

	env, err := configs.LoadEnv()
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	cache, err := configs.NewCache(ctx, env.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	var db configs.Db
	var store services.PrayerStore
	if env.DatabaseURL != "" {
		db, err = configs.NewDb(ctx, env.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Send()
		}
		defer db.Conn.Close()
		store = storage.NewPrayerStore(db)
	} else {
		logger.Warn().Msg("DATABASE_URL is not set, prayer logs are kept in memory")
		store = storage.NewMemoryStore()
	}

	configs := configs.NewConfigs(env, db, cache)

	prayerService := services.NewPrayerService(configs, store, time.Now)
	authService := services.NewAuthService(configs)
	authenticator := handlers.NewProdAuthenticator(authService)
	customMiddleware := handlers.NewMiddlewareHandler(configs, authenticator)
	router := handlers.NewRestHandler(configs, customMiddleware, prayerService)

	logger.Info().Str("port", env.Port).Msg("starting server")
	if err := http.ListenAndServe(":"+env.Port, router); err != nil {
		logger.Fatal().Err(err).Send()
	}
}
