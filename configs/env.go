package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	DatabaseURL      string
	AllowedOrigins   string
	SecretKey        string
	OriginURL        string
	Port             string
	RedisURL         string
	CacheTTL         time.Duration
	LeaderboardLimit int
}

func LoadEnv(filenames ...string) (Env, error) {
	if err := godotenv.Load(filenames...); err != nil {
		// Without explicit files a missing .env is fine, the process env is used as is.
		if len(filenames) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Env{}, err
		}
	}

	env := Env{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AllowedOrigins:   os.Getenv("ALLOWED_ORIGINS"),
		SecretKey:        os.Getenv("SECRET_KEY"),
		OriginURL:        os.Getenv("ORIGIN_URL"),
		Port:             os.Getenv("PORT"),
		RedisURL:         os.Getenv("REDIS_URL"),
		CacheTTL:         30 * time.Second,
		LeaderboardLimit: 100,
	}

	if env.Port == "" {
		env.Port = "8080"
	}

	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Env{}, fmt.Errorf("failed to parse CACHE_TTL: %w", err)
		}
		env.CacheTTL = d
	}

	if limit := os.Getenv("LEADERBOARD_LIMIT"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return Env{}, fmt.Errorf("failed to convert LEADERBOARD_LIMIT to int: %w", err)
		}
		env.LeaderboardLimit = n
	}

	return env, nil
}
