package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/prayer-tracker/configs"
	"github.com/mdayat/prayer-tracker/internal/retryutil"
	"github.com/mdayat/prayer-tracker/internal/scoring"
	"github.com/mdayat/prayer-tracker/internal/services"
	"github.com/mdayat/prayer-tracker/repository"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const seedDays = 14

// statusFor cycles through statuses so the seeded users land on different
// leaderboard positions.
func statusFor(userIndex, day, prayer int) scoring.PrayerStatus {
	statuses := []scoring.PrayerStatus{scoring.Masjid, scoring.Home, scoring.Qaza, scoring.NotPrayed}
	if (day+prayer)%(userIndex+3) == 0 {
		return statuses[(userIndex+prayer)%len(statuses)]
	}
	return statuses[userIndex%2]
}

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

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	db, err := configs.NewDb(ctx, env.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Send()
	}
	defer db.Conn.Close()

	config := configs.NewConfigs(env, db, nil)

	// Seed "user" table
	names := []string{"aisyah", "bilal", "hamzah"}
	users := make([]repository.User, 0, len(names))
	for _, name := range names {
		user, err := retryutil.RetryWithData(func() (repository.User, error) {
			return db.Queries.InsertUser(ctx, repository.InsertUserParams{
				ID:       pgtype.UUID{Bytes: uuid.New(), Valid: true},
				Name:     name,
				Timezone: "Asia/Jakarta",
			})
		})

		if err != nil {
			logger.Fatal().Err(err).Msg("failed to seed user table")
		}
		users = append(users, user)
	}

	// Seed "friendship" table
	for _, friend := range users[1:] {
		err := retryutil.RetryWithoutData(func() error {
			return db.Queries.InsertFriendship(ctx, repository.InsertFriendshipParams{
				UserID:   users[0].ID,
				FriendID: friend.ID,
			})
		})

		if err != nil {
			logger.Fatal().Err(err).Msg("failed to seed friendship table")
		}
	}

	// Seed "prayer_log" table
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	today := scoring.ToLocalDateString(time.Now().In(loc))
	for i, user := range users {
		for day := 1; day <= seedDays; day++ {
			date, err := scoring.AddDays(today, -day)
			if err != nil {
				logger.Fatal().Err(err).Send()
			}

			var record scoring.DayRecord
			for p, prayer := range scoring.PrayerTypes {
				record.SetStatus(prayer, statusFor(i, day, p))
			}

			if scoring.IsFriday(date) {
				record.SurahAlKahf = scoring.Recited
				if i == len(users)-1 {
					record.SurahAlKahf = scoring.Missed
				}
			}

			_, err = retryutil.RetryWithData(func() (repository.PrayerLog, error) {
				return db.Queries.UpsertPrayerLog(ctx, repository.UpsertPrayerLogParams{
					UserID:      user.ID,
					Date:        date,
					Fajr:        pgtype.Text{String: string(record.Fajr), Valid: true},
					Dhuhr:       pgtype.Text{String: string(record.Dhuhr), Valid: true},
					Asr:         pgtype.Text{String: string(record.Asr), Valid: true},
					Maghrib:     pgtype.Text{String: string(record.Maghrib), Valid: true},
					Isha:        pgtype.Text{String: string(record.Isha), Valid: true},
					SurahAlkahf: pgtype.Text{String: string(record.SurahAlKahf), Valid: record.SurahAlKahf != ""},
				})
			})

			if err != nil {
				logger.Fatal().Err(err).Msg("failed to seed prayer_log table")
			}
		}
	}

	authService := services.NewAuthService(config)
	accessToken, err := authService.CreateAccessToken(users[0].ID.String(), 24*time.Hour)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create access token")
	}

	fmt.Printf("seeded %d users, access token for %s:\n%s\n", len(users), names[0], accessToken)
}
