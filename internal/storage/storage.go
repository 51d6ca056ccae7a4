package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/prayer-tracker/configs"
	"github.com/mdayat/prayer-tracker/internal/dbutil"
	"github.com/mdayat/prayer-tracker/internal/retryutil"
	"github.com/mdayat/prayer-tracker/internal/scoring"
	"github.com/mdayat/prayer-tracker/internal/services"
	"github.com/mdayat/prayer-tracker/repository"
)

type store struct {
	conn    dbutil.TxBeginner
	queries *repository.Queries
}

// NewPrayerStore returns the Postgres-backed storage collaborator of the
// prayer service.
func NewPrayerStore(db configs.Db) services.PrayerStore {
	return newPrayerStore(db.Conn, db.Queries)
}

func newPrayerStore(conn dbutil.TxBeginner, queries *repository.Queries) *store {
	return &store{
		conn:    conn,
		queries: queries,
	}
}

func parseUserId(userId string) (pgtype.UUID, error) {
	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("%w: failed to parse user Id to UUID: %v", services.ErrUserNotFound, err)
	}
	return pgtype.UUID{Bytes: userUUID, Valid: true}, nil
}

func (s store) SelectDayRecords(ctx context.Context, userId, startDate, endDate string) (scoring.DayRecords, error) {
	userUUID, err := parseUserId(userId)
	if err != nil {
		return nil, err
	}

	logs, err := retryutil.RetryWithData(func() ([]repository.PrayerLog, error) {
		return s.queries.SelectPrayerLogs(ctx, repository.SelectPrayerLogsParams{
			UserID:    userUUID,
			StartDate: startDate,
			EndDate:   endDate,
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to select prayer logs: %w", err)
	}

	// An empty range is also what an unknown user gets.
	if len(logs) == 0 {
		if _, err := s.SelectMember(ctx, userId); err != nil {
			return nil, err
		}
	}

	records := make(scoring.DayRecords, len(logs))
	for _, log := range logs {
		records[log.Date] = toDayRecord(log)
	}

	return records, nil
}

func (s store) UpdateDayRecord(
	ctx context.Context,
	userId, date string,
	update func(record *scoring.DayRecord) error,
) (scoring.DayRecord, error) {
	userUUID, err := parseUserId(userId)
	if err != nil {
		return scoring.DayRecord{}, err
	}

	params := repository.SelectPrayerLogParams{UserID: userUUID, Date: date}
	retryableFunc := func(qtx *repository.Queries) (scoring.DayRecord, error) {
		var record scoring.DayRecord
		log, err := qtx.SelectPrayerLogForUpdate(ctx, params)
		if err == nil {
			record = toDayRecord(log)
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return scoring.DayRecord{}, fmt.Errorf("failed to select prayer log: %w", err)
		}

		if err := update(&record); err != nil {
			return scoring.DayRecord{}, retry.Unrecoverable(err)
		}

		// A day with every slot cleared has no record at all.
		if record.IsEmpty() {
			if err := qtx.DeletePrayerLog(ctx, params); err != nil {
				return scoring.DayRecord{}, fmt.Errorf("failed to delete prayer log: %w", err)
			}
			return scoring.DayRecord{}, nil
		}

		upserted, err := qtx.UpsertPrayerLog(ctx, repository.UpsertPrayerLogParams{
			UserID:      userUUID,
			Date:        date,
			Fajr:        toText(string(record.Fajr)),
			Dhuhr:       toText(string(record.Dhuhr)),
			Asr:         toText(string(record.Asr)),
			Maghrib:     toText(string(record.Maghrib)),
			Isha:        toText(string(record.Isha)),
			SurahAlkahf: toText(string(record.SurahAlKahf)),
		})

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return scoring.DayRecord{}, retry.Unrecoverable(services.ErrUserNotFound)
			}
			return scoring.DayRecord{}, fmt.Errorf("failed to upsert prayer log: %w", err)
		}

		return toDayRecord(upserted), nil
	}

	return dbutil.RetryableTxWithData(ctx, s.conn, s.queries, retryableFunc)
}

func (s store) SelectMember(ctx context.Context, userId string) (services.Member, error) {
	userUUID, err := parseUserId(userId)
	if err != nil {
		return services.Member{}, err
	}

	user, err := retryutil.RetryWithData(func() (repository.User, error) {
		return s.queries.SelectUserById(ctx, userUUID)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return services.Member{}, services.ErrUserNotFound
		}
		return services.Member{}, fmt.Errorf("failed to select user: %w", err)
	}

	return toMember(user), nil
}

func (s store) SelectFriends(ctx context.Context, userId string) ([]services.Member, error) {
	userUUID, err := parseUserId(userId)
	if err != nil {
		return nil, err
	}

	users, err := retryutil.RetryWithData(func() ([]repository.User, error) {
		return s.queries.SelectFriends(ctx, userUUID)
	})

	if err != nil {
		return nil, fmt.Errorf("failed to select friends: %w", err)
	}

	return toMembers(users), nil
}

func (s store) SelectMembers(ctx context.Context, limit int) ([]services.Member, error) {
	users, err := retryutil.RetryWithData(func() ([]repository.User, error) {
		return s.queries.SelectUsers(ctx, int32(limit))
	})

	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}

	return toMembers(users), nil
}

func toDayRecord(log repository.PrayerLog) scoring.DayRecord {
	return scoring.DayRecord{
		Fajr:        scoring.PrayerStatus(log.Fajr.String),
		Dhuhr:       scoring.PrayerStatus(log.Dhuhr.String),
		Asr:         scoring.PrayerStatus(log.Asr.String),
		Maghrib:     scoring.PrayerStatus(log.Maghrib.String),
		Isha:        scoring.PrayerStatus(log.Isha.String),
		SurahAlKahf: scoring.FridayActivityStatus(log.SurahAlkahf.String),
		UpdatedAt:   log.UpdatedAt.Time,
	}
}

func toText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func toMember(user repository.User) services.Member {
	return services.Member{
		Id:       user.ID.String(),
		Name:     user.Name,
		Timezone: user.Timezone,
	}
}

func toMembers(users []repository.User) []services.Member {
	members := make([]services.Member, 0, len(users))
	for _, user := range users {
		members = append(members, toMember(user))
	}
	return members
}
