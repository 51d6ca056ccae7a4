package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const selectPrayerLogs = `-- name: SelectPrayerLogs :many
SELECT user_id, to_char(date, 'YYYY-MM-DD') AS date, fajr, dhuhr, asr, maghrib, isha, surah_alkahf, updated_at
FROM prayer_log
WHERE user_id = $1 AND date BETWEEN $2::date AND $3::date
ORDER BY date
`

type SelectPrayerLogsParams struct {
	UserID    pgtype.UUID
	StartDate string
	EndDate   string
}

func (q *Queries) SelectPrayerLogs(ctx context.Context, arg SelectPrayerLogsParams) ([]PrayerLog, error) {
	rows, err := q.db.Query(ctx, selectPrayerLogs, arg.UserID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []PrayerLog
	for rows.Next() {
		var i PrayerLog
		if err := rows.Scan(
			&i.UserID,
			&i.Date,
			&i.Fajr,
			&i.Dhuhr,
			&i.Asr,
			&i.Maghrib,
			&i.Isha,
			&i.SurahAlkahf,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

const selectPrayerLogForUpdate = `-- name: SelectPrayerLogForUpdate :one
SELECT user_id, to_char(date, 'YYYY-MM-DD') AS date, fajr, dhuhr, asr, maghrib, isha, surah_alkahf, updated_at
FROM prayer_log
WHERE user_id = $1 AND date = $2::date
FOR UPDATE
`

type SelectPrayerLogParams struct {
	UserID pgtype.UUID
	Date   string
}

func (q *Queries) SelectPrayerLogForUpdate(ctx context.Context, arg SelectPrayerLogParams) (PrayerLog, error) {
	row := q.db.QueryRow(ctx, selectPrayerLogForUpdate, arg.UserID, arg.Date)
	var i PrayerLog
	err := row.Scan(
		&i.UserID,
		&i.Date,
		&i.Fajr,
		&i.Dhuhr,
		&i.Asr,
		&i.Maghrib,
		&i.Isha,
		&i.SurahAlkahf,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertPrayerLog = `-- name: UpsertPrayerLog :one
INSERT INTO prayer_log (user_id, date, fajr, dhuhr, asr, maghrib, isha, surah_alkahf, updated_at)
VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, NOW())
ON CONFLICT (user_id, date) DO UPDATE SET
  fajr = EXCLUDED.fajr,
  dhuhr = EXCLUDED.dhuhr,
  asr = EXCLUDED.asr,
  maghrib = EXCLUDED.maghrib,
  isha = EXCLUDED.isha,
  surah_alkahf = EXCLUDED.surah_alkahf,
  updated_at = EXCLUDED.updated_at
RETURNING user_id, to_char(date, 'YYYY-MM-DD') AS date, fajr, dhuhr, asr, maghrib, isha, surah_alkahf, updated_at
`

type UpsertPrayerLogParams struct {
	UserID      pgtype.UUID
	Date        string
	Fajr        pgtype.Text
	Dhuhr       pgtype.Text
	Asr         pgtype.Text
	Maghrib     pgtype.Text
	Isha        pgtype.Text
	SurahAlkahf pgtype.Text
}

func (q *Queries) UpsertPrayerLog(ctx context.Context, arg UpsertPrayerLogParams) (PrayerLog, error) {
	row := q.db.QueryRow(ctx, upsertPrayerLog,
		arg.UserID,
		arg.Date,
		arg.Fajr,
		arg.Dhuhr,
		arg.Asr,
		arg.Maghrib,
		arg.Isha,
		arg.SurahAlkahf,
	)
	var i PrayerLog
	err := row.Scan(
		&i.UserID,
		&i.Date,
		&i.Fajr,
		&i.Dhuhr,
		&i.Asr,
		&i.Maghrib,
		&i.Isha,
		&i.SurahAlkahf,
		&i.UpdatedAt,
	)
	return i, err
}

const deletePrayerLog = `-- name: DeletePrayerLog :exec
DELETE FROM prayer_log WHERE user_id = $1 AND date = $2::date
`

func (q *Queries) DeletePrayerLog(ctx context.Context, arg SelectPrayerLogParams) error {
	_, err := q.db.Exec(ctx, deletePrayerLog, arg.UserID, arg.Date)
	return err
}
