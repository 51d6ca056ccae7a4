package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type PrayerLog struct {
	UserID      pgtype.UUID
	Date        string
	Fajr        pgtype.Text
	Dhuhr       pgtype.Text
	Asr         pgtype.Text
	Maghrib     pgtype.Text
	Isha        pgtype.Text
	SurahAlkahf pgtype.Text
	UpdatedAt   pgtype.Timestamptz
}

type User struct {
	ID        pgtype.UUID
	Name      string
	Timezone  string
	CreatedAt pgtype.Timestamptz
}
