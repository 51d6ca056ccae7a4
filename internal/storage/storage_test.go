package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/mdayat/prayer-tracker/internal/scoring"
	"github.com/mdayat/prayer-tracker/internal/services"
	"github.com/mdayat/prayer-tracker/repository"
)

func TestParseUserId(t *testing.T) {
	if _, err := parseUserId("7d8f1c2e-3b4a-4f5e-8a9b-0c1d2e3f4a01"); err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	_, err := parseUserId("not-a-uuid")
	if !errors.Is(err, services.ErrUserNotFound) {
		t.Fatalf("expected %v, got: %v", services.ErrUserNotFound, err)
	}
}

func TestToDayRecord(t *testing.T) {
	updatedAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	log := repository.PrayerLog{
		Date:        "2024-03-15",
		Fajr:        toText("masjid"),
		Dhuhr:       toText("home"),
		Asr:         toText(""),
		Maghrib:     toText("qaza"),
		Isha:        toText("not_prayed"),
		SurahAlkahf: toText("recited"),
		UpdatedAt:   pgtype.Timestamptz{Time: updatedAt, Valid: true},
	}

	expected := scoring.DayRecord{
		Fajr:        scoring.Masjid,
		Dhuhr:       scoring.Home,
		Maghrib:     scoring.Qaza,
		Isha:        scoring.NotPrayed,
		SurahAlKahf: scoring.Recited,
		UpdatedAt:   updatedAt,
	}

	if diff := cmp.Diff(expected, toDayRecord(log)); diff != "" {
		t.Error(diff)
	}

	if log.Asr.Valid {
		t.Fatal("expected empty status to be stored as NULL")
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.TODO()
	store := NewMemoryStore()
	store.AddMember(services.Member{Id: "b", Name: "zaid", Timezone: "UTC"})
	store.AddMember(services.Member{Id: "a", Name: "umar", Timezone: "UTC"})
	store.AddMember(services.Member{Id: "c", Name: "ali", Timezone: "UTC"})
	store.AddFriendship("a", "b")
	store.AddFriendship("a", "c")
	store.AddFriendship("b", "a")

	t.Run("UpdateDayRecord/Unknown user", func(t *testing.T) {
		_, err := store.UpdateDayRecord(ctx, "x", "2024-03-15", func(record *scoring.DayRecord) error {
			return nil
		})

		if !errors.Is(err, services.ErrUserNotFound) {
			t.Fatalf("expected %v, got: %v", services.ErrUserNotFound, err)
		}
	})

	t.Run("UpdateDayRecord/Rejected update keeps record", func(t *testing.T) {
		rejected := errors.New("rejected")
		_, err := store.UpdateDayRecord(ctx, "a", "2024-03-14", func(record *scoring.DayRecord) error {
			record.Fajr = scoring.Masjid
			return rejected
		})

		if !errors.Is(err, rejected) {
			t.Fatalf("expected %v, got: %v", rejected, err)
		}

		records, err := store.SelectDayRecords(ctx, "a", "2024-03-01", "2024-03-31")
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if len(records) != 0 {
			t.Fatalf("expected no records, got %v", records)
		}
	})

	t.Run("UpdateDayRecord/Set and clear", func(t *testing.T) {
		record, err := store.UpdateDayRecord(ctx, "a", "2024-03-14", func(record *scoring.DayRecord) error {
			record.Fajr = scoring.Masjid
			return nil
		})

		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if record.Fajr != scoring.Masjid || record.UpdatedAt.IsZero() {
			t.Fatalf("unexpected record: %+v", record)
		}

		records, err := store.SelectDayRecords(ctx, "a", "2024-03-14", "2024-03-14")
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %v", records)
		}

		record, err = store.UpdateDayRecord(ctx, "a", "2024-03-14", func(record *scoring.DayRecord) error {
			record.Fajr = ""
			return nil
		})

		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if !record.IsEmpty() {
			t.Fatalf("expected empty record, got %+v", record)
		}

		records, err = store.SelectDayRecords(ctx, "a", "2024-03-14", "2024-03-14")
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if len(records) != 0 {
			t.Fatalf("expected cleared day to be removed, got %v", records)
		}
	})

	t.Run("SelectDayRecords/Range", func(t *testing.T) {
		store.PutDayRecord("b", "2024-03-10", scoring.DayRecord{Fajr: scoring.Home})
		store.PutDayRecord("b", "2024-03-12", scoring.DayRecord{Fajr: scoring.Home})
		store.PutDayRecord("b", "2024-03-16", scoring.DayRecord{Fajr: scoring.Home})

		records, err := store.SelectDayRecords(ctx, "b", "2024-03-10", "2024-03-15")
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		if diff := cmp.Diff([]string{"2024-03-10", "2024-03-12"}, records.SortedDates()); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("SelectFriends", func(t *testing.T) {
		friends, err := store.SelectFriends(ctx, "a")
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		expected := []services.Member{
			{Id: "c", Name: "ali", Timezone: "UTC"},
			{Id: "b", Name: "zaid", Timezone: "UTC"},
		}

		if diff := cmp.Diff(expected, friends); diff != "" {
			t.Error(diff)
		}
	})

	t.Run("SelectMembers/Limit", func(t *testing.T) {
		members, err := store.SelectMembers(ctx, 2)
		if err != nil {
			t.Fatalf("wasn't expecting error, got: %v", err)
		}

		expected := []services.Member{
			{Id: "a", Name: "umar", Timezone: "UTC"},
			{Id: "b", Name: "zaid", Timezone: "UTC"},
		}

		if diff := cmp.Diff(expected, members); diff != "" {
			t.Error(diff)
		}
	})
}
