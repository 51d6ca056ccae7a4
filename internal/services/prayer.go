package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mdayat/prayer-tracker/configs"
	"github.com/mdayat/prayer-tracker/internal/cache"
	"github.com/mdayat/prayer-tracker/internal/scoring"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidRange  = errors.New("invalid date range")
	ErrInvalidSlot   = errors.New("invalid slot")
	ErrInvalidStatus = errors.New("invalid status for slot")
	ErrNotFriday     = errors.New("friday activity can only be marked on a friday")
)

type Member struct {
	Id       string
	Name     string
	Timezone string
}

type PrayerStore interface {
	SelectDayRecords(ctx context.Context, userId, startDate, endDate string) (scoring.DayRecords, error)
	UpdateDayRecord(ctx context.Context, userId, date string, update func(record *scoring.DayRecord) error) (scoring.DayRecord, error)
	SelectMember(ctx context.Context, userId string) (Member, error)
	SelectFriends(ctx context.Context, userId string) ([]Member, error)
	SelectMembers(ctx context.Context, limit int) ([]Member, error)
}

type PrayerServicer interface {
	GetDayRecords(ctx context.Context, userId, startDate, endDate string) (scoring.DayRecords, error)
	GetDayScore(ctx context.Context, userId, date string, mode scoring.ScoringMode) (DayScoreResult, error)
	UpdateDayRecord(ctx context.Context, arg UpdateDayRecordParams) (scoring.DayRecord, error)
	GetPeriodStats(ctx context.Context, arg PeriodParams) (PeriodStatsResult, error)
	GetTrend(ctx context.Context, arg TrendParams) ([]scoring.TrendPoint, error)
	GetLeaderboard(ctx context.Context, arg LeaderboardParams) ([]LeaderboardEntry, error)
}

type prayer struct {
	store            PrayerStore
	cache            cache.Cache
	cacheTTL         time.Duration
	leaderboardLimit int
	now              func() time.Time
}

func NewPrayerService(configs configs.Configs, store PrayerStore, now func() time.Time) PrayerServicer {
	c := configs.Cache
	if c == nil {
		c = cache.NewNoop()
	}

	return &prayer{
		store:            store,
		cache:            c,
		cacheTTL:         configs.Env.CacheTTL,
		leaderboardLimit: configs.Env.LeaderboardLimit,
		now:              now,
	}
}

const leaderboardConcurrency = 8

func versionKey(userId string) string {
	return "prayer_logs_version:" + userId
}

func (p prayer) versionTTL() time.Duration {
	return max(24*time.Hour, 2*p.cacheTTL)
}

// recordsKey embeds the user's current write version so an edit makes every
// cached range of that user unreachable.
func (p prayer) recordsKey(ctx context.Context, userId, startDate, endDate string) string {
	version := "0"
	if _, err := p.cache.Get(ctx, versionKey(userId), &version); err != nil {
		log.Ctx(ctx).Warn().Err(err).Caller().Msg("failed to get prayer logs version from cache")
	}
	return fmt.Sprintf("prayer_logs:%s:%s:%s:%s", userId, version, startDate, endDate)
}

func (p prayer) GetDayRecords(ctx context.Context, userId, startDate, endDate string) (scoring.DayRecords, error) {
	if !scoring.ValidDate(startDate) || !scoring.ValidDate(endDate) || startDate > endDate {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidRange, startDate, endDate)
	}

	logger := log.Ctx(ctx)
	key := p.recordsKey(ctx, userId, startDate, endDate)

	var records scoring.DayRecords
	found, err := p.cache.Get(ctx, key, &records)
	if err != nil {
		logger.Warn().Err(err).Caller().Str("cache_key", key).Msg("failed to get prayer logs from cache")
	}

	if found && records != nil {
		return records, nil
	}

	records, err = p.store.SelectDayRecords(ctx, userId, startDate, endDate)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, records, p.cacheTTL); err != nil {
		logger.Warn().Err(err).Caller().Str("cache_key", key).Msg("failed to set prayer logs in cache")
	}

	return records, nil
}

// loadRecords degrades a failed fetch to an empty range so scoring always has
// input. Unknown users are still reported.
func (p prayer) loadRecords(ctx context.Context, userId, startDate, endDate string) (scoring.DayRecords, error) {
	records, err := p.GetDayRecords(ctx, userId, startDate, endDate)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrInvalidRange) {
			return nil, err
		}

		log.Ctx(ctx).Warn().Err(err).Caller().Str("user_id", userId).Msg("failed to fetch prayer logs, using empty range")
		return scoring.DayRecords{}, nil
	}
	return records, nil
}

// localNow is the current time in the member's timezone, UTC when the zone is
// unknown.
func (p prayer) localNow(ctx context.Context, member Member) time.Time {
	loc, err := time.LoadLocation(member.Timezone)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Caller().Str("timezone", member.Timezone).Msg("unknown timezone, using UTC")
		loc = time.UTC
	}
	return p.now().In(loc)
}

type DayScoreResult struct {
	Date           string
	Score          *float64
	Classification scoring.DayClassification
}

func (p prayer) GetDayScore(ctx context.Context, userId, date string, mode scoring.ScoringMode) (DayScoreResult, error) {
	records, err := p.GetDayRecords(ctx, userId, date, date)
	if err != nil {
		return DayScoreResult{}, err
	}

	result := DayScoreResult{Date: date}
	record, exists := records[date]
	if !exists {
		return result, nil
	}

	score, _ := scoring.CalculateDayScore(&record, date, mode)
	result.Score = &score
	result.Classification = scoring.ClassifyDay(date, record, mode)
	return result, nil
}

type UpdateDayRecordParams struct {
	UserId string
	Date   string
	Slot   string
	Status string
}

func validateSlot(date, slot, status string) error {
	if slot == scoring.FridayActivitySlot {
		if !scoring.IsFriday(date) {
			return ErrNotFriday
		}

		if status != "" && !scoring.FridayActivityStatus(status).Valid() {
			return fmt.Errorf("%w: %q for %s", ErrInvalidStatus, status, slot)
		}
		return nil
	}

	if !slices.Contains(scoring.PrayerTypes[:], scoring.PrayerType(slot)) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}

	if status != "" && !scoring.PrayerStatus(status).Valid() {
		return fmt.Errorf("%w: %q for %s", ErrInvalidStatus, status, slot)
	}

	return nil
}

// UpdateDayRecord sets one slot of a day, or clears it when Status is empty.
func (p prayer) UpdateDayRecord(ctx context.Context, arg UpdateDayRecordParams) (scoring.DayRecord, error) {
	if !scoring.ValidDate(arg.Date) {
		return scoring.DayRecord{}, fmt.Errorf("%w: %q", ErrInvalidRange, arg.Date)
	}

	if err := validateSlot(arg.Date, arg.Slot, arg.Status); err != nil {
		return scoring.DayRecord{}, err
	}

	record, err := p.store.UpdateDayRecord(ctx, arg.UserId, arg.Date, func(record *scoring.DayRecord) error {
		if arg.Slot == scoring.FridayActivitySlot {
			record.SurahAlKahf = scoring.FridayActivityStatus(arg.Status)
		} else {
			record.SetStatus(scoring.PrayerType(arg.Slot), scoring.PrayerStatus(arg.Status))
		}
		return nil
	})

	if err != nil {
		return scoring.DayRecord{}, err
	}

	if err := p.cache.Set(ctx, versionKey(arg.UserId), uuid.NewString(), p.versionTTL()); err != nil {
		log.Ctx(ctx).Warn().Err(err).Caller().Msg("failed to bump prayer logs version in cache")
	}

	return record, nil
}

type PeriodParams struct {
	UserId string
	Period scoring.Period
	Mode   scoring.ScoringMode
}

type PeriodStatsResult struct {
	Period         scoring.Period
	Mode           scoring.ScoringMode
	StartDate      string
	EndDate        string
	DaysTrackedCap int
	Stats          scoring.PeriodStats
	CompositeScore float64
}

func (p prayer) periodStats(ctx context.Context, member Member, period scoring.Period, mode scoring.ScoringMode) (PeriodStatsResult, error) {
	now := p.localNow(ctx, member)
	startDate, endDate := scoring.PeriodRange(period, now)

	records, err := p.loadRecords(ctx, member.Id, startDate, endDate)
	if err != nil {
		return PeriodStatsResult{}, err
	}

	daysTrackedCap := scoring.DaysTrackedCap(period, now)
	stats := scoring.CalculatePeriodStats(records, mode, endDate)

	return PeriodStatsResult{
		Period:         period,
		Mode:           mode,
		StartDate:      startDate,
		EndDate:        endDate,
		DaysTrackedCap: daysTrackedCap,
		Stats:          stats,
		CompositeScore: scoring.CalculateCompositeScore(stats, daysTrackedCap, mode),
	}, nil
}

func (p prayer) GetPeriodStats(ctx context.Context, arg PeriodParams) (PeriodStatsResult, error) {
	member, err := p.store.SelectMember(ctx, arg.UserId)
	if err != nil {
		return PeriodStatsResult{}, err
	}

	return p.periodStats(ctx, member, arg.Period, arg.Mode)
}

type TrendKind string

const (
	DailyTrend      TrendKind = "daily"
	CumulativeTrend TrendKind = "cumulative"
)

type TrendParams struct {
	UserId string
	Kind   TrendKind
	Period scoring.Period
	Mode   scoring.ScoringMode
}

func (p prayer) GetTrend(ctx context.Context, arg TrendParams) ([]scoring.TrendPoint, error) {
	member, err := p.store.SelectMember(ctx, arg.UserId)
	if err != nil {
		return nil, err
	}

	now := p.localNow(ctx, member)
	startDate, endDate := scoring.PeriodRange(arg.Period, now)

	records, err := p.loadRecords(ctx, member.Id, startDate, endDate)
	if err != nil {
		return nil, err
	}

	if arg.Kind == CumulativeTrend {
		return scoring.BuildCumulativeTrend(records, arg.Mode, scoring.DaysTrackedCap(arg.Period, now)), nil
	}
	return scoring.BuildDailyTrend(records, arg.Mode), nil
}

type LeaderboardScope string

const (
	FriendsScope LeaderboardScope = "friends"
	GlobalScope  LeaderboardScope = "global"
)

type LeaderboardParams struct {
	UserId string
	Scope  LeaderboardScope
	Period scoring.Period
	Mode   scoring.ScoringMode
}

type LeaderboardEntry struct {
	Rank           int
	Member         Member
	IsCurrentUser  bool
	CompositeScore float64
	Stats          scoring.PeriodStats
}

func (p prayer) leaderboardMembers(ctx context.Context, arg LeaderboardParams) ([]Member, error) {
	if arg.Scope == GlobalScope {
		return p.store.SelectMembers(ctx, p.leaderboardLimit)
	}

	self, err := p.store.SelectMember(ctx, arg.UserId)
	if err != nil {
		return nil, err
	}

	friends, err := p.store.SelectFriends(ctx, arg.UserId)
	if err != nil {
		return nil, err
	}

	return append([]Member{self}, friends...), nil
}

// GetLeaderboard ranks members by composite score, then average score, then
// name. A member whose logs cannot be fetched ranks with empty stats.
func (p prayer) GetLeaderboard(ctx context.Context, arg LeaderboardParams) ([]LeaderboardEntry, error) {
	members, err := p.leaderboardMembers(ctx, arg)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(members))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(leaderboardConcurrency)

	for i, member := range members {
		group.Go(func() error {
			result, err := p.periodStats(groupCtx, member, arg.Period, arg.Mode)
			if err != nil {
				log.Ctx(ctx).Warn().Err(err).Caller().Str("user_id", member.Id).Msg("failed to compute leaderboard entry")
			}

			entries[i] = LeaderboardEntry{
				Member:         member,
				IsCurrentUser:  member.Id == arg.UserId,
				CompositeScore: result.CompositeScore,
				Stats:          result.Stats,
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(entries, func(a, b LeaderboardEntry) int {
		if c := cmp.Compare(b.CompositeScore, a.CompositeScore); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Stats.AverageScore, a.Stats.AverageScore); c != 0 {
			return c
		}
		return cmp.Compare(a.Member.Name, b.Member.Name)
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}
