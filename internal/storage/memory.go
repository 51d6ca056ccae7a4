package storage

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mdayat/prayer-tracker/internal/scoring"
	"github.com/mdayat/prayer-tracker/internal/services"
)

// MemoryStore keeps everything in process. It backs the server when no
// database is configured and is the store of the handler tests.
type MemoryStore struct {
	mu      sync.RWMutex
	members map[string]services.Member
	friends map[string][]string
	records map[string]scoring.DayRecords
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		members: make(map[string]services.Member),
		friends: make(map[string][]string),
		records: make(map[string]scoring.DayRecords),
	}
}

func (m *MemoryStore) AddMember(member services.Member) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.members[member.Id] = member
	if _, ok := m.records[member.Id]; !ok {
		m.records[member.Id] = scoring.DayRecords{}
	}
}

func (m *MemoryStore) AddFriendship(userId, friendId string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.Contains(m.friends[userId], friendId) {
		m.friends[userId] = append(m.friends[userId], friendId)
	}
	if !slices.Contains(m.friends[friendId], userId) {
		m.friends[friendId] = append(m.friends[friendId], userId)
	}
}

// PutDayRecord replaces a whole day, for seeding.
func (m *MemoryStore) PutDayRecord(userId, date string, record scoring.DayRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.records[userId] == nil {
		m.records[userId] = scoring.DayRecords{}
	}
	m.records[userId][date] = record
}

func (m *MemoryStore) SelectDayRecords(_ context.Context, userId, startDate, endDate string) (scoring.DayRecords, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.members[userId]; !ok {
		return nil, services.ErrUserNotFound
	}

	records := scoring.DayRecords{}
	for date, record := range m.records[userId] {
		if date >= startDate && date <= endDate {
			records[date] = record
		}
	}
	return records, nil
}

func (m *MemoryStore) UpdateDayRecord(
	_ context.Context,
	userId, date string,
	update func(record *scoring.DayRecord) error,
) (scoring.DayRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.members[userId]; !ok {
		return scoring.DayRecord{}, services.ErrUserNotFound
	}

	record := m.records[userId][date]
	if err := update(&record); err != nil {
		return scoring.DayRecord{}, err
	}

	if record.IsEmpty() {
		delete(m.records[userId], date)
		return scoring.DayRecord{}, nil
	}

	record.UpdatedAt = time.Now()
	m.records[userId][date] = record
	return record, nil
}

func (m *MemoryStore) SelectMember(_ context.Context, userId string) (services.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	member, ok := m.members[userId]
	if !ok {
		return services.Member{}, services.ErrUserNotFound
	}
	return member, nil
}

func (m *MemoryStore) SelectFriends(_ context.Context, userId string) ([]services.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	friends := make([]services.Member, 0, len(m.friends[userId]))
	for _, friendId := range m.friends[userId] {
		if member, ok := m.members[friendId]; ok {
			friends = append(friends, member)
		}
	}

	slices.SortFunc(friends, func(a, b services.Member) int {
		return strings.Compare(a.Name, b.Name)
	})
	return friends, nil
}

func (m *MemoryStore) SelectMembers(_ context.Context, limit int) ([]services.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	members := make([]services.Member, 0, len(m.members))
	for _, member := range m.members {
		members = append(members, member)
	}

	slices.SortFunc(members, func(a, b services.Member) int {
		return strings.Compare(a.Id, b.Id)
	})

	if limit > 0 && len(members) > limit {
		members = members[:limit]
	}
	return members, nil
}
