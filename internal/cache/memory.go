package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

type Memory struct {
	store *ristretto.Cache[string, []byte]
}

// NewMemory returns an in-process cache bounded to maxBytes of encoded values.
func NewMemory(maxBytes int64) (*Memory, error) {
	store, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 10 * maxBytes / 1024,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create memory cache: %w", err)
	}

	return &Memory{store: store}, nil
}

func (m *Memory) Get(_ context.Context, key string, dst any) (bool, error) {
	data, ok := m.store.Get(key)
	if !ok {
		return false, nil
	}

	if err := decode(data, dst); err != nil {
		return false, err
	}

	return true, nil
}

func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := encode(value)
	if err != nil {
		return err
	}

	m.store.SetWithTTL(key, data, int64(len(data)), ttl)
	// Writes are buffered; wait so a following Get sees them.
	m.store.Wait()
	return nil
}

func (m *Memory) Close() {
	m.store.Close()
}
