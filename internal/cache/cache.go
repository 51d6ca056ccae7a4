package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Cache is a read-through store for values that can be recomputed at any time.
// A miss is never an error.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type noop struct{}

// NewNoop returns a cache that never stores anything.
func NewNoop() Cache {
	return noop{}
}

func (noop) Get(_ context.Context, _ string, _ any) (bool, error) {
	return false, nil
}

func (noop) Set(_ context.Context, _ string, _ any, _ time.Duration) error {
	return nil
}

func encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cache value: %w", err)
	}
	return data, nil
}

func decode(data []byte, dst any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode cache value: %w", err)
	}
	return nil
}
