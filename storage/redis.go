package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisTier stores record entries as plain Redis strings. Useful when the
// long-lived tier should be shared across hosts (kiosk fleets, test rigs).
type RedisTier struct {
	client *redis.Client
}

// NewRedisTier wraps an existing client. The tier does not own the client and
// never closes it.
func NewRedisTier(client *redis.Client) (*RedisTier, error) {
	if client == nil {
		return nil, errors.New("redis tier: client required")
	}
	return &RedisTier{client: client}, nil
}

func (r *RedisTier) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis tier get: %w: %w", ErrTierUnavailable, err)
	}
	return value, nil
}

func (r *RedisTier) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis tier set: %w: %w", ErrTierUnavailable, err)
	}
	return nil
}

func (r *RedisTier) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis tier remove: %w: %w", ErrTierUnavailable, err)
	}
	return nil
}
