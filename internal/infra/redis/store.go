package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mcq-trainer/internal/domain"
)

const (
	resultsKey = "trainer:results"
	themeKey   = "trainer:theme"
)

// Store keeps the results blob and theme preference under two independent
// Redis keys. A TTL of zero means the keys never expire; a positive TTL
// is refreshed on every write.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) LoadResults(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, resultsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrResultsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	return data, nil
}

func (s *Store) SaveResults(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, resultsKey, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	return nil
}

func (s *Store) LoadTheme(ctx context.Context) (domain.Theme, error) {
	value, err := s.client.Get(ctx, themeKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrThemeNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}
	return domain.Theme(value), nil
}

func (s *Store) SaveTheme(ctx context.Context, theme domain.Theme) error {
	if err := s.client.Set(ctx, themeKey, string(theme), s.ttl).Err(); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
