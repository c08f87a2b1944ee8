package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix so Clear never touches keys owned by anything else
	timerKeyPrefix = "tms:timer:"
)

// Config holds configuration for the Redis local store
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisStore implements the Store interface using Redis
type redisStore struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed local store
func NewRedis(cfg *Config) (*redisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{
		client: cfg.RedisClient,
	}, nil
}

// Get retrieves a value by key
func (s *redisStore) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.New("input and key cannot be empty")
	}

	value, err := s.client.Get(ctx, timerKeyPrefix+input.Key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &GetOutput{Found: false}, nil
		}
		return nil, fmt.Errorf("failed to get key %q: %w", input.Key, err)
	}

	return &GetOutput{Value: value, Found: true}, nil
}

// Set stores a value under a key with no expiration; entries only leave
// the store through Remove or Clear
func (s *redisStore) Set(ctx context.Context, input *SetInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	if err := s.client.Set(ctx, timerKeyPrefix+input.Key, input.Value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q: %w", input.Key, err)
	}

	return nil
}

// Remove deletes a key
func (s *redisStore) Remove(ctx context.Context, input *RemoveInput) error {
	if input == nil || input.Key == "" {
		return errors.New("input and key cannot be empty")
	}

	if err := s.client.Del(ctx, timerKeyPrefix+input.Key).Err(); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", input.Key, err)
	}

	return nil
}

// Clear deletes every key under the store's prefix
func (s *redisStore) Clear(ctx context.Context, input *ClearInput) error {
	iter := s.client.Scan(ctx, 0, timerKeyPrefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear keys: %w", err)
	}

	return nil
}
