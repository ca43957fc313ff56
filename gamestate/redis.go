package gamestate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "quickplay:game:"

// RedisStore keeps anonymous game state in redis with a TTL refreshed on
// every save
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore builds a store over an existing redis client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(token string) (*GameState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game state: %w", err)
	}

	var state GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode game state: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Save(state *GameState, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode game state: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+state.Token, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store game state: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete game state: %w", err)
	}
	return nil
}
