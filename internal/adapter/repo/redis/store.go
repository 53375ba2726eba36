package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"ogvalley/internal/app/ports"
	"ogvalley/internal/domain/valley"
)

const keyPrefix = "ogvalley:save:"

// Store keeps each save as one JSON string value. Saves never expire.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Dial connects to addr and checks the server answers.
func Dial(ctx context.Context, addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &Store{client: client}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Load(ctx context.Context, key string) (valley.SaveData, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return valley.SaveData{}, ports.ErrNotFound
	}
	if err != nil {
		return valley.SaveData{}, fmt.Errorf("redis get: %w", err)
	}
	var data valley.SaveData
	if err := json.Unmarshal(raw, &data); err != nil {
		return valley.SaveData{}, fmt.Errorf("%w: %v", valley.ErrMalformedSave, err)
	}
	return data, nil
}

func (s *Store) Save(ctx context.Context, key string, data valley.SaveData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+key, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
