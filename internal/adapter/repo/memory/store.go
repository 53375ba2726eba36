package memory

import (
	"context"
	"sync"

	"ogvalley/internal/app/ports"
	"ogvalley/internal/domain/valley"
)

// Store keeps saves in process memory. Values are deep-copied on the way in
// and out so callers never share grids with the store.
type Store struct {
	mu    sync.RWMutex
	saves map[string]valley.SaveData
}

func NewStore() *Store {
	return &Store{saves: make(map[string]valley.SaveData)}
}

func (s *Store) Load(_ context.Context, key string) (valley.SaveData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.saves[key]
	if !ok {
		return valley.SaveData{}, ports.ErrNotFound
	}
	return data.Clone(), nil
}

func (s *Store) Save(_ context.Context, key string, data valley.SaveData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[key] = data.Clone()
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saves, key)
	return nil
}
