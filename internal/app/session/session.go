// Package session owns the live World and is the only way to reach it.
// Intents and ticks each run to completion under one lock, so no handler
// observes a half-applied transition.
package session

import (
	"context"
	"sync"

	"ogvalley/internal/domain/valley"
)

type Session struct {
	mu    sync.Mutex
	world *valley.World
}

func New(w *valley.World) *Session {
	return &Session{world: w}
}

func (s *Session) Do(ctx context.Context, fn func(w *valley.World) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.world)
}

// Replace swaps in a whole new World, as load and reset do.
func (s *Session) Replace(w *valley.World) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world = w
}

// Snapshot returns a deep copy that is safe to read without the lock.
func (s *Session) Snapshot() *valley.World {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Clone()
}
