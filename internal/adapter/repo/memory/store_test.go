package memory

import (
	"context"
	"errors"
	"testing"

	"ogvalley/internal/app/ports"
	"ogvalley/internal/domain/valley"
	"ogvalley/internal/domain/world"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }
func (r fixedRand) Intn(n int) int   { return int(float64(r) * float64(n)) }

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	if _, err := s.Load(ctx, valley.SaveKey); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	data := valley.NewWorld(world.DefaultClock(), fixedRand(0.99)).Save()
	data.Player.Money = 321
	if err := s.Save(ctx, valley.SaveKey, data); err != nil {
		t.Fatalf("save: %v", err)
	}
	data.Player.Money = 0
	data.Grids[world.SceneFarm][0][0].IsTilled = true

	got, err := s.Load(ctx, valley.SaveKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Player.Money != 321 || got.Grids[world.SceneFarm][0][0].IsTilled {
		t.Fatalf("store kept a reference to the caller's data")
	}

	if err := s.Delete(ctx, valley.SaveKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Load(ctx, valley.SaveKey); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
