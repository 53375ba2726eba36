package valley

import (
	"testing"

	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/world"
)

// fixedRand always returns the same roll.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }
func (r fixedRand) Intn(n int) int   { return int(float64(r) * float64(n)) }

// clearWorld is a fresh world without random debris.
func clearWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(world.DefaultClock(), fixedRand(0.99))
}

func tileAt(t *testing.T, w *World, scene world.Scene, x, y int) *world.Tile {
	t.Helper()
	tile, ok := w.Grids[scene].At(x, y)
	if !ok {
		t.Fatalf("no tile at %s %d,%d", scene, x, y)
	}
	return tile
}

func selectItem(t *testing.T, w *World, id catalog.ID) {
	t.Helper()
	for i, st := range w.Player.Inventory {
		if st != nil && st.ItemID == id {
			w.Player.SelectedSlot = i
			return
		}
	}
	t.Fatalf("item %d not in inventory", id)
}

func fillInventory(w *World, id catalog.ID) {
	for i := range w.Player.Inventory {
		w.Player.Inventory[i] = &ItemStack{ItemID: id, Count: 1}
	}
}
