package valley

import (
	"fmt"

	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/world"
)

// Harvest picks a mature crop at p. A full inventory rejects the harvest and
// leaves the crop in place.
func (w *World) Harvest(p world.Point) error {
	t, ok := w.TileAt(p)
	if !ok || !Harvestable(t) {
		return ErrNoEffect
	}
	produce := t.Crop.ProduceID
	if !w.Player.Inventory.CanAdd(produce) {
		return reject(MsgInventoryFull, ShortMessage)
	}
	w.Player.Inventory.Add(produce, 1)
	t.Crop = nil
	t.IsTilled = false
	t.IsWatered = false
	w.Feedback.Float(w.CurrentScene, p.X, p.Y, "+1 "+catalog.Name(produce), "white")
	return nil
}

// Break removes any obstacle and collects its drop.
func (w *World) Break(p world.Point) error {
	t, ok := w.TileAt(p)
	if !ok {
		return ErrNoEffect
	}
	obs, ok := obstacleOn(t)
	if !ok {
		return ErrNoEffect
	}
	return w.removeObject(t, obs.Drop)
}

// Clear cuts soft obstacles, picks up forage and removes dead crops.
func (w *World) Clear(p world.Point) error {
	t, ok := w.TileAt(p)
	if !ok {
		return ErrNoEffect
	}
	if t.Crop != nil && t.Crop.Dead {
		t.Crop = nil
		return nil
	}
	if obs, ok := obstacleOn(t); ok {
		if !obs.Soft {
			return ErrNoEffect
		}
		return w.removeObject(t, obs.Drop)
	}
	id, ok := t.Object()
	if !ok {
		return ErrNoEffect
	}
	if item, ok := catalog.Lookup(id); ok && item.Category() == catalog.CategoryResource {
		return w.removeObject(t, id)
	}
	return ErrNoEffect
}

func obstacleOn(t *world.Tile) (catalog.Obstacle, bool) {
	id, ok := t.Object()
	if !ok {
		return catalog.Obstacle{}, false
	}
	item, ok := catalog.Lookup(id)
	if !ok {
		return catalog.Obstacle{}, false
	}
	obs, ok := item.(catalog.Obstacle)
	return obs, ok
}

// removeObject clears the tile's object and collects drop. The drop is
// reserved first so nothing is lost to a full inventory.
func (w *World) removeObject(t *world.Tile, drop catalog.ID) error {
	_, hasDrop := catalog.Lookup(drop)
	if hasDrop && !w.Player.Inventory.CanAdd(drop) {
		return reject(MsgInventoryFull, ShortMessage)
	}
	t.ClearObject()
	if hasDrop {
		w.Player.Inventory.Add(drop, 1)
	}
	return nil
}

// PlaceContainer puts the selected container item on an empty tile.
func (w *World) PlaceContainer(p world.Point) error {
	sel := w.Player.Selected()
	if sel == nil {
		return ErrNoEffect
	}
	item, ok := catalog.Lookup(sel.ItemID)
	if !ok {
		return ErrNoEffect
	}
	if _, ok := item.(catalog.Container); !ok {
		return ErrNoEffect
	}
	t, ok := w.TileAt(p)
	if !ok || t.HasObject() || t.Crop != nil || t.Warp != nil || !t.Walkable() {
		return ErrNoEffect
	}
	if w.occupied(p) {
		return ErrNoEffect
	}
	t.SetObject(sel.ItemID)
	w.Player.Inventory.Take(w.Player.SelectedSlot, 1)
	return nil
}

// PlantSelected plants one seed from the selected slot at p.
func (w *World) PlantSelected(p world.Point) error {
	sel := w.Player.Selected()
	if sel == nil {
		return ErrNoEffect
	}
	item, ok := catalog.Lookup(sel.ItemID)
	if !ok {
		return ErrNoEffect
	}
	seed, ok := item.(catalog.Seed)
	if !ok {
		return ErrNoEffect
	}
	t, ok := w.TileAt(p)
	if !ok {
		return ErrNoEffect
	}
	if err := Plant(t, seed, w.Clock.Season()); err != nil {
		return err
	}
	w.Player.Inventory.Take(w.Player.SelectedSlot, 1)
	return nil
}

func (w *World) occupied(p world.Point) bool {
	if w.Player.X == p.X && w.Player.Y == p.Y {
		return true
	}
	if _, ok := w.NPCAt(w.CurrentScene, p); ok {
		return true
	}
	_, ok := w.MonsterAt(w.CurrentScene, p)
	return ok
}

// Ship sells the whole selected stack.
func (w *World) Ship() error {
	sel := w.Player.Selected()
	if sel == nil {
		return ErrNoEffect
	}
	price := catalog.SellPrice(sel.ItemID)
	if price <= 0 {
		return ErrNoEffect
	}
	total := price * sel.Count
	w.Player.Money += total
	w.Player.Inventory[w.Player.SelectedSlot] = nil
	front := w.Player.Front()
	w.Feedback.Float(w.CurrentScene, front.X, front.Y, fmt.Sprintf("+ %d g", total), "gold")
	return nil
}

// Buy purchases one unit of a shop item.
func (w *World) Buy(id catalog.ID) error {
	if !catalog.InShop(id) {
		return ErrNoEffect
	}
	item, ok := catalog.Lookup(id)
	if !ok {
		return ErrNoEffect
	}
	price := item.Info().Price
	if w.Player.Money < price {
		return reject(MsgNotEnoughGold, ShortMessage)
	}
	if !w.Player.Inventory.CanAdd(id) {
		return reject(MsgInventoryFull, ShortMessage)
	}
	w.Player.Money -= price
	w.Player.Inventory.Add(id, 1)
	return nil
}

// Consume eats one unit from a slot.
func (w *World) Consume(slot int) error {
	st := w.Player.Inventory.At(slot)
	if st == nil {
		return ErrNoEffect
	}
	restore, ok := catalog.Edible(st.ItemID)
	if !ok {
		return reject(MsgNotEdible, ShortMessage)
	}
	w.Player.Energy = min(w.Player.MaxEnergy, w.Player.Energy+restore)
	w.Player.Inventory.Take(slot, 1)
	w.Feedback.Float(w.CurrentScene, w.Player.X, w.Player.Y, fmt.Sprintf("+ %d Energy", restore), "lime")
	return nil
}
