package valley

import (
	"testing"

	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/world"
)

func front(w *World) world.Point {
	return w.Player.Front()
}

func TestHarvestMatureCrop(t *testing.T) {
	w := clearWorld(t)
	tile, _ := w.TileAt(front(w))
	tile.IsTilled = true
	tile.Crop = &world.Crop{ProduceID: catalog.Parsnip, Stage: 4}

	if err := w.Harvest(front(w)); err != nil {
		t.Fatalf("harvest: %v", err)
	}
	if tile.Crop != nil || tile.IsTilled {
		t.Fatalf("expected crop and tilled flag cleared, got %+v", tile)
	}
	if got := w.Player.Inventory.Count(catalog.Parsnip); got != 1 {
		t.Fatalf("expected exactly one parsnip, got %d", got)
	}
}

func TestHarvestSkipsImmatureAndDeadCrops(t *testing.T) {
	w := clearWorld(t)
	tile, _ := w.TileAt(front(w))
	tile.IsTilled = true
	tile.Crop = &world.Crop{ProduceID: catalog.Parsnip, Stage: 3}
	if err := w.Harvest(front(w)); err != ErrNoEffect {
		t.Fatalf("immature crop should not harvest")
	}
	tile.Crop = &world.Crop{ProduceID: catalog.Parsnip, Stage: 4, Dead: true}
	if err := w.Harvest(front(w)); err != ErrNoEffect {
		t.Fatalf("dead crop should not harvest")
	}
}

func TestHarvestWithFullInventoryKeepsCrop(t *testing.T) {
	w := clearWorld(t)
	fillInventory(w, catalog.Stone)
	tile, _ := w.TileAt(front(w))
	tile.IsTilled = true
	tile.Crop = &world.Crop{ProduceID: catalog.Parsnip, Stage: 4}

	err := w.Harvest(front(w))
	if rej, ok := err.(*Rejection); !ok || rej.Reason != MsgInventoryFull {
		t.Fatalf("expected full rejection, got %v", err)
	}
	if tile.Crop == nil || !tile.IsTilled {
		t.Fatalf("crop must stay when the harvest is rejected")
	}
}

func TestBreakAndClear(t *testing.T) {
	w := clearWorld(t)
	tile, _ := w.TileAt(front(w))

	tile.SetObject(catalog.StoneNode)
	if err := w.Clear(front(w)); err != ErrNoEffect {
		t.Fatalf("clear must not remove a stone node")
	}
	if err := w.Break(front(w)); err != nil {
		t.Fatalf("break: %v", err)
	}
	if tile.HasObject() || w.Player.Inventory.Count(catalog.Stone) != 1 {
		t.Fatalf("expected node removed and stone collected")
	}

	tile.SetObject(catalog.Weed)
	if err := w.Clear(front(w)); err != nil {
		t.Fatalf("clear weed: %v", err)
	}
	if tile.HasObject() || w.Player.Inventory.Count(catalog.Fiber) != 1 {
		t.Fatalf("expected weed removed and fiber collected")
	}

	tile.SetObject(catalog.Daffodil)
	if err := w.Clear(front(w)); err != nil {
		t.Fatalf("clear flower: %v", err)
	}
	if w.Player.Inventory.Count(catalog.Daffodil) != 1 {
		t.Fatalf("expected daffodil picked")
	}
}

func TestBreakWithFullInventoryKeepsObstacle(t *testing.T) {
	w := clearWorld(t)
	fillInventory(w, catalog.Wood)
	tile, _ := w.TileAt(front(w))
	tile.SetObject(catalog.IronNode)
	if err := w.Break(front(w)); err == nil {
		t.Fatalf("expected rejection")
	}
	if id, ok := tile.Object(); !ok || id != catalog.IronNode {
		t.Fatalf("node must stay")
	}
}

func TestPlaceContainerConsumesOne(t *testing.T) {
	w := clearWorld(t)
	selectItem(t, w, catalog.Chest)
	if err := w.PlaceContainer(front(w)); err != nil {
		t.Fatalf("place: %v", err)
	}
	tile, _ := w.TileAt(front(w))
	if id, ok := tile.Object(); !ok || id != catalog.Chest {
		t.Fatalf("expected chest on tile")
	}
	if w.Player.Inventory.Count(catalog.Chest) != 0 {
		t.Fatalf("expected chest consumed")
	}
	if tile.Walkable() {
		t.Fatalf("chest must block movement")
	}
}

func TestPlantSelectedUsesSeedOnlyOnSuccess(t *testing.T) {
	w := clearWorld(t)
	selectItem(t, w, catalog.ParsnipSeeds)
	tile, _ := w.TileAt(front(w))
	tile.Type = world.TileDirt
	tile.IsTilled = true

	w.Clock.SeasonIndex = 1
	if err := w.PlantSelected(front(w)); err == nil {
		t.Fatalf("expected summer rejection")
	}
	if tile.Crop != nil || w.Player.Inventory.Count(catalog.ParsnipSeeds) != 5 {
		t.Fatalf("rejected planting must not change tile or seeds")
	}

	w.Clock.SeasonIndex = 0
	if err := w.PlantSelected(front(w)); err != nil {
		t.Fatalf("plant: %v", err)
	}
	if tile.Crop == nil || w.Player.Inventory.Count(catalog.ParsnipSeeds) != 4 {
		t.Fatalf("expected crop planted and one seed used")
	}
}

func TestShipSellsWholeStack(t *testing.T) {
	w := clearWorld(t)
	w.Player.Inventory[10] = &ItemStack{ItemID: catalog.Parsnip, Count: 3}
	w.Player.SelectedSlot = 10
	if err := w.Ship(); err != nil {
		t.Fatalf("ship: %v", err)
	}
	if w.Player.Money != StartingMoney+3*35 || w.Player.Inventory[10] != nil {
		t.Fatalf("unexpected money %d", w.Player.Money)
	}
	if len(w.Feedback.Floating) != 1 || w.Feedback.Floating[0].Text != "+ 105 g" {
		t.Fatalf("expected floating gold text, got %+v", w.Feedback.Floating)
	}

	selectItem(t, w, catalog.Hoe)
	if err := w.Ship(); err != ErrNoEffect {
		t.Fatalf("tools cannot be shipped")
	}
}

func TestBuy(t *testing.T) {
	w := clearWorld(t)
	if err := w.Buy(catalog.ParsnipSeeds); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if w.Player.Money != 30 || w.Player.Inventory.Count(catalog.ParsnipSeeds) != 6 {
		t.Fatalf("unexpected state money=%d", w.Player.Money)
	}
	if err := w.Buy(catalog.PotatoSeeds); err == nil {
		t.Fatalf("expected not enough gold")
	}
	if err := w.Buy(catalog.Hoe); err != ErrNoEffect {
		t.Fatalf("hoe is not sold")
	}
}

func TestConsume(t *testing.T) {
	w := clearWorld(t)
	w.Player.Energy = 90
	w.Player.Inventory[10] = &ItemStack{ItemID: catalog.Parsnip, Count: 1}
	if err := w.Consume(10); err != nil {
		t.Fatalf("consume: %v", err)
	}
	if w.Player.Energy != MaxEnergy || w.Player.Inventory[10] != nil {
		t.Fatalf("expected capped energy and emptied slot, energy=%d", w.Player.Energy)
	}
	err := w.Consume(0)
	if rej, ok := err.(*Rejection); !ok || rej.Reason != MsgNotEdible {
		t.Fatalf("expected not edible, got %v", err)
	}
}
