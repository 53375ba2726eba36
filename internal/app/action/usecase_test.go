package action

import (
	"testing"

	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/valley"
	"ogvalley/internal/domain/world"
)

func TestMoveStepsAndEmitsCue(t *testing.T) {
	h := newHarness(t)
	resp := h.exec(t, Intent{Type: IntentMove, Direction: "RIGHT"})
	if resp.Outcome != OutcomeApplied || !hasCue(resp.Cues, valley.CueStep) {
		t.Fatalf("unexpected response %+v", resp)
	}
	if got := h.world().Player.Pos(); got != (world.Point{X: 9, Y: 6}) {
		t.Fatalf("expected 9,6, got %+v", got)
	}
	if h.metrics.outcomes["move:applied"] != 1 {
		t.Fatalf("expected outcome metric, got %+v", h.metrics.outcomes)
	}
}

func TestMoveIgnoredOutsidePlaying(t *testing.T) {
	h := newHarness(t)
	h.exec(t, Intent{Type: IntentToggleInventory})
	resp := h.exec(t, Intent{Type: IntentMove, Direction: "RIGHT"})
	if resp.Outcome != OutcomeNoop {
		t.Fatalf("expected noop, got %s", resp.Outcome)
	}
	if h.world().Player.X != 8 {
		t.Fatalf("player moved while in inventory")
	}
}

func TestTillWaterPlantHarvestLoop(t *testing.T) {
	h := newHarness(t)
	w := h.world()

	h.exec(t, Intent{Type: IntentSelectSlot, Slot: slotOf(t, w, catalog.Hoe)})
	resp := h.exec(t, Intent{Type: IntentInteract})
	if resp.Outcome != OutcomeApplied || !hasCue(resp.Cues, valley.CueTill) || !hasCue(resp.Cues, valley.CueSwing) {
		t.Fatalf("till: %+v", resp)
	}
	if h.world().Player.Energy != valley.MaxEnergy-2 {
		t.Fatalf("expected hoe energy spent, got %d", h.world().Player.Energy)
	}

	h.exec(t, Intent{Type: IntentSelectSlot, Slot: slotOf(t, w, catalog.WateringCan)})
	if resp := h.exec(t, Intent{Type: IntentInteract}); !hasCue(resp.Cues, valley.CueWater) {
		t.Fatalf("water: %+v", resp)
	}

	h.exec(t, Intent{Type: IntentSelectSlot, Slot: slotOf(t, w, catalog.ParsnipSeeds)})
	if resp := h.exec(t, Intent{Type: IntentInteract}); !hasCue(resp.Cues, valley.CuePlant) {
		t.Fatalf("plant: %+v", resp)
	}
	tile, _ := h.world().Grids[world.SceneFarm].At(8, 7)
	if tile.Crop == nil || !tile.Crop.IsWatered {
		t.Fatalf("expected watered crop, got %+v", tile)
	}

	h.mutate(t, func(w *valley.World) {
		tile, _ := w.Grids[world.SceneFarm].At(8, 7)
		tile.Crop.Stage = 4
	})
	resp = h.exec(t, Intent{Type: IntentInteract})
	if resp.Outcome != OutcomeApplied || !hasCue(resp.Cues, valley.CuePickup) {
		t.Fatalf("harvest: %+v", resp)
	}
	after := h.world()
	tile, _ = after.Grids[world.SceneFarm].At(8, 7)
	if tile.Crop != nil || tile.IsTilled {
		t.Fatalf("expected cleared tile, got %+v", tile)
	}
	if after.Player.Inventory.Count(catalog.Parsnip) != 1 {
		t.Fatalf("expected one parsnip")
	}
}

func TestToolRejectedWhenTooTired(t *testing.T) {
	h := newHarness(t)
	h.mutate(t, func(w *valley.World) {
		w.Player.Energy = 1
		w.Player.SelectedSlot = slotOf(t, w, catalog.Hoe)
	})
	resp := h.exec(t, Intent{Type: IntentInteract})
	if resp.Outcome != OutcomeRejected || resp.Message != valley.MsgTooTired {
		t.Fatalf("expected too tired, got %+v", resp)
	}
	w := h.world()
	tile, _ := w.Grids[world.SceneFarm].At(8, 7)
	if tile.IsTilled || w.Player.Energy != 1 {
		t.Fatalf("rejected action changed state")
	}
	if w.Feedback.Message == nil || w.Feedback.Message.Text != valley.MsgTooTired {
		t.Fatalf("expected message on world")
	}
}

func TestPlantingOutOfSeasonRejected(t *testing.T) {
	h := newHarness(t)
	h.mutate(t, func(w *valley.World) {
		w.Clock.SeasonIndex = 1
		tile, _ := w.Grids[world.SceneFarm].At(8, 7)
		tile.Type = world.TileDirt
		tile.IsTilled = true
		w.Player.SelectedSlot = slotOf(t, w, catalog.ParsnipSeeds)
	})
	resp := h.exec(t, Intent{Type: IntentInteract})
	if resp.Outcome != OutcomeRejected || resp.Message != valley.MsgWrongSeason {
		t.Fatalf("expected wrong season, got %+v", resp)
	}
	w := h.world()
	tile, _ := w.Grids[world.SceneFarm].At(8, 7)
	if tile.Crop != nil {
		t.Fatalf("crop planted out of season")
	}
	if w.Player.Inventory.Count(catalog.ParsnipSeeds) != 5 || w.Player.Energy != valley.MaxEnergy {
		t.Fatalf("seeds or energy changed")
	}
}

func TestAttackTakesPriority(t *testing.T) {
	h := newHarness(t)
	h.mutate(t, func(w *valley.World) {
		w.Relocate(world.SceneMine, world.Point{X: 8, Y: 7})
		w.Player.Facing = world.FacingDown
		w.Player.SelectedSlot = slotOf(t, w, catalog.RustySword)
	})
	resp := h.exec(t, Intent{Type: IntentInteract})
	if resp.Outcome != OutcomeApplied || !hasCue(resp.Cues, valley.CueSwing) {
		t.Fatalf("attack: %+v", resp)
	}
	w := h.world()
	if w.Monsters[0].HP != valley.SlimeHP-2 {
		t.Fatalf("expected 2 damage, hp=%d", w.Monsters[0].HP)
	}
	if len(w.Feedback.Floating) != 1 {
		t.Fatalf("expected damage text")
	}
}

func TestTalkOpensDialogueAndInteractCloses(t *testing.T) {
	h := newHarness(t)
	h.mutate(t, func(w *valley.World) {
		w.Relocate(world.SceneTown, world.Point{X: 9, Y: 5})
		w.Player.Facing = world.FacingRight
	})
	h.exec(t, Intent{Type: IntentInteract})
	w := h.world()
	if w.UIMode != valley.ModeDialogue || w.Dialogue == nil || w.NPCs[0].Affection != valley.AffectionPerTalk {
		t.Fatalf("expected dialogue with mayor, got mode=%s", w.UIMode)
	}
	h.exec(t, Intent{Type: IntentInteract})
	w = h.world()
	if w.UIMode != valley.ModePlaying || w.Dialogue != nil {
		t.Fatalf("expected dialogue closed")
	}
}

func TestChestOpenTransferAndClose(t *testing.T) {
	h := newHarness(t)
	h.mutate(t, func(w *valley.World) {
		w.Relocate(world.SceneHouse, world.Point{X: 3, Y: 5})
		w.Player.Facing = world.FacingLeft
	})
	h.exec(t, Intent{Type: IntentInteract})
	w := h.world()
	if w.UIMode != valley.ModeChest || w.ActiveContainer != "HOUSE_2_5" {
		t.Fatalf("expected chest open, got %s %q", w.UIMode, w.ActiveContainer)
	}
	if len(w.Containers["HOUSE_2_5"]) != valley.ContainerSize {
		t.Fatalf("expected lazily created container")
	}

	seeds := slotOf(t, w, catalog.ParsnipSeeds)
	if r := h.exec(t, Intent{Type: IntentTransfer, Slot: seeds, Source: SourcePlayer}); r.Outcome != OutcomeApplied {
		t.Fatalf("pickup: %+v", r)
	}
	if r := h.exec(t, Intent{Type: IntentTransfer, Slot: 0, Source: SourceContainer}); r.Outcome != OutcomeApplied {
		t.Fatalf("place: %+v", r)
	}
	w = h.world()
	if st := w.Containers["HOUSE_2_5"][0]; st == nil || st.ItemID != catalog.ParsnipSeeds || st.Count != 5 {
		t.Fatalf("expected seeds in chest, got %+v", st)
	}
	if w.Player.CursorItem != nil || w.Player.Inventory[seeds] != nil {
		t.Fatalf("expected seeds moved out of inventory")
	}

	h.exec(t, Intent{Type: IntentToggleInventory})
	w = h.world()
	if w.UIMode != valley.ModePlaying || w.ActiveContainer != "" {
		t.Fatalf("expected chest closed")
	}
	if r := h.exec(t, Intent{Type: IntentTransfer, Slot: 0, Source: SourceContainer}); r.Outcome != OutcomeNoop {
		t.Fatalf("container transfer without an open chest should be a noop")
	}
}

func TestShopBuy(t *testing.T) {
	h := newHarness(t)
	if r := h.exec(t, Intent{Type: IntentBuy, ItemID: catalog.ParsnipSeeds}); r.Outcome != OutcomeNoop {
		t.Fatalf("buy outside the shop should be a noop")
	}
	h.mutate(t, func(w *valley.World) {
		w.Player.X, w.Player.Y = 6, 3
		w.Player.Facing = world.FacingLeft
	})
	h.exec(t, Intent{Type: IntentInteract})
	if h.world().UIMode != valley.ModeShop {
		t.Fatalf("mailbox should open the shop")
	}
	if r := h.exec(t, Intent{Type: IntentBuy, ItemID: catalog.ParsnipSeeds}); r.Outcome != OutcomeApplied {
		t.Fatalf("buy: %+v", r)
	}
	if r := h.exec(t, Intent{Type: IntentBuy, ItemID: catalog.PotatoSeeds}); r.Outcome != OutcomeRejected || r.Message != valley.MsgNotEnoughGold {
		t.Fatalf("expected not enough gold, got %+v", r)
	}
	w := h.world()
	if w.Player.Money != 30 || w.Player.Inventory.Count(catalog.ParsnipSeeds) != 6 {
		t.Fatalf("unexpected money=%d", w.Player.Money)
	}
	h.exec(t, Intent{Type: IntentClose})
	if h.world().UIMode != valley.ModePlaying {
		t.Fatalf("close should return to playing")
	}
}

func TestShippingBin(t *testing.T) {
	h := newHarness(t)
	h.mutate(t, func(w *valley.World) {
		w.Player.X, w.Player.Y = 6, 2
		w.Player.Facing = world.FacingLeft
		w.Player.Inventory[12] = &valley.ItemStack{ItemID: catalog.CopperOre, Count: 2}
		w.Player.SelectedSlot = 12
	})
	h.exec(t, Intent{Type: IntentInteract})
	w := h.world()
	if w.Player.Money != valley.StartingMoney+10 || w.Player.Inventory[12] != nil {
		t.Fatalf("expected shipped ore, money=%d", w.Player.Money)
	}
}

func TestTapAdjacentFacesAndInteracts(t *testing.T) {
	h := newHarness(t)
	h.mutate(t, func(w *valley.World) {
		w.Player.SelectedSlot = slotOf(t, w, catalog.Hoe)
	})
	if r := h.exec(t, Intent{Type: IntentTap, X: 10, Y: 6}); r.Outcome != OutcomeNoop {
		t.Fatalf("far tap should be a noop")
	}
	r := h.exec(t, Intent{Type: IntentTap, X: 8, Y: 5})
	if r.Outcome != OutcomeApplied {
		t.Fatalf("tap: %+v", r)
	}
	w := h.world()
	tile, _ := w.Grids[world.SceneFarm].At(8, 5)
	if w.Player.Facing != world.FacingUp || !tile.IsTilled {
		t.Fatalf("expected facing up and tilled tile")
	}
}

func TestConsumeAndDropCursor(t *testing.T) {
	h := newHarness(t)
	h.mutate(t, func(w *valley.World) {
		w.Player.Energy = 50
		w.Player.Inventory[15] = &valley.ItemStack{ItemID: catalog.Parsnip, Count: 2}
	})
	if r := h.exec(t, Intent{Type: IntentConsume, Slot: 15}); r.Outcome != OutcomeApplied {
		t.Fatalf("consume: %+v", r)
	}
	if r := h.exec(t, Intent{Type: IntentConsume, Slot: 0}); r.Outcome != OutcomeRejected || r.Message != valley.MsgNotEdible {
		t.Fatalf("expected not edible, got %+v", r)
	}
	w := h.world()
	if w.Player.Energy != 75 || w.Player.Inventory[15].Count != 1 {
		t.Fatalf("unexpected energy=%d", w.Player.Energy)
	}

	h.exec(t, Intent{Type: IntentTransfer, Slot: 15})
	if h.world().Player.CursorItem == nil {
		t.Fatalf("expected parsnip on cursor")
	}
	h.exec(t, Intent{Type: IntentDropCursor})
	if h.world().Player.CursorItem != nil {
		t.Fatalf("cursor not cleared")
	}
}

func TestTooltipAndPause(t *testing.T) {
	h := newHarness(t)
	h.exec(t, Intent{Type: IntentShowTooltip, ItemID: catalog.Hoe})
	if tip := h.world().Tooltip; tip == nil || *tip != catalog.Hoe {
		t.Fatalf("expected hoe tooltip")
	}
	h.exec(t, Intent{Type: IntentHideTooltip})
	if h.world().Tooltip != nil {
		t.Fatalf("tooltip not hidden")
	}
	h.exec(t, Intent{Type: IntentPause, Paused: true})
	if !h.world().Clock.IsPaused {
		t.Fatalf("expected paused clock")
	}
}
