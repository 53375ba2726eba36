package action

import (
	"context"

	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/valley"
	"ogvalley/internal/domain/world"
)

type interactActionHandler struct{ BaseHandler }

func (h interactActionHandler) Execute(_ context.Context, uc UseCase, ac *ActionContext) error {
	w := ac.World
	switch w.UIMode {
	case valley.ModePlaying:
		return ac.settle(uc.interact(w))
	case valley.ModeDialogue, valley.ModeShop, valley.ModeChest:
		w.SetMode(valley.ModePlaying)
		ac.Tmp.Outcome = OutcomeApplied
	default:
		ac.Tmp.Outcome = OutcomeNoop
	}
	return nil
}

// interact resolves the cell in front of the player. The first matching rule
// wins: attack, talk, fixtures, then crops and tools.
func (u UseCase) interact(w *valley.World) error {
	target := w.Player.Front()
	selected := w.Player.Selected()
	var item catalog.Item
	if selected != nil {
		item, _ = catalog.Lookup(selected.ItemID)
	}

	if weapon, ok := item.(catalog.Weapon); ok {
		if _, hit := w.MonsterAt(w.CurrentScene, target); hit {
			if err := w.Attack(target, weapon, u.rand()); err != nil {
				return err
			}
			w.Player.SpendEnergy(weapon.Energy)
			w.Feedback.Cue(valley.CueSwing)
			return nil
		}
	}

	if i, ok := w.NPCAt(w.CurrentScene, target); ok {
		w.Talk(i, u.rand())
		return nil
	}

	tile, ok := w.TileAt(target)
	if !ok {
		return valley.ErrNoEffect
	}

	if id, ok := tile.Object(); ok {
		if obj, ok := catalog.Lookup(id); ok {
			switch v := obj.(type) {
			case catalog.Interactive:
				if v.Fixture == catalog.FixtureShop {
					w.SetMode(valley.ModeShop)
					return nil
				}
				if v.Fixture == catalog.FixtureShippingBin {
					return w.Ship()
				}
			case catalog.Container:
				key := valley.ContainerKey(w.CurrentScene, target.X, target.Y)
				w.OpenContainer(key)
				w.SetMode(valley.ModeChest)
				w.ActiveContainer = key
				w.Feedback.Cue(valley.CuePickup)
				return nil
			}
		}
	}

	return u.modifyTile(w, target, item)
}

// modifyTile harvests a mature crop or applies the selected item to the
// tile. Energy is checked before any effect and spent only on success.
func (u UseCase) modifyTile(w *valley.World, target world.Point, item catalog.Item) error {
	if tile, _ := w.TileAt(target); valley.Harvestable(tile) {
		if err := w.Harvest(target); err != nil {
			return err
		}
		w.Feedback.Cue(valley.CuePickup)
		return nil
	}
	if item == nil {
		return valley.ErrNoEffect
	}

	cost := catalog.EnergyCost(item)
	if cost > 0 && w.Player.Energy < cost {
		return &valley.Rejection{Reason: valley.MsgTooTired, TTL: valley.ShortMessage}
	}

	var (
		cue valley.Cue
		err error
	)
	switch v := item.(type) {
	case catalog.Tool:
		cue, err = useTool(w, v, target)
	case catalog.Seed:
		cue, err = valley.CuePlant, w.PlantSelected(target)
	case catalog.Container:
		cue, err = valley.CuePickup, w.PlaceContainer(target)
	default:
		err = valley.ErrNoEffect
	}
	if err != nil {
		return err
	}
	w.Player.SpendEnergy(cost)
	w.Feedback.Cue(cue)
	w.Feedback.Cue(valley.CueSwing)
	return nil
}

func useTool(w *valley.World, tool catalog.Tool, target world.Point) (valley.Cue, error) {
	tile, ok := w.TileAt(target)
	if !ok {
		return "", valley.ErrNoEffect
	}
	switch tool.Action {
	case catalog.ActionTill:
		return valley.CueTill, valley.Till(tile)
	case catalog.ActionWater:
		return valley.CueWater, valley.Water(tile)
	case catalog.ActionClear:
		return valley.CueBreak, w.Clear(target)
	case catalog.ActionBreak:
		return valley.CueBreak, w.Break(target)
	default:
		return "", valley.ErrNoEffect
	}
}

type tapActionHandler struct{ BaseHandler }

// Precheck ignores taps that are not orthogonally adjacent to the player.
func (h tapActionHandler) Precheck(_ context.Context, _ UseCase, ac *ActionContext) error {
	in := ac.In.Req.Intent
	p := ac.World.Player
	dx, dy := in.X-p.X, in.Y-p.Y
	if abs(dx)+abs(dy) != 1 {
		ac.Tmp.Outcome = OutcomeNoop
	}
	return nil
}

func (h tapActionHandler) Execute(_ context.Context, uc UseCase, ac *ActionContext) error {
	in := ac.In.Req.Intent
	p := &ac.World.Player
	p.Facing = world.FacingToward(p.Facing, in.X-p.X, in.Y-p.Y)
	return ac.settle(uc.interact(ac.World))
}

func validateTapParams(in Intent) bool {
	return world.InBounds(in.X, in.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
