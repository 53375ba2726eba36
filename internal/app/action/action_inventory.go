package action

import (
	"context"

	"ogvalley/internal/domain/valley"
)

type selectSlotActionHandler struct{ BaseHandler }

func (h selectSlotActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	ac.World.Player.SelectedSlot = ac.In.Req.Intent.Slot
	ac.Tmp.Outcome = OutcomeApplied
	return nil
}

type transferActionHandler struct{ BaseHandler }

func (h transferActionHandler) Precheck(_ context.Context, _ UseCase, ac *ActionContext) error {
	in := ac.In.Req.Intent
	w := ac.World
	if in.Source == SourceContainer && (w.UIMode != valley.ModeChest || w.ActiveContainer == "") {
		ac.Tmp.Outcome = OutcomeNoop
	}
	return nil
}

// Execute performs the transfer against a single slot array and commits the
// cursor once.
func (h transferActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	in := ac.In.Req.Intent
	w := ac.World
	slots, ok := w.ActiveSlots(in.Source == SourceContainer)
	if !ok || !slots.Valid(in.Slot) {
		ac.Tmp.Outcome = OutcomeNoop
		return nil
	}
	cursor, kind := valley.Transfer(w.Player.CursorItem, slots, in.Slot)
	w.Player.CursorItem = cursor
	if kind == valley.TransferNone {
		ac.Tmp.Outcome = OutcomeNoop
		return nil
	}
	ac.Tmp.Outcome = OutcomeApplied
	return nil
}

func validateTransferParams(in Intent) bool {
	switch in.Source {
	case SourcePlayer, "":
		return in.Slot >= 0 && in.Slot < valley.InventorySize
	case SourceContainer:
		return in.Slot >= 0 && in.Slot < valley.ContainerSize
	default:
		return false
	}
}

func validatePlayerSlotParams(in Intent) bool {
	return in.Slot >= 0 && in.Slot < valley.InventorySize
}

type dropCursorActionHandler struct{ BaseHandler }

func (h dropCursorActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	if ac.World.Player.CursorItem == nil {
		ac.Tmp.Outcome = OutcomeNoop
		return nil
	}
	ac.World.Player.CursorItem = nil
	ac.Tmp.Outcome = OutcomeApplied
	return nil
}

type consumeActionHandler struct{ BaseHandler }

func (h consumeActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	return ac.settle(ac.World.Consume(ac.In.Req.Intent.Slot))
}
