package action

import (
	"context"

	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/valley"
)

type buyActionHandler struct{ BaseHandler }

func (h buyActionHandler) Precheck(_ context.Context, _ UseCase, ac *ActionContext) error {
	if ac.World.UIMode != valley.ModeShop {
		ac.Tmp.Outcome = OutcomeNoop
	}
	return nil
}

func (h buyActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	return ac.settle(ac.World.Buy(ac.In.Req.Intent.ItemID))
}

func validateBuyParams(in Intent) bool {
	return catalog.InShop(in.ItemID)
}

type closeActionHandler struct{ BaseHandler }

func (h closeActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	if ac.World.UIMode == valley.ModePlaying {
		ac.Tmp.Outcome = OutcomeNoop
		return nil
	}
	ac.World.SetMode(valley.ModePlaying)
	ac.Tmp.Outcome = OutcomeApplied
	return nil
}

type toggleInventoryActionHandler struct{ BaseHandler }

func (h toggleInventoryActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	w := ac.World
	switch w.UIMode {
	case valley.ModePlaying:
		w.SetMode(valley.ModeInventory)
	case valley.ModeInventory, valley.ModeChest:
		w.SetMode(valley.ModePlaying)
	default:
		ac.Tmp.Outcome = OutcomeNoop
		return nil
	}
	ac.Tmp.Outcome = OutcomeApplied
	return nil
}

type showTooltipActionHandler struct{ BaseHandler }

func (h showTooltipActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	id := ac.In.Req.Intent.ItemID
	ac.World.Tooltip = &id
	ac.Tmp.Outcome = OutcomeApplied
	return nil
}

func validateTooltipParams(in Intent) bool {
	_, ok := catalog.Lookup(in.ItemID)
	return ok
}

type hideTooltipActionHandler struct{ BaseHandler }

func (h hideTooltipActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	ac.World.Tooltip = nil
	ac.Tmp.Outcome = OutcomeApplied
	return nil
}

type pauseActionHandler struct{ BaseHandler }

func (h pauseActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	ac.World.Clock.IsPaused = ac.In.Req.Intent.Paused
	ac.Tmp.Outcome = OutcomeApplied
	return nil
}
