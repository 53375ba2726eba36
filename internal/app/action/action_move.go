package action

import (
	"context"

	"ogvalley/internal/domain/valley"
	"ogvalley/internal/domain/world"
)

type moveActionHandler struct{ BaseHandler }

func (h moveActionHandler) Execute(_ context.Context, _ UseCase, ac *ActionContext) error {
	dx, dy := world.Facing(ac.In.Req.Intent.Direction).Delta()
	if ac.World.Move(dx, dy) == valley.MoveBlocked {
		ac.Tmp.Outcome = OutcomeNoop
		return nil
	}
	ac.Tmp.Outcome = OutcomeApplied
	return nil
}

func validateMoveParams(in Intent) bool {
	return world.Facing(in.Direction).Valid()
}
