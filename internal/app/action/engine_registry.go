package action

import (
	"context"
	"errors"
	"time"

	"ogvalley/internal/domain/valley"
)

type ActionSpec struct {
	Type IntentType
	// PlayingOnly intents are ignored outside the Playing mode.
	PlayingOnly bool
	Handler     ActionHandler
}

type ActionHandler interface {
	Precheck(ctx context.Context, uc UseCase, ac *ActionContext) error
	Execute(ctx context.Context, uc UseCase, ac *ActionContext) error
}

type BaseHandler struct{}

func (BaseHandler) Precheck(context.Context, UseCase, *ActionContext) error { return nil }
func (BaseHandler) Execute(context.Context, UseCase, *ActionContext) error  { return nil }

type ActionInput struct {
	Req   Request
	NowAt time.Time
}

type ActionTmp struct {
	Outcome Outcome
	Message string
}

type ActionContext struct {
	In    ActionInput
	Spec  ActionSpec
	World *valley.World
	Tmp   ActionTmp
}

// settle turns a rule result into the intent outcome. Rejections surface
// their message to the player.
func (ac *ActionContext) settle(err error) error {
	switch {
	case err == nil:
		ac.Tmp.Outcome = OutcomeApplied
		return nil
	case errors.Is(err, valley.ErrNoEffect):
		ac.Tmp.Outcome = OutcomeNoop
		return nil
	case ac.World.Report(err):
		ac.Tmp.Outcome = OutcomeRejected
		ac.Tmp.Message = ac.World.Feedback.Message.Text
		return nil
	default:
		return err
	}
}

func actionRegistry() map[IntentType]ActionSpec {
	return map[IntentType]ActionSpec{
		IntentMove:            {Type: IntentMove, PlayingOnly: true, Handler: moveActionHandler{}},
		IntentInteract:        {Type: IntentInteract, Handler: interactActionHandler{}},
		IntentTap:             {Type: IntentTap, PlayingOnly: true, Handler: tapActionHandler{}},
		IntentSelectSlot:      {Type: IntentSelectSlot, Handler: selectSlotActionHandler{}},
		IntentTransfer:        {Type: IntentTransfer, Handler: transferActionHandler{}},
		IntentDropCursor:      {Type: IntentDropCursor, Handler: dropCursorActionHandler{}},
		IntentConsume:         {Type: IntentConsume, Handler: consumeActionHandler{}},
		IntentBuy:             {Type: IntentBuy, Handler: buyActionHandler{}},
		IntentClose:           {Type: IntentClose, Handler: closeActionHandler{}},
		IntentToggleInventory: {Type: IntentToggleInventory, Handler: toggleInventoryActionHandler{}},
		IntentShowTooltip:     {Type: IntentShowTooltip, Handler: showTooltipActionHandler{}},
		IntentHideTooltip:     {Type: IntentHideTooltip, Handler: hideTooltipActionHandler{}},
		IntentPause:           {Type: IntentPause, Handler: pauseActionHandler{}},
	}
}

func supportedIntentTypes() []IntentType {
	return []IntentType{
		IntentMove,
		IntentInteract,
		IntentTap,
		IntentSelectSlot,
		IntentTransfer,
		IntentDropCursor,
		IntentConsume,
		IntentBuy,
		IntentClose,
		IntentToggleInventory,
		IntentShowTooltip,
		IntentHideTooltip,
		IntentPause,
	}
}

func isSupportedIntentType(t IntentType) bool {
	for _, it := range supportedIntentTypes() {
		if t == it {
			return true
		}
	}
	return false
}

func intentParamValidators() map[IntentType]func(Intent) bool {
	return map[IntentType]func(Intent) bool{
		IntentMove:            validateMoveParams,
		IntentInteract:        noParams,
		IntentTap:             validateTapParams,
		IntentSelectSlot:      validatePlayerSlotParams,
		IntentTransfer:        validateTransferParams,
		IntentDropCursor:      noParams,
		IntentConsume:         validatePlayerSlotParams,
		IntentBuy:             validateBuyParams,
		IntentClose:           noParams,
		IntentToggleInventory: noParams,
		IntentShowTooltip:     validateTooltipParams,
		IntentHideTooltip:     noParams,
		IntentPause:           noParams,
	}
}

func noParams(Intent) bool { return true }

func hasValidIntentParams(in Intent) bool {
	v, ok := intentParamValidators()[in.Type]
	return ok && v(in)
}
