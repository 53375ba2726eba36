package action

import (
	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/valley"
)

type IntentType string

const (
	IntentMove            IntentType = "move"
	IntentInteract        IntentType = "interact"
	IntentTap             IntentType = "tap"
	IntentSelectSlot      IntentType = "select_slot"
	IntentTransfer        IntentType = "transfer"
	IntentDropCursor      IntentType = "drop_cursor"
	IntentConsume         IntentType = "consume"
	IntentBuy             IntentType = "buy"
	IntentClose           IntentType = "close"
	IntentToggleInventory IntentType = "toggle_inventory"
	IntentShowTooltip     IntentType = "show_tooltip"
	IntentHideTooltip     IntentType = "hide_tooltip"
	IntentPause           IntentType = "pause"
)

const (
	SourcePlayer    = "player"
	SourceContainer = "container"
)

type Intent struct {
	Type      IntentType `json:"type"`
	Direction string     `json:"direction,omitempty"`
	Slot      int        `json:"slot,omitempty"`
	Source    string     `json:"source,omitempty"`
	ItemID    catalog.ID `json:"item_id,omitempty"`
	X         int        `json:"x,omitempty"`
	Y         int        `json:"y,omitempty"`
	Paused    bool       `json:"paused,omitempty"`
}

type Request struct {
	Intent Intent
}

type Outcome string

const (
	OutcomeApplied  Outcome = "applied"
	OutcomeRejected Outcome = "rejected"
	OutcomeNoop     Outcome = "noop"
)

type Response struct {
	Intent  IntentType   `json:"intent"`
	Outcome Outcome      `json:"outcome"`
	Message string       `json:"message,omitempty"`
	Cues    []valley.Cue `json:"cues"`
}
