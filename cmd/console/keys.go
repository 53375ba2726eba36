package main

import (
	"ogvalley/internal/app/action"
	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/valley"
)

// slotKeys maps the number row to slot indexes 0..9.
var slotKeys = map[string]int{
	"1": 0, "2": 1, "3": 2, "4": 3, "5": 4,
	"6": 5, "7": 6, "8": 7, "9": 8, "0": 9,
}

var moveKeys = map[string]string{
	"up": "UP", "w": "UP",
	"down": "DOWN", "s": "DOWN",
	"left": "LEFT", "a": "LEFT",
	"right": "RIGHT", "d": "RIGHT",
}

// intentFor translates a key press into an intent for the current mode.
// fromContainer says which side of an open chest the number row targets.
func intentFor(key string, mode valley.UIMode, fromContainer, paused bool) (action.Intent, bool) {
	switch key {
	case "e", " ", "enter":
		return action.Intent{Type: action.IntentInteract}, true
	case "i":
		return action.Intent{Type: action.IntentToggleInventory}, true
	case "esc":
		return action.Intent{Type: action.IntentClose}, true
	case "p":
		return action.Intent{Type: action.IntentPause, Paused: !paused}, true
	case "x":
		return action.Intent{Type: action.IntentDropCursor}, true
	}
	if dir, ok := moveKeys[key]; ok && mode == valley.ModePlaying {
		return action.Intent{Type: action.IntentMove, Direction: dir}, true
	}
	slot, ok := slotKeys[key]
	if !ok {
		return action.Intent{}, false
	}
	switch mode {
	case valley.ModeShop:
		items := catalog.ShopItems()
		if slot >= len(items) {
			return action.Intent{}, false
		}
		return action.Intent{Type: action.IntentBuy, ItemID: items[slot]}, true
	case valley.ModeInventory:
		return action.Intent{Type: action.IntentTransfer, Slot: slot, Source: action.SourcePlayer}, true
	case valley.ModeChest:
		src := action.SourcePlayer
		if fromContainer {
			src = action.SourceContainer
		}
		return action.Intent{Type: action.IntentTransfer, Slot: slot, Source: src}, true
	default:
		return action.Intent{Type: action.IntentSelectSlot, Slot: slot}, true
	}
}
