package valley

type TransferKind string

const (
	TransferNone   TransferKind = "none"
	TransferPlace  TransferKind = "place"
	TransferPickup TransferKind = "pickup"
	TransferStack  TransferKind = "stack"
	TransferSwap   TransferKind = "swap"
)

// Transfer exchanges the cursor item with slots[index] and returns the new
// cursor. The slot array is written exactly once.
func Transfer(cursor *ItemStack, slots Slots, index int) (*ItemStack, TransferKind) {
	if !slots.Valid(index) {
		return cursor, TransferNone
	}
	target := slots[index]
	switch {
	case cursor == nil && target == nil:
		return nil, TransferNone
	case target == nil:
		slots[index] = cursor
		return nil, TransferPlace
	case cursor == nil:
		slots[index] = nil
		return target, TransferPickup
	case cursor.ItemID == target.ItemID:
		slots[index] = &ItemStack{ItemID: target.ItemID, Count: target.Count + cursor.Count}
		return nil, TransferStack
	default:
		slots[index] = cursor
		return target, TransferSwap
	}
}
