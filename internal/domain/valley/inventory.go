package valley

import "ogvalley/internal/domain/catalog"

// ItemStack is a held quantity of one item. Count is always at least one;
// an empty slot is a nil pointer.
type ItemStack struct {
	ItemID catalog.ID `json:"item_id"`
	Count  int        `json:"count"`
}

// Slots is a fixed-length slot array shared by the player inventory and by
// containers.
type Slots []*ItemStack

func NewSlots(n int) Slots {
	return make(Slots, n)
}

func (s Slots) Valid(index int) bool {
	return index >= 0 && index < len(s)
}

func (s Slots) At(index int) *ItemStack {
	if !s.Valid(index) {
		return nil
	}
	return s[index]
}

// placement finds where count units of id would go: an existing stack of the
// same id first, then the first empty slot.
func (s Slots) placement(id catalog.ID) (int, bool) {
	for i, st := range s {
		if st != nil && st.ItemID == id {
			return i, true
		}
	}
	for i, st := range s {
		if st == nil {
			return i, true
		}
	}
	return -1, false
}

func (s Slots) CanAdd(id catalog.ID) bool {
	_, ok := s.placement(id)
	return ok
}

// Add stacks onto an existing stack of the same item or fills the first empty
// slot. It reports false and leaves the slots unchanged when neither exists.
func (s Slots) Add(id catalog.ID, count int) bool {
	if count <= 0 {
		return false
	}
	i, ok := s.placement(id)
	if !ok {
		return false
	}
	if s[i] == nil {
		s[i] = &ItemStack{ItemID: id, Count: count}
		return true
	}
	s[i].Count += count
	return true
}

// Take removes up to n units from a slot, clearing it when it empties.
func (s Slots) Take(index, n int) int {
	st := s.At(index)
	if st == nil || n <= 0 {
		return 0
	}
	if n > st.Count {
		n = st.Count
	}
	st.Count -= n
	if st.Count <= 0 {
		s[index] = nil
	}
	return n
}

func (s Slots) Count(id catalog.ID) int {
	total := 0
	for _, st := range s {
		if st != nil && st.ItemID == id {
			total += st.Count
		}
	}
	return total
}

func (s Slots) Clone() Slots {
	if s == nil {
		return nil
	}
	out := make(Slots, len(s))
	for i, st := range s {
		if st != nil {
			cp := *st
			out[i] = &cp
		}
	}
	return out
}
