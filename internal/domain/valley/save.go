package valley

import (
	"errors"
	"fmt"

	"ogvalley/internal/domain/world"
)

// SaveKey is the single key the whole world is stored under.
const SaveKey = "OG_VALLEY_SAVE_V2"

var ErrMalformedSave = errors.New("malformed save")

// SaveData is the persisted form of a World. UI state and feedback are not
// part of it.
type SaveData struct {
	Player       Player           `json:"player"`
	Grids        world.Grids      `json:"grids"`
	Containers   map[string]Slots `json:"containers"`
	GameState    world.ClockState `json:"game_state"`
	Monsters     []Monster        `json:"monsters"`
	NPCs         []NPC            `json:"npcs"`
	CurrentScene world.Scene      `json:"current_scene"`
}

func (w *World) Save() SaveData {
	cp := w.Clone()
	return SaveData{
		Player:       cp.Player,
		Grids:        cp.Grids,
		Containers:   cp.Containers,
		GameState:    cp.Clock,
		Monsters:     cp.Monsters,
		NPCs:         cp.NPCs,
		CurrentScene: cp.CurrentScene,
	}
}

// Clone deep-copies saved data without validating it.
func (d SaveData) Clone() SaveData {
	w := &World{
		Player:       d.Player,
		Grids:        d.Grids,
		Containers:   d.Containers,
		Clock:        d.GameState,
		Monsters:     d.Monsters,
		NPCs:         d.NPCs,
		CurrentScene: d.CurrentScene,
	}
	return w.Save()
}

// Restore rebuilds a World from saved data. Grids of the wrong shape are
// rejected; smaller inconsistencies are repaired so the invariants hold.
func Restore(data SaveData) (*World, error) {
	if !data.CurrentScene.Valid() {
		return nil, fmt.Errorf("%w: scene %q", ErrMalformedSave, data.CurrentScene)
	}
	for _, s := range world.Scenes {
		g, ok := data.Grids[s]
		if !ok || len(g) != world.GridH {
			return nil, fmt.Errorf("%w: grid %s", ErrMalformedSave, s)
		}
		for _, row := range g {
			if len(row) != world.GridW {
				return nil, fmt.Errorf("%w: grid %s row width", ErrMalformedSave, s)
			}
		}
	}
	if data.GameState.Day < 1 {
		return nil, fmt.Errorf("%w: day %d", ErrMalformedSave, data.GameState.Day)
	}

	w := &World{
		Player:       data.Player,
		Grids:        data.Grids,
		Containers:   data.Containers,
		Clock:        data.GameState,
		Monsters:     data.Monsters,
		NPCs:         data.NPCs,
		CurrentScene: data.CurrentScene,
		UIMode:       ModePlaying,
	}
	if w.Containers == nil {
		w.Containers = map[string]Slots{}
	}
	if w.Clock.DayIndex < 1 {
		w.Clock.DayIndex = w.Clock.Day
	}
	repairPlayer(&w.Player)
	for k, slots := range w.Containers {
		w.Containers[k] = pruneEmpty(slots)
	}
	for _, g := range w.Grids {
		g.Each(func(t *world.Tile) {
			if t.Crop != nil && !t.IsTilled {
				t.Crop = nil
			}
			if t.Warp != nil {
				t.CanWalk = true
			}
		})
	}
	return w, nil
}

func repairPlayer(p *Player) {
	if len(p.Inventory) != InventorySize {
		inv := NewSlots(InventorySize)
		copy(inv, p.Inventory)
		p.Inventory = inv
	}
	p.Inventory = pruneEmpty(p.Inventory)
	if p.CursorItem != nil && p.CursorItem.Count < 1 {
		p.CursorItem = nil
	}
	if !p.Inventory.Valid(p.SelectedSlot) {
		p.SelectedSlot = 0
	}
	if !p.Facing.Valid() {
		p.Facing = world.FacingDown
	}
	if p.MaxEnergy <= 0 {
		p.MaxEnergy = MaxEnergy
	}
	if p.MaxHP <= 0 {
		p.MaxHP = MaxHP
	}
	p.Energy = min(max(p.Energy, 0), p.MaxEnergy)
	p.HP = min(max(p.HP, 0), p.MaxHP)
}

func pruneEmpty(s Slots) Slots {
	for i, st := range s {
		if st != nil && st.Count < 1 {
			s[i] = nil
		}
	}
	return s
}
