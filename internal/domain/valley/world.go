package valley

import (
	"fmt"

	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/world"
)

type UIMode string

const (
	ModePlaying   UIMode = "PLAYING"
	ModeInventory UIMode = "INVENTORY"
	ModeChest     UIMode = "CHEST"
	ModeShop      UIMode = "SHOP"
	ModeDialogue  UIMode = "DIALOGUE"
)

type Dialogue struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// World is the aggregate every tick and intent mutates. It is not safe for
// concurrent use; callers serialize access.
type World struct {
	Player       Player
	Grids        world.Grids
	Containers   map[string]Slots
	Clock        world.ClockState
	Monsters     []Monster
	NPCs         []NPC
	CurrentScene world.Scene

	UIMode          UIMode
	ActiveContainer string
	Dialogue        *Dialogue
	Tooltip         *catalog.ID
	Feedback        Feedback
}

func NewPlayer() Player {
	inv := NewSlots(InventorySize)
	starting := []ItemStack{
		{ItemID: catalog.Hoe, Count: 1},
		{ItemID: catalog.WateringCan, Count: 1},
		{ItemID: catalog.Axe, Count: 1},
		{ItemID: catalog.Pickaxe, Count: 1},
		{ItemID: catalog.RustySword, Count: 1},
		{ItemID: catalog.Scythe, Count: 1},
		{ItemID: catalog.FishingRod, Count: 1},
		{ItemID: catalog.ParsnipSeeds, Count: 5},
		{ItemID: catalog.Chest, Count: 1},
	}
	for i := range starting {
		st := starting[i]
		inv[i] = &st
	}
	return Player{
		X:         world.PlayerStart.X,
		Y:         world.PlayerStart.Y,
		Facing:    world.FacingDown,
		Energy:    MaxEnergy,
		MaxEnergy: MaxEnergy,
		HP:        MaxHP,
		MaxHP:     MaxHP,
		Money:     StartingMoney,
		Inventory: inv,
	}
}

// NewWorld builds a fresh world with generated grids and default entities.
func NewWorld(clock world.Clock, rng world.Rand) *World {
	gen := world.NewGenerator(rng)
	npcs := initialNPCs()
	monsters := initialMonsters()
	for _, n := range npcs {
		gen.Reserve(n.Scene, world.Point{X: n.X, Y: n.Y})
	}
	for _, m := range monsters {
		gen.Reserve(m.Scene, world.Point{X: m.X, Y: m.Y})
	}
	return &World{
		Player:       NewPlayer(),
		Grids:        gen.GenerateAll(),
		Containers:   map[string]Slots{},
		Clock:        clock.Initial(),
		Monsters:     monsters,
		NPCs:         npcs,
		CurrentScene: world.SceneFarm,
		UIMode:       ModePlaying,
	}
}

// Clone deep-copies the world so a snapshot can leave the serialized
// section.
func (w *World) Clone() *World {
	out := *w
	out.Player = w.Player.clone()
	out.Grids = w.Grids.Clone()
	out.Containers = make(map[string]Slots, len(w.Containers))
	for k, v := range w.Containers {
		out.Containers[k] = v.Clone()
	}
	out.Monsters = append([]Monster(nil), w.Monsters...)
	out.NPCs = append([]NPC(nil), w.NPCs...)
	if w.Dialogue != nil {
		d := *w.Dialogue
		out.Dialogue = &d
	}
	if w.Tooltip != nil {
		id := *w.Tooltip
		out.Tooltip = &id
	}
	out.Feedback = w.Feedback.clone()
	return &out
}

func (w *World) Grid() world.Grid {
	return w.Grids[w.CurrentScene]
}

func (w *World) TileAt(p world.Point) (*world.Tile, bool) {
	return w.Grid().At(p.X, p.Y)
}

func ContainerKey(scene world.Scene, x, y int) string {
	return fmt.Sprintf("%s_%d_%d", scene, x, y)
}

// OpenContainer returns the container at key, creating it on first use.
func (w *World) OpenContainer(key string) Slots {
	if w.Containers == nil {
		w.Containers = map[string]Slots{}
	}
	slots, ok := w.Containers[key]
	if !ok || len(slots) != ContainerSize {
		grown := NewSlots(ContainerSize)
		copy(grown, slots)
		slots = grown
		w.Containers[key] = slots
	}
	return slots
}

// ActiveSlots resolves a transfer source to its slot array.
func (w *World) ActiveSlots(fromContainer bool) (Slots, bool) {
	if !fromContainer {
		return w.Player.Inventory, true
	}
	if w.ActiveContainer == "" {
		return nil, false
	}
	return w.OpenContainer(w.ActiveContainer), true
}

func (w *World) NPCAt(scene world.Scene, p world.Point) (int, bool) {
	for i, n := range w.NPCs {
		if n.Scene == scene && n.X == p.X && n.Y == p.Y {
			return i, true
		}
	}
	return -1, false
}

func (w *World) MonsterAt(scene world.Scene, p world.Point) (int, bool) {
	for i, m := range w.Monsters {
		if m.Scene == scene && m.X == p.X && m.Y == p.Y {
			return i, true
		}
	}
	return -1, false
}

// AddToInventory is the lossy gain path: a full inventory drops the item and
// leaves a message.
func (w *World) AddToInventory(id catalog.ID, count int) bool {
	if w.Player.Inventory.Add(id, count) {
		return true
	}
	w.Feedback.Say(MsgInventoryFull, ShortMessage)
	return false
}

// Relocate moves the player to a scene position.
func (w *World) Relocate(scene world.Scene, p world.Point) {
	w.CurrentScene = scene
	w.Player.X = p.X
	w.Player.Y = p.Y
}

func (w *World) SetMode(mode UIMode) {
	w.UIMode = mode
	if mode != ModeDialogue {
		w.Dialogue = nil
	}
	if mode != ModeChest {
		w.ActiveContainer = ""
	}
}

// Sleep is the forced end-of-day transition.
func (w *World) Sleep() {
	w.Relocate(world.SceneFarm, world.FarmSpawn)
	w.Player.Restore()
}
