package valley

import (
	"math"

	"ogvalley/internal/domain/world"
)

type Player struct {
	X            int          `json:"x"`
	Y            int          `json:"y"`
	Facing       world.Facing `json:"facing"`
	Energy       int          `json:"energy"`
	MaxEnergy    int          `json:"max_energy"`
	HP           int          `json:"hp"`
	MaxHP        int          `json:"max_hp"`
	Money        int          `json:"money"`
	Inventory    Slots        `json:"inventory"`
	SelectedSlot int          `json:"selected_slot"`
	CursorItem   *ItemStack   `json:"cursor_item"`
	WalkFrame    int          `json:"walk_frame"`
}

func (p Player) Pos() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// Front is the cell the player is facing.
func (p Player) Front() world.Point {
	return p.Pos().Step(p.Facing)
}

func (p Player) Selected() *ItemStack {
	return p.Inventory.At(p.SelectedSlot)
}

func (p *Player) Restore() {
	p.Energy = p.MaxEnergy
	p.HP = p.MaxHP
}

func (p *Player) SpendEnergy(cost int) {
	p.Energy = max(0, p.Energy-cost)
}

func (p Player) clone() Player {
	out := p
	out.Inventory = p.Inventory.Clone()
	if p.CursorItem != nil {
		c := *p.CursorItem
		out.CursorItem = &c
	}
	return out
}

type NPCVariant string

const (
	VariantMayor  NPCVariant = "MAYOR"
	VariantGranny NPCVariant = "GRANNY"
)

type NPC struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Variant   NPCVariant   `json:"variant"`
	Scene     world.Scene  `json:"scene"`
	X         int          `json:"x"`
	Y         int          `json:"y"`
	Facing    world.Facing `json:"facing"`
	Affection int          `json:"affection"`
	// LastTalked is the clock DayIndex of the last conversation, 0 if never.
	LastTalked int `json:"last_talked"`
}

type MonsterKind string

const MonsterSlime MonsterKind = "SLIME"

type Monster struct {
	ID     string      `json:"id"`
	Kind   MonsterKind `json:"kind"`
	Scene  world.Scene `json:"scene"`
	X      int         `json:"x"`
	Y      int         `json:"y"`
	HP     int         `json:"hp"`
	MaxHP  int         `json:"max_hp"`
	Damage int         `json:"damage"`
}

func (m Monster) DistanceTo(p world.Point) float64 {
	return math.Hypot(float64(p.X-m.X), float64(p.Y-m.Y))
}

func initialNPCs() []NPC {
	return []NPC{
		{ID: "npc_mayor", Name: "Mayor Lewis", Variant: VariantMayor, Scene: world.SceneTown, X: 10, Y: 5, Facing: world.FacingLeft},
		{ID: "npc_granny", Name: "Granny Ella", Variant: VariantGranny, Scene: world.SceneTown, X: 6, Y: 8, Facing: world.FacingRight},
	}
}

func initialMonsters() []Monster {
	return []Monster{
		{ID: "slime_1", Kind: MonsterSlime, Scene: world.SceneMine, X: 8, Y: 8, HP: SlimeHP, MaxHP: SlimeHP, Damage: SlimeDamage},
		{ID: "slime_2", Kind: MonsterSlime, Scene: world.SceneMine, X: 12, Y: 4, HP: SlimeHP, MaxHP: SlimeHP, Damage: SlimeDamage},
	}
}
