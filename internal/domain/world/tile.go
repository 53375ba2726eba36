package world

import "ogvalley/internal/domain/catalog"

type TileType string

const (
	TileGrass      TileType = "GRASS"
	TileDirt       TileType = "DIRT"
	TileWater      TileType = "WATER"
	TileHouseFloor TileType = "HOUSE_FLOOR"
	TileStoneFloor TileType = "STONE_FLOOR"
	TileDarkDirt   TileType = "DARK_DIRT"
)

type Warp struct {
	Target Scene `json:"target"`
	X      int   `json:"x"`
	Y      int   `json:"y"`
}

type Crop struct {
	ProduceID catalog.ID `json:"produce_id"`
	Stage     int        `json:"stage"`
	DaysGrown int        `json:"days_grown"`
	IsWatered bool       `json:"is_watered"`
	Dead      bool       `json:"dead"`
	DryDays   int        `json:"dry_days"`
}

type Tile struct {
	X         int         `json:"x"`
	Y         int         `json:"y"`
	Type      TileType    `json:"type"`
	ObjectID  *catalog.ID `json:"object_id"`
	Crop      *Crop       `json:"crop,omitempty"`
	IsTilled  bool        `json:"is_tilled"`
	IsWatered bool        `json:"is_watered"`
	CanWalk   bool        `json:"can_walk"`
	Warp      *Warp       `json:"warp,omitempty"`
}

func (t Tile) Object() (catalog.ID, bool) {
	if t.ObjectID == nil {
		return 0, false
	}
	return *t.ObjectID, true
}

func (t *Tile) SetObject(id catalog.ID) {
	t.ObjectID = &id
}

func (t *Tile) ClearObject() {
	t.ObjectID = nil
}

func (t Tile) HasObject() bool {
	return t.ObjectID != nil
}

// Walkable applies the movement rules for stepping onto the tile. Warps are
// handled before this is consulted.
func (t Tile) Walkable() bool {
	if !t.CanWalk {
		return false
	}
	if id, ok := t.Object(); ok && catalog.BlocksMovement(id) {
		return false
	}
	return true
}

func (t Tile) clone() Tile {
	out := t
	if t.ObjectID != nil {
		id := *t.ObjectID
		out.ObjectID = &id
	}
	if t.Crop != nil {
		crop := *t.Crop
		out.Crop = &crop
	}
	if t.Warp != nil {
		warp := *t.Warp
		out.Warp = &warp
	}
	return out
}
