package world

import "ogvalley/internal/domain/catalog"

// Fixed coordinates shared by the layouts and the rest of the simulation.
var (
	FarmSpawn   = Point{X: 6, Y: 4}
	PlayerStart = Point{X: 8, Y: 6}

	farmFromTown  = Point{X: 14, Y: 5}
	farmFromHouse = Point{X: 2, Y: 4}
	townFromFarm  = Point{X: 1, Y: 5}
	townFromMine  = Point{X: 14, Y: 1}
	mineFromTown  = Point{X: 2, Y: 2}
	houseFromFarm = Point{X: 7, Y: 9}

	farmDoor   = Point{X: 2, Y: 3}
	houseDoor  = Point{X: 7, Y: 10}
	mineLadder = Point{X: 1, Y: 1}
	townToMine = Point{X: 15, Y: 0}
)

const (
	farmRockChance   = 0.08
	farmWeedChance   = 0.05
	farmFlowerChance = 0.02

	mineOreChance    = 0.15
	mineGoldChance   = 0.05
	mineIronChance   = 0.20
	mineCopperChance = 0.50
	mineOreMinX      = 2
)

type Generator struct {
	rng Rand
	// Reserved tiles never receive random debris.
	reserved map[Scene]map[Point]bool
}

func NewGenerator(rng Rand) Generator {
	return Generator{rng: rng, reserved: map[Scene]map[Point]bool{}}
}

// Reserve keeps random debris off a tile, for example where an entity
// starts.
func (g Generator) Reserve(scene Scene, p Point) {
	if g.reserved[scene] == nil {
		g.reserved[scene] = map[Point]bool{}
	}
	g.reserved[scene][p] = true
}

func (g Generator) GenerateAll() Grids {
	out := make(Grids, len(Scenes))
	for _, s := range Scenes {
		out[s] = g.Generate(s)
	}
	return out
}

func (g Generator) Generate(scene Scene) Grid {
	switch scene {
	case SceneFarm:
		return g.farm()
	case SceneTown:
		return g.town()
	case SceneMine:
		return g.mine()
	case SceneHouse:
		return g.house()
	default:
		return blank(TileGrass)
	}
}

func blank(tt TileType) Grid {
	grid := make(Grid, GridH)
	for y := 0; y < GridH; y++ {
		grid[y] = make([]Tile, GridW)
		for x := 0; x < GridW; x++ {
			grid[y][x] = Tile{X: x, Y: y, Type: tt, CanWalk: true}
		}
	}
	return grid
}

func setWarp(grid Grid, at Point, target Scene, dest Point) {
	t, ok := grid.At(at.X, at.Y)
	if !ok {
		return
	}
	t.CanWalk = true
	t.Warp = &Warp{Target: target, X: dest.X, Y: dest.Y}
}

func setFixture(grid Grid, at Point, id catalog.ID) {
	t, ok := grid.At(at.X, at.Y)
	if !ok {
		return
	}
	t.SetObject(id)
	t.CanWalk = false
}

// canScatter reports whether random debris may land on the tile.
func (g Generator) canScatter(scene Scene, t *Tile) bool {
	if t.Warp != nil || t.HasObject() || !t.CanWalk {
		return false
	}
	return !g.reserved[scene][Point{X: t.X, Y: t.Y}]
}

func (g Generator) farm() Grid {
	grid := blank(TileGrass)
	grid.Each(func(t *Tile) {
		if t.X > 12 && t.Y > 8 {
			t.Type = TileWater
			t.CanWalk = false
		}
		if t.X >= 1 && t.X <= 4 && t.Y >= 1 && t.Y <= 3 {
			t.Type = TileHouseFloor
			t.CanWalk = false
		}
	})
	setFixture(grid, Point{X: 5, Y: 2}, catalog.ShippingBin)
	setFixture(grid, Point{X: 5, Y: 3}, catalog.Mailbox)
	for y := 0; y < GridH; y++ {
		t, _ := grid.At(GridW-1, y)
		t.Type = TileGrass
		setWarp(grid, Point{X: GridW - 1, Y: y}, SceneTown, townFromFarm)
	}
	setWarp(grid, farmDoor, SceneHouse, houseFromFarm)

	for _, p := range []Point{PlayerStart, FarmSpawn, farmFromTown, farmFromHouse} {
		g.Reserve(SceneFarm, p)
	}
	grid.Each(func(t *Tile) {
		if !g.canScatter(SceneFarm, t) {
			return
		}
		switch {
		case g.rng.Float64() < farmRockChance:
			t.SetObject(catalog.StoneNode)
		case g.rng.Float64() < farmWeedChance:
			t.SetObject(catalog.Weed)
		case g.rng.Float64() < farmFlowerChance:
			t.SetObject(catalog.Daffodil)
		}
	})
	return grid
}

func (g Generator) town() Grid {
	grid := blank(TileStoneFloor)
	for y := 0; y < GridH; y++ {
		setWarp(grid, Point{X: 0, Y: y}, SceneFarm, farmFromTown)
	}
	setWarp(grid, townToMine, SceneMine, mineFromTown)
	if t, ok := grid.At(8, 5); ok {
		t.SetObject(catalog.Daffodil)
	}
	return grid
}

func (g Generator) mine() Grid {
	grid := blank(TileDarkDirt)
	setWarp(grid, mineLadder, SceneTown, townFromMine)
	if t, ok := grid.At(mineLadder.X, mineLadder.Y); ok {
		t.SetObject(catalog.LadderUp)
	}
	g.Reserve(SceneMine, mineFromTown)
	grid.Each(func(t *Tile) {
		if t.X <= mineOreMinX || !g.canScatter(SceneMine, t) {
			return
		}
		if g.rng.Float64() >= mineOreChance {
			return
		}
		roll := g.rng.Float64()
		switch {
		case roll < mineGoldChance:
			t.SetObject(catalog.GoldNode)
		case roll < mineIronChance:
			t.SetObject(catalog.IronNode)
		case roll < mineCopperChance:
			t.SetObject(catalog.CopperNode)
		default:
			t.SetObject(catalog.StoneNode)
		}
	})
	return grid
}

func (g Generator) house() Grid {
	grid := blank(TileHouseFloor)
	setWarp(grid, houseDoor, SceneFarm, farmFromHouse)
	for x := 3; x <= 5; x++ {
		if t, ok := grid.At(x, 2); ok {
			t.CanWalk = false
		}
	}
	if t, ok := grid.At(10, 5); ok {
		t.CanWalk = false
	}
	if t, ok := grid.At(2, 5); ok {
		t.SetObject(catalog.Chest)
	}
	return grid
}
