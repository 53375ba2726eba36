package world

type Scene string

const (
	SceneFarm  Scene = "FARM"
	SceneTown  Scene = "TOWN"
	SceneMine  Scene = "MINE"
	SceneHouse Scene = "HOUSE"
)

var Scenes = []Scene{SceneFarm, SceneTown, SceneMine, SceneHouse}

func (s Scene) Valid() bool {
	switch s {
	case SceneFarm, SceneTown, SceneMine, SceneHouse:
		return true
	default:
		return false
	}
}

const (
	GridW = 16
	GridH = 12
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Facing string

const (
	FacingUp    Facing = "UP"
	FacingDown  Facing = "DOWN"
	FacingLeft  Facing = "LEFT"
	FacingRight Facing = "RIGHT"
)

func (f Facing) Delta() (int, int) {
	switch f {
	case FacingUp:
		return 0, -1
	case FacingDown:
		return 0, 1
	case FacingLeft:
		return -1, 0
	case FacingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (f Facing) Valid() bool {
	dx, dy := f.Delta()
	return dx != 0 || dy != 0
}

// FacingToward keeps the current facing when the delta is zero. A vertical
// component wins over a horizontal one.
func FacingToward(current Facing, dx, dy int) Facing {
	out := current
	if dx > 0 {
		out = FacingRight
	}
	if dx < 0 {
		out = FacingLeft
	}
	if dy > 0 {
		out = FacingDown
	}
	if dy < 0 {
		out = FacingUp
	}
	return out
}

func (p Point) Step(f Facing) Point {
	dx, dy := f.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func InBounds(x, y int) bool {
	return x >= 0 && x < GridW && y >= 0 && y < GridH
}
