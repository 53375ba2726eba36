package world

// Grid is indexed [y][x].
type Grid [][]Tile

func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y])
}

// At returns a pointer into the grid so callers can mutate the tile in place.
func (g Grid) At(x, y int) (*Tile, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}
	return &g[y][x], true
}

func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = make([]Tile, len(row))
		for x, t := range row {
			out[y][x] = t.clone()
		}
	}
	return out
}

// Each visits every tile in row-major order.
func (g Grid) Each(fn func(t *Tile)) {
	for y := range g {
		for x := range g[y] {
			fn(&g[y][x])
		}
	}
}

type Grids map[Scene]Grid

func (gs Grids) Clone() Grids {
	out := make(Grids, len(gs))
	for scene, g := range gs {
		out[scene] = g.Clone()
	}
	return out
}
