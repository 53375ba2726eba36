package valley

import "ogvalley/internal/domain/world"

type MoveResult string

const (
	MoveBlocked MoveResult = "blocked"
	MoveWarped  MoveResult = "warped"
	MoveStepped MoveResult = "stepped"
)

// Move tries to step by (dx, dy). Facing always turns toward the attempted
// direction. Warps win over every collision check.
func (w *World) Move(dx, dy int) MoveResult {
	p := &w.Player
	p.Facing = world.FacingToward(p.Facing, dx, dy)
	target := world.Point{X: p.X + dx, Y: p.Y + dy}

	t, ok := w.TileAt(target)
	if !ok {
		return MoveBlocked
	}
	if t.Warp != nil {
		w.Relocate(t.Warp.Target, world.Point{X: t.Warp.X, Y: t.Warp.Y})
		return MoveWarped
	}
	if !t.Walkable() {
		return MoveBlocked
	}
	if _, ok := w.NPCAt(w.CurrentScene, target); ok {
		return MoveBlocked
	}
	p.X = target.X
	p.Y = target.Y
	p.WalkFrame = (p.WalkFrame + 1) % 2
	w.Feedback.Cue(CueStep)
	return MoveStepped
}
