package valley

import (
	"testing"

	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/world"
)

func TestMoveSteps(t *testing.T) {
	w := clearWorld(t)
	if got := w.Move(1, 0); got != MoveStepped {
		t.Fatalf("expected step, got %s", got)
	}
	if w.Player.X != 9 || w.Player.Facing != world.FacingRight || w.Player.WalkFrame != 1 {
		t.Fatalf("unexpected player %+v", w.Player)
	}
	cues := w.Feedback.DrainCues()
	if len(cues) != 1 || cues[0] != CueStep {
		t.Fatalf("expected step cue, got %v", cues)
	}
}

func TestMoveOutOfBoundsOnlyTurns(t *testing.T) {
	w := clearWorld(t)
	w.Player.X, w.Player.Y = 0, 0
	if got := w.Move(0, -1); got != MoveBlocked {
		t.Fatalf("expected blocked")
	}
	if w.Player.Pos() != (world.Point{}) || w.Player.Facing != world.FacingUp {
		t.Fatalf("expected facing-only update, got %+v", w.Player)
	}
}

func TestMoveBlockedByObjectsAndNPCs(t *testing.T) {
	w := clearWorld(t)
	tile := tileAt(t, w, world.SceneFarm, 8, 7)
	tile.SetObject(catalog.Chest)
	if got := w.Move(0, 1); got != MoveBlocked || w.Player.Y != 6 {
		t.Fatalf("chest should block")
	}

	w.Relocate(world.SceneTown, world.Point{X: 9, Y: 5})
	if got := w.Move(1, 0); got != MoveBlocked || w.Player.X != 9 {
		t.Fatalf("mayor should block")
	}
	if w.Player.Facing != world.FacingRight {
		t.Fatalf("facing should still turn")
	}
}

func TestMoveTakesWarp(t *testing.T) {
	w := clearWorld(t)
	w.Player.X, w.Player.Y = 14, 5
	if got := w.Move(1, 0); got != MoveWarped {
		t.Fatalf("expected warp, got %s", got)
	}
	if w.CurrentScene != world.SceneTown || w.Player.Pos() != (world.Point{X: 1, Y: 5}) {
		t.Fatalf("expected town arrival, got %s %+v", w.CurrentScene, w.Player.Pos())
	}
}
