package valley

import (
	"fmt"

	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/world"
)

func RollDamage(w catalog.Weapon, rng world.Rand) int {
	span := w.MaxDamage - w.MinDamage + 1
	if span <= 1 {
		return w.MinDamage
	}
	return w.MinDamage + rng.Intn(span)
}

// Attack hits the monster at p with the weapon. A monster brought to zero hp
// is removed at once.
func (w *World) Attack(p world.Point, weapon catalog.Weapon, rng world.Rand) error {
	i, ok := w.MonsterAt(w.CurrentScene, p)
	if !ok {
		return ErrNoEffect
	}
	dmg := RollDamage(weapon, rng)
	m := &w.Monsters[i]
	m.HP = max(0, m.HP-dmg)
	w.Feedback.Float(w.CurrentScene, p.X, p.Y, fmt.Sprintf("%d", dmg), "white")
	if m.HP <= 0 {
		w.Monsters = append(w.Monsters[:i], w.Monsters[i+1:]...)
	}
	return nil
}

// PruneMonsters drops monsters whose hp reached zero.
func (w *World) PruneMonsters() int {
	kept := w.Monsters[:0]
	for _, m := range w.Monsters {
		if m.HP > 0 {
			kept = append(kept, m)
		}
	}
	removed := len(w.Monsters) - len(kept)
	w.Monsters = kept
	return removed
}

// HurtPlayer applies damage and runs the death penalty when hp reaches zero.
// It reports the gold lost and whether the player died.
func (w *World) HurtPlayer(dmg int, startOfDay int) (int, bool) {
	w.Player.HP = max(0, w.Player.HP-dmg)
	w.Feedback.Float(w.CurrentScene, w.Player.X, w.Player.Y, fmt.Sprintf("- %d", dmg), "red")
	if w.Player.HP > 0 {
		return 0, false
	}
	return w.Faint(startOfDay), true
}

// Faint is the death penalty: lose a share of gold, wake on the farm at the
// start of the same day with full hp and energy.
func (w *World) Faint(startOfDay int) int {
	lost := min(DeathPenaltyCap, int(float64(w.Player.Money)*DeathPenaltyRate))
	w.Player.Money -= lost
	w.Relocate(world.SceneFarm, world.FarmSpawn)
	w.Clock.Time = startOfDay
	w.Player.Restore()
	w.SetMode(ModePlaying)
	w.Feedback.Say(fmt.Sprintf("You fainted... lost %d g", lost), NoticeMessage)
	return lost
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// ChaseStep moves a monster one step toward target on each axis, kept
// inside the grid.
func ChaseStep(m *Monster, target world.Point) {
	m.X = min(max(m.X+sign(target.X-m.X), 0), world.GridW-1)
	m.Y = min(max(m.Y+sign(target.Y-m.Y), 0), world.GridH-1)
}
