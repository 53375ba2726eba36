package ai

import (
	"context"

	"github.com/sirupsen/logrus"

	"ogvalley/internal/app/ports"
	"ogvalley/internal/domain/valley"
	"ogvalley/internal/domain/world"
)

type UseCase struct {
	Session ports.WorldSession
	Clock   world.Clock
	Rand    world.Rand
	Metrics ports.TickMetrics
	Logger  logrus.FieldLogger
}

type Result struct {
	Attacks int
	Moves   int
	Died    bool
	Lost    int
}

// Tick lets every monster in the player's scene act once. Each monster acts
// with a fixed chance: it attacks in melee range, chases inside the chase
// radius, and otherwise stays put.
func (u UseCase) Tick(ctx context.Context) (Result, error) {
	var res Result
	err := u.Session.Do(ctx, func(w *valley.World) error {
		w.PruneMonsters()
		if w.UIMode != valley.ModePlaying || w.Clock.IsPaused {
			return nil
		}
		for i := range w.Monsters {
			m := &w.Monsters[i]
			if m.Scene != w.CurrentScene {
				continue
			}
			if u.Rand.Float64() > valley.MonsterActChance {
				continue
			}
			player := w.Player.Pos()
			dist := m.DistanceTo(player)
			switch {
			case dist < valley.MeleeRange:
				res.Attacks++
				lost, died := w.HurtPlayer(m.Damage, u.clock().StartOfDay())
				if died {
					res.Died = true
					res.Lost = lost
					return nil
				}
			case dist < valley.ChaseRange:
				next := *m
				valley.ChaseStep(&next, player)
				if next.X == player.X && next.Y == player.Y {
					continue
				}
				m.X, m.Y = next.X, next.Y
				res.Moves++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordTick("monster")
		if res.Died {
			u.Metrics.RecordDeath()
		}
	}
	if res.Died {
		u.logger().WithField("lost", res.Lost).Info("player fainted")
	}
	return res, nil
}

func (u UseCase) clock() world.Clock {
	if u.Clock == (world.Clock{}) {
		return world.DefaultClock()
	}
	return u.Clock
}

func (u UseCase) logger() logrus.FieldLogger {
	if u.Logger == nil {
		return logrus.StandardLogger()
	}
	return u.Logger
}
