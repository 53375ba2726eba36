package clock

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"ogvalley/internal/app/ports"
	"ogvalley/internal/domain/valley"
	"ogvalley/internal/domain/world"
)

type Autosaver interface {
	Autosave(data valley.SaveData)
}

type UseCase struct {
	Session ports.WorldSession
	Clock   world.Clock
	Rand    world.Rand
	Saver   Autosaver
	Metrics ports.TickMetrics
	Logger  logrus.FieldLogger
}

// Tick advances the clock by one step while the player is in play. Crossing
// the end of day runs the whole sleep transition inside the same session
// turn, then hands a detached snapshot to the autosaver.
func (u UseCase) Tick(ctx context.Context) (world.Rollover, error) {
	var (
		roll world.Rollover
		save *valley.SaveData
	)
	err := u.Session.Do(ctx, func(w *valley.World) error {
		if w.UIMode != valley.ModePlaying || w.Clock.IsPaused {
			return nil
		}
		w.Clock, roll = u.clock().Advance(w.Clock)
		if !roll.NewDay {
			return nil
		}
		w.Sleep()
		w.AdvanceDay(u.Rand)
		msg := valley.MsgNewDay
		if roll.NewSeason {
			msg = fmt.Sprintf("%s has arrived!", w.Clock.Season())
		}
		w.Feedback.Say(msg, valley.NoticeMessage)
		data := w.Save()
		save = &data
		return nil
	})
	if err != nil {
		return world.Rollover{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordTick("clock")
	}
	if save == nil {
		return roll, nil
	}
	if u.Metrics != nil {
		u.Metrics.RecordRollover()
	}
	u.logger().WithFields(logrus.Fields{
		"day":     save.GameState.Day,
		"season":  save.GameState.Season(),
		"weather": save.GameState.Weather,
	}).Info("new day")
	if u.Saver != nil {
		u.Saver.Autosave(*save)
	}
	return roll, nil
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
