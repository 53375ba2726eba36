// Package persist moves whole-world snapshots between the live session and
// a SaveStore. Storage failures are logged and never interrupt play.
package persist

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"ogvalley/internal/app/ports"
	"ogvalley/internal/domain/valley"
	"ogvalley/internal/domain/world"
)

type UseCase struct {
	Store   ports.SaveStore
	Session ports.WorldSession
	Clock   world.Clock
	Rand    world.Rand
	Logger  logrus.FieldLogger
	// Async runs fire-and-forget work; it defaults to a new goroutine.
	Async   func(fn func())
	Timeout time.Duration
}

// Load reads the saved world, or builds a fresh one when nothing usable is
// stored. It never fails.
func (u UseCase) Load(ctx context.Context) *valley.World {
	log := u.logger()
	data, err := u.Store.Load(ctx, valley.SaveKey)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			log.Info("no save found, starting a new world")
		} else {
			log.WithError(err).Error("load failed, starting a new world")
		}
		return u.fresh()
	}
	w, err := valley.Restore(data)
	if err != nil {
		log.WithError(err).Error("save is malformed, starting a new world")
		return u.fresh()
	}
	w.Feedback.Say(valley.MsgLoaded, valley.LongMessage)
	log.WithFields(logrus.Fields{
		"day":   w.Clock.Day,
		"scene": w.CurrentScene,
	}).Info("world loaded")
	return w
}

// Save writes the current world synchronously.
func (u UseCase) Save(ctx context.Context) error {
	var data valley.SaveData
	if err := u.Session.Do(ctx, func(w *valley.World) error {
		data = w.Save()
		return nil
	}); err != nil {
		return err
	}
	return u.write(ctx, data)
}

// Autosave writes an already detached snapshot in the background.
func (u UseCase) Autosave(data valley.SaveData) {
	u.async(func() {
		ctx := context.Background()
		if u.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, u.Timeout)
			defer cancel()
		}
		_ = u.write(ctx, data)
	})
}

// Reset deletes the save and replaces the live world with a fresh one.
func (u UseCase) Reset(ctx context.Context) error {
	if err := u.Store.Delete(ctx, valley.SaveKey); err != nil && !errors.Is(err, ports.ErrNotFound) {
		u.logger().WithError(err).Error("delete save failed")
	}
	return u.Session.Do(ctx, func(w *valley.World) error {
		*w = *u.fresh()
		return nil
	})
}

func (u UseCase) write(ctx context.Context, data valley.SaveData) error {
	if err := u.Store.Save(ctx, valley.SaveKey, data); err != nil {
		u.logger().WithError(err).WithField("key", valley.SaveKey).Error("save failed")
		return err
	}
	u.logger().WithField("day", data.GameState.Day).Debug("world saved")
	return nil
}

func (u UseCase) fresh() *valley.World {
	rng := u.Rand
	if rng == nil {
		rng = world.NewRand(time.Now().UnixNano())
	}
	clock := u.Clock
	if clock == (world.Clock{}) {
		clock = world.DefaultClock()
	}
	return valley.NewWorld(clock, rng)
}

func (u UseCase) async(fn func()) {
	if u.Async != nil {
		u.Async(fn)
		return
	}
	go fn()
}

func (u UseCase) logger() logrus.FieldLogger {
	if u.Logger == nil {
		return logrus.StandardLogger()
	}
	return u.Logger
}
