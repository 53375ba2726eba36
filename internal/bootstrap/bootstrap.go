// Package bootstrap assembles the save store, the live session and the use
// cases that both binaries run.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"ogvalley/internal/adapter/metrics/inmemory"
	boltrepo "ogvalley/internal/adapter/repo/bolt"
	gormrepo "ogvalley/internal/adapter/repo/gorm"
	"ogvalley/internal/adapter/repo/memory"
	redisrepo "ogvalley/internal/adapter/repo/redis"
	"ogvalley/internal/adapter/scheduler"
	"ogvalley/internal/app/action"
	"ogvalley/internal/app/ai"
	"ogvalley/internal/app/clock"
	"ogvalley/internal/app/feedback"
	"ogvalley/internal/app/observe"
	"ogvalley/internal/app/persist"
	"ogvalley/internal/app/ports"
	"ogvalley/internal/app/session"
	"ogvalley/internal/config"
	"ogvalley/internal/domain/world"
)

const saveTimeout = 5 * time.Second

// OpenStore opens the configured save backend. The returned closer is never
// nil.
func OpenStore(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (ports.SaveStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.SaveBackend {
	case config.BackendMemory:
		return memory.NewStore(), noop, nil
	case config.BackendBolt:
		s, err := boltrepo.Open(cfg.BoltPath)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case config.BackendRedis:
		s, err := redisrepo.Dial(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case config.BackendPostgres:
		if cfg.DBDSN == "" {
			return nil, noop, fmt.Errorf("OGV_DB_DSN is required for the postgres backend")
		}
		db, err := gormrepo.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return nil, noop, err
		}
		applied, err := gormrepo.ApplyMigrations(ctx, db, cfg.MigrationsDir)
		if err != nil {
			return nil, noop, err
		}
		if len(applied) > 0 {
			log.WithField("versions", applied).Info("migrations applied")
		}
		closer := noop
		if sqlDB, err := db.DB(); err == nil {
			closer = sqlDB.Close
		}
		return gormrepo.NewSaveStore(db), closer, nil
	default:
		return nil, noop, fmt.Errorf("unknown save backend %q", cfg.SaveBackend)
	}
}

type Game struct {
	Session  *session.Session
	Metrics  *inmemory.Recorder
	Action   action.UseCase
	Observe  observe.UseCase
	Persist  persist.UseCase
	Clock    clock.UseCase
	AI       ai.UseCase
	Feedback feedback.UseCase

	cfg config.Config
}

// Build loads the saved world (or a fresh one) and wires every use case to
// the same session and random source.
func Build(ctx context.Context, cfg config.Config, store ports.SaveStore, log logrus.FieldLogger) Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := world.NewRand(seed)
	wclock := world.DefaultClock()
	metrics := inmemory.NewRecorder()

	p := persist.UseCase{
		Store:   store,
		Clock:   wclock,
		Rand:    rng,
		Logger:  log.WithField("component", "persist"),
		Timeout: saveTimeout,
	}
	sess := session.New(p.Load(ctx))
	p.Session = sess

	return Game{
		Session: sess,
		Metrics: metrics,
		Action: action.UseCase{
			Session: sess,
			Clock:   wclock,
			Rand:    rng,
			Metrics: metrics,
			Logger:  log.WithField("component", "action"),
			Now:     time.Now,
		},
		Observe: observe.UseCase{Session: sess},
		Persist: p,
		Clock: clock.UseCase{
			Session: sess,
			Clock:   wclock,
			Rand:    rng,
			Saver:   p,
			Metrics: metrics,
			Logger:  log.WithField("component", "clock"),
		},
		AI: ai.UseCase{
			Session: sess,
			Clock:   wclock,
			Rand:    rng,
			Metrics: metrics,
			Logger:  log.WithField("component", "ai"),
		},
		Feedback: feedback.UseCase{Session: sess, Metrics: metrics},
		cfg:      cfg,
	}
}

// Jobs are the three periodic ticks that move the world in real time.
func (g Game) Jobs() []scheduler.Job {
	return []scheduler.Job{
		{Name: "clock", Every: g.cfg.ClockTick, Run: func(ctx context.Context) error {
			_, err := g.Clock.Tick(ctx)
			return err
		}},
		{Name: "monster", Every: g.cfg.MonsterTick, Run: func(ctx context.Context) error {
			_, err := g.AI.Tick(ctx)
			return err
		}},
		{Name: "feedback", Every: g.cfg.FeedbackTick, Run: func(ctx context.Context) error {
			_, err := g.Feedback.Tick(ctx, g.cfg.FeedbackTick)
			return err
		}},
	}
}
