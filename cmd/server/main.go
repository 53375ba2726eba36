package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "ogvalley/internal/adapter/http"
	"ogvalley/internal/adapter/scheduler"
	"ogvalley/internal/bootstrap"
	"ogvalley/internal/config"
	"ogvalley/internal/logger"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const shutdownGrace = 5 * time.Second

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("server stopped with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.WithError(err).Warn("close save store")
		}
	}()
	game := bootstrap.Build(ctx, cfg, store, log)

	h := httpadapter.Handler{
		ActionUC:  game.Action,
		ObserveUC: game.Observe,
		PersistUC: game.Persist,
		KPI:       game.Metrics,
		Logger:    log.WithField("component", "http"),
	}
	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scheduler.Runner{Jobs: game.Jobs(), Logger: log.WithField("component", "scheduler")}.Run(ctx)
	})
	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":    cfg.HTTPAddr,
			"backend": cfg.SaveBackend,
		}).Info("ogvalley server listening")
		if err := s.Run(); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := game.Persist.Save(shutdownCtx); err != nil {
			log.WithError(err).Error("final save failed")
		}
		return s.Shutdown(shutdownCtx)
	})
	err = g.Wait()
	log.Info("ogvalley server stopped")
	return err
}
