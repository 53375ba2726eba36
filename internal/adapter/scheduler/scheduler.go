// Package scheduler drives the periodic world ticks from real time.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Job struct {
	Name  string
	Every time.Duration
	Run   func(ctx context.Context) error
}

// Runner starts one ticker per job. A failing tick is logged and the job
// keeps running; only cancellation stops it.
type Runner struct {
	Jobs   []Job
	Logger logrus.FieldLogger
}

// Run blocks until ctx is done.
func (r Runner) Run(ctx context.Context) error {
	for _, j := range r.Jobs {
		if j.Every <= 0 || j.Run == nil {
			return fmt.Errorf("scheduler: invalid job %q", j.Name)
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, j := range r.Jobs {
		j := j
		g.Go(func() error {
			r.loop(ctx, j)
			return nil
		})
	}
	return g.Wait()
}

func (r Runner) loop(ctx context.Context, j Job) {
	log := r.logger().WithField("job", j.Name)
	log.WithField("every", j.Every).Debug("ticker started")
	ticker := time.NewTicker(j.Every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Debug("ticker stopped")
			return
		case <-ticker.C:
			if err := j.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.WithError(err).Warn("tick failed")
			}
		}
	}
}

func (r Runner) logger() logrus.FieldLogger {
	if r.Logger == nil {
		return logrus.StandardLogger()
	}
	return r.Logger
}
