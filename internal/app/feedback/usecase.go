package feedback

import (
	"context"
	"time"

	"ogvalley/internal/app/ports"
	"ogvalley/internal/domain/valley"
)

type UseCase struct {
	Session ports.WorldSession
	Metrics ports.TickMetrics
}

// Tick ages floating texts by one step and the message by elapsed. It
// reports whether anything visible changed.
func (u UseCase) Tick(ctx context.Context, elapsed time.Duration) (bool, error) {
	var changed bool
	err := u.Session.Do(ctx, func(w *valley.World) error {
		changed = w.Feedback.Decay(elapsed)
		return nil
	})
	if err != nil {
		return false, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordTick("feedback")
	}
	return changed, nil
}
