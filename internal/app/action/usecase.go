package action

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"ogvalley/internal/app/ports"
	"ogvalley/internal/domain/valley"
	"ogvalley/internal/domain/world"
)

var (
	ErrInvalidRequest      = errors.New("invalid action request")
	ErrInvalidActionParams = errors.New("invalid action params")
)

type UseCase struct {
	Session ports.WorldSession
	Clock   world.Clock
	// Rand is only used while the session is held.
	Rand    world.Rand
	Metrics ports.IntentMetrics
	Logger  logrus.FieldLogger
	Now     func() time.Time
}

// Execute validates an intent and applies it to the World under the session
// lock. Precondition failures come back as a rejected outcome, not an error.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	ac, err := u.ValidateRequest(req)
	if err != nil {
		u.recordFailure(req.Intent.Type)
		return Response{}, err
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	ac.In.NowAt = nowFn()

	var out Response
	err = u.Session.Do(ctx, func(w *valley.World) error {
		ac.World = w
		if ac.Spec.PlayingOnly && w.UIMode != valley.ModePlaying {
			ac.Tmp.Outcome = OutcomeNoop
		} else {
			if err := ac.Spec.Handler.Precheck(ctx, u, &ac); err != nil {
				return err
			}
			if ac.Tmp.Outcome == "" {
				if err := ac.Spec.Handler.Execute(ctx, u, &ac); err != nil {
					return err
				}
			}
		}
		out = u.BuildResponse(&ac)
		return nil
	})
	if err != nil {
		u.recordFailure(ac.Spec.Type)
		return Response{}, fmt.Errorf("execute %s: %w", ac.Spec.Type, err)
	}
	if u.Metrics != nil {
		u.Metrics.RecordOutcome(string(out.Intent), string(out.Outcome))
	}
	u.logger().WithFields(logrus.Fields{
		"intent":  out.Intent,
		"outcome": out.Outcome,
	}).Debug("intent executed")
	return out, nil
}

func (u UseCase) ValidateRequest(req Request) (ActionContext, error) {
	req.Intent.Type = IntentType(strings.TrimSpace(string(req.Intent.Type)))
	req.Intent.Direction = strings.ToUpper(strings.TrimSpace(req.Intent.Direction))
	req.Intent.Source = strings.ToLower(strings.TrimSpace(req.Intent.Source))
	if !isSupportedIntentType(req.Intent.Type) {
		return ActionContext{}, ErrInvalidRequest
	}
	if !hasValidIntentParams(req.Intent) {
		return ActionContext{}, ErrInvalidActionParams
	}
	spec, ok := actionRegistry()[req.Intent.Type]
	if !ok {
		return ActionContext{}, ErrInvalidRequest
	}
	return ActionContext{In: ActionInput{Req: req}, Spec: spec}, nil
}

func (u UseCase) BuildResponse(ac *ActionContext) Response {
	outcome := ac.Tmp.Outcome
	if outcome == "" {
		outcome = OutcomeApplied
	}
	cues := ac.World.Feedback.DrainCues()
	if cues == nil {
		cues = []valley.Cue{}
	}
	return Response{
		Intent:  ac.Spec.Type,
		Outcome: outcome,
		Message: ac.Tmp.Message,
		Cues:    cues,
	}
}

func (u UseCase) recordFailure(t IntentType) {
	if u.Metrics != nil {
		u.Metrics.RecordFailure(string(t))
	}
}

func (u UseCase) logger() logrus.FieldLogger {
	if u.Logger == nil {
		return logrus.StandardLogger()
	}
	return u.Logger
}

func (u UseCase) rand() world.Rand {
	if u.Rand == nil {
		return world.NewRand(time.Now().UnixNano())
	}
	return u.Rand
}
