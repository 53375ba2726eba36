package valley

import (
	"errors"
	"time"
)

// ErrNoEffect means the rule did not apply and nothing changed. The player
// gets no message for it.
var ErrNoEffect = errors.New("no effect")

// Rejection is a precondition failure the player should be told about.
// Nothing changes when one is returned.
type Rejection struct {
	Reason string
	TTL    time.Duration
}

func (r *Rejection) Error() string {
	return r.Reason
}

func reject(reason string, ttl time.Duration) error {
	return &Rejection{Reason: reason, TTL: ttl}
}

// Report shows a rejection to the player and reports whether err was one.
func (w *World) Report(err error) bool {
	var rej *Rejection
	if !errors.As(err, &rej) {
		return false
	}
	w.Feedback.Say(rej.Reason, rej.TTL)
	return true
}
