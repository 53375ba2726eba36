package action

import (
	"context"
	"testing"
	"time"

	"ogvalley/internal/app/session"
	"ogvalley/internal/domain/catalog"
	"ogvalley/internal/domain/valley"
	"ogvalley/internal/domain/world"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }
func (r fixedRand) Intn(n int) int   { return int(float64(r) * float64(n)) }

type stubMetrics struct {
	outcomes map[string]int
	failures map[string]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{outcomes: map[string]int{}, failures: map[string]int{}}
}

func (m *stubMetrics) RecordOutcome(intent, outcome string) { m.outcomes[intent+":"+outcome]++ }
func (m *stubMetrics) RecordFailure(intent string)          { m.failures[intent]++ }

type harness struct {
	uc      UseCase
	sess    *session.Session
	metrics *stubMetrics
}

func newHarness(t *testing.T) harness {
	t.Helper()
	w := valley.NewWorld(world.DefaultClock(), fixedRand(0.99))
	sess := session.New(w)
	metrics := newStubMetrics()
	return harness{
		uc: UseCase{
			Session: sess,
			Clock:   world.DefaultClock(),
			Rand:    fixedRand(0),
			Metrics: metrics,
			Now:     func() time.Time { return time.Unix(1700000000, 0) },
		},
		sess:    sess,
		metrics: metrics,
	}
}

func (h harness) exec(t *testing.T, in Intent) Response {
	t.Helper()
	resp, err := h.uc.Execute(context.Background(), Request{Intent: in})
	if err != nil {
		t.Fatalf("execute %s: %v", in.Type, err)
	}
	return resp
}

// mutate edits the live world directly for test setup.
func (h harness) mutate(t *testing.T, fn func(w *valley.World)) {
	t.Helper()
	_ = h.sess.Do(context.Background(), func(w *valley.World) error {
		fn(w)
		return nil
	})
}

func (h harness) world() *valley.World {
	return h.sess.Snapshot()
}

func slotOf(t *testing.T, w *valley.World, id catalog.ID) int {
	t.Helper()
	for i, st := range w.Player.Inventory {
		if st != nil && st.ItemID == id {
			return i
		}
	}
	t.Fatalf("item %d not in inventory", id)
	return -1
}

func hasCue(cues []valley.Cue, c valley.Cue) bool {
	for _, got := range cues {
		if got == c {
			return true
		}
	}
	return false
}
