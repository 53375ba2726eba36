package inmemory

import "sync"

type Snapshot struct {
	IntentTotal   uint64            `json:"intent_total"`
	IntentFailure uint64            `json:"intent_failure"`
	ByOutcome     map[string]uint64 `json:"by_outcome"`
	ByIntent      map[string]uint64 `json:"by_intent"`
	Ticks         map[string]uint64 `json:"ticks"`
	Rollovers     uint64            `json:"day_rollovers"`
	Deaths        uint64            `json:"deaths"`
}

// Recorder counts intent outcomes and ticks for /ops/kpi.
type Recorder struct {
	mu        sync.Mutex
	failure   uint64
	byOutcome map[string]uint64
	byIntent  map[string]uint64
	ticks     map[string]uint64
	rollovers uint64
	deaths    uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOutcome: map[string]uint64{},
		byIntent:  map[string]uint64{},
		ticks:     map[string]uint64{},
	}
}

func (r *Recorder) RecordOutcome(intent, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byOutcome[outcome]++
	r.byIntent[intent]++
}

func (r *Recorder) RecordFailure(intent string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	r.byIntent[intent]++
}

func (r *Recorder) RecordTick(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks[kind]++
}

func (r *Recorder) RecordRollover() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollovers++
}

func (r *Recorder) RecordDeath() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deaths++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		IntentFailure: r.failure,
		ByOutcome:     copyCounts(r.byOutcome),
		ByIntent:      copyCounts(r.byIntent),
		Ticks:         copyCounts(r.ticks),
		Rollovers:     r.rollovers,
		Deaths:        r.deaths,
	}
	out.IntentTotal = r.failure
	for _, v := range r.byOutcome {
		out.IntentTotal += v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}

func copyCounts(in map[string]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
