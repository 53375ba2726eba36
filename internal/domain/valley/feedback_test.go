package valley

import (
	"testing"
	"time"

	"ogvalley/internal/domain/world"
)

func TestFloatingTextDecays(t *testing.T) {
	var f Feedback
	f.Float(world.SceneFarm, 3, 4, "+1", "white")
	if f.Floating[0].ID == "" || f.Floating[0].Life != FloatingTextLife {
		t.Fatalf("unexpected floating text %+v", f.Floating[0])
	}
	f.Decay(0)
	if f.Floating[0].Life != FloatingTextLife-1 || f.Floating[0].Y >= 4 {
		t.Fatalf("expected decay and drift, got %+v", f.Floating[0])
	}
	for i := 0; i < FloatingTextLife; i++ {
		f.Decay(0)
	}
	if len(f.Floating) != 0 {
		t.Fatalf("expected floating text gone, %d left", len(f.Floating))
	}
}

func TestMessageExpires(t *testing.T) {
	var f Feedback
	f.Say("hello", time.Second)
	f.Decay(600 * time.Millisecond)
	if f.Message == nil {
		t.Fatalf("message expired too early")
	}
	f.Decay(600 * time.Millisecond)
	if f.Message != nil {
		t.Fatalf("message should expire")
	}
	if f.Decay(time.Second) {
		t.Fatalf("nothing left to change")
	}
}

func TestDrainCues(t *testing.T) {
	var f Feedback
	f.Cue(CueTill)
	f.Cue(CueSwing)
	if got := f.DrainCues(); len(got) != 2 {
		t.Fatalf("expected two cues, got %v", got)
	}
	if got := f.DrainCues(); len(got) != 0 {
		t.Fatalf("cues not drained")
	}
}
