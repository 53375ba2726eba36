package valley

import (
	"time"

	"github.com/google/uuid"

	"ogvalley/internal/domain/world"
)

type Cue string

const (
	CueStep   Cue = "step"
	CueTill   Cue = "till"
	CueWater  Cue = "water"
	CueBreak  Cue = "break"
	CuePlant  Cue = "plant"
	CuePickup Cue = "pickup"
	CueSwing  Cue = "swing"
)

type FloatingText struct {
	ID    string      `json:"id"`
	Scene world.Scene `json:"scene"`
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	Text  string      `json:"text"`
	Color string      `json:"color"`
	Life  int         `json:"life"`
}

type Message struct {
	Text      string        `json:"text"`
	Remaining time.Duration `json:"remaining"`
}

// Feedback is transient presentation state. It is never saved.
type Feedback struct {
	Floating []FloatingText `json:"floating_texts"`
	Message  *Message       `json:"message,omitempty"`
	cues     []Cue
}

func (f *Feedback) Float(scene world.Scene, x, y int, text, color string) {
	f.Floating = append(f.Floating, FloatingText{
		ID:    uuid.NewString(),
		Scene: scene,
		X:     float64(x),
		Y:     float64(y),
		Text:  text,
		Color: color,
		Life:  FloatingTextLife,
	})
}

// Say replaces the current message.
func (f *Feedback) Say(text string, ttl time.Duration) {
	f.Message = &Message{Text: text, Remaining: ttl}
}

func (f *Feedback) Cue(c Cue) {
	f.cues = append(f.cues, c)
}

// DrainCues hands the pending cues to the caller and forgets them.
func (f *Feedback) DrainCues() []Cue {
	out := f.cues
	f.cues = nil
	return out
}

// Decay ages floating texts by one step and the message by elapsed. It
// reports whether anything visible changed.
func (f *Feedback) Decay(elapsed time.Duration) bool {
	changed := false
	if len(f.Floating) > 0 {
		kept := f.Floating[:0]
		for _, ft := range f.Floating {
			ft.Life--
			ft.Y -= FloatingTextDrift
			if ft.Life > 0 {
				kept = append(kept, ft)
			}
		}
		f.Floating = kept
		changed = true
	}
	if f.Message != nil {
		f.Message.Remaining -= elapsed
		if f.Message.Remaining <= 0 {
			f.Message = nil
		}
		changed = true
	}
	return changed
}

func (f Feedback) clone() Feedback {
	out := Feedback{}
	if len(f.Floating) > 0 {
		out.Floating = append([]FloatingText(nil), f.Floating...)
	}
	if f.Message != nil {
		m := *f.Message
		out.Message = &m
	}
	if len(f.cues) > 0 {
		out.cues = append([]Cue(nil), f.cues...)
	}
	return out
}
