package valley

import (
	"ogvalley/internal/domain/world"
)

const introLines = "INTRO"

var dialogueLines = map[NPCVariant]map[string][]string{
	VariantMayor: {
		introLines:                  {"Welcome to Og Valley!", "I'm Mayor Lewis. It's great to see new faces."},
		string(world.WeatherSunny):  {"A perfect day for farming!", "Keep the valley clean, will you?"},
		string(world.WeatherRainy):  {"Ah, the rain. Good for the crops, bad for my boots.", "You don't need to water crops today."},
		string(world.WeatherStormy): {"Stay safe! The lightning is fierce today.", "I hope the town hall roof holds..."},
	},
	VariantGranny: {
		introLines:                  {"Oh, hello dearie.", "You remind me of my grandson."},
		string(world.WeatherSunny):  {"The flowers look lovely in the sun.", "Make sure to take breaks, dear."},
		string(world.WeatherRainy):  {"My knees ache when it rains...", "Nothing like a cup of tea on a wet day."},
		string(world.WeatherStormy): {"Oh my, what a racket outside!", "I'm staying indoors with my knitting."},
	},
}

// DialogueLines returns the lines for a variant in the given weather,
// falling back to sunny lines. First meetings use the intro set.
func DialogueLines(variant NPCVariant, weather world.Weather, firstMeeting bool) []string {
	byKey := dialogueLines[variant]
	if firstMeeting {
		if lines := byKey[introLines]; len(lines) > 0 {
			return lines
		}
	}
	if lines := byKey[string(weather)]; len(lines) > 0 {
		return lines
	}
	return byKey[string(world.WeatherSunny)]
}

// Talk opens a conversation with the NPC at index i. Affection grows at most
// once per day.
func (w *World) Talk(i int, rng world.Rand) {
	n := &w.NPCs[i]
	first := n.LastTalked == 0
	lines := DialogueLines(n.Variant, w.Clock.Weather, first)
	if n.LastTalked < w.Clock.DayIndex {
		n.Affection = min(MaxAffection, n.Affection+AffectionPerTalk)
		n.LastTalked = w.Clock.DayIndex
		w.Feedback.Float(n.Scene, n.X, n.Y, "+10 affection", "lime")
	}
	text := "..."
	if len(lines) > 0 {
		text = lines[rng.Intn(len(lines))]
	}
	w.SetMode(ModeDialogue)
	w.Dialogue = &Dialogue{Speaker: n.Name, Text: text}
	w.Feedback.Cue(CuePickup)
}
