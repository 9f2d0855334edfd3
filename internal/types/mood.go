package types

import "strings"

// Mood is the closed set of mood labels the dashboard can report. The client
// sends labels decorated with emoji ("Anxious 🌪️"); ParseMood keys on the
// leading word only, and only on an exact match, so a label like "Sadist"
// does not collapse into MoodSad.
type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodNeutral  Mood = "Neutral"
	MoodStressed Mood = "Stressed"
	MoodAnxious  Mood = "Anxious"
	MoodSad      Mood = "Sad"
	MoodAngry    Mood = "Angry"
	MoodUnknown  Mood = "Unknown"
)

var knownMoods = map[string]Mood{
	"happy":    MoodHappy,
	"neutral":  MoodNeutral,
	"stressed": MoodStressed,
	"anxious":  MoodAnxious,
	"sad":      MoodSad,
	"angry":    MoodAngry,
}

func ParseMood(label string) Mood {
	fields := strings.Fields(strings.TrimSpace(label))
	if len(fields) == 0 {
		return MoodUnknown
	}
	if m, ok := knownMoods[strings.ToLower(fields[0])]; ok {
		return m
	}
	return MoodUnknown
}

func (m Mood) String() string {
	return string(m)
}
