package domain

import "fmt"

type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodSad       Mood = "sad"
	MoodAngry     Mood = "angry"
	MoodTired     Mood = "tired"
	MoodAnxious   Mood = "anxious"
	MoodEnergetic Mood = "energetic"
	MoodNeutral   Mood = "neutral"
)

// AllMoods lists every mood in declaration order.
var AllMoods = []Mood{
	MoodHappy, MoodSad, MoodAngry, MoodTired, MoodAnxious, MoodEnergetic, MoodNeutral,
}

// ParseMood converts a label into a Mood.
func ParseMood(s string) (Mood, error) {
	for _, m := range AllMoods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", &ParseError{Kind: "mood", Value: s, Err: ErrUnknownMood}
}

// Emoji returns the glyph shown next to the results heading.
func (m Mood) Emoji() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodSad:
		return "😔"
	case MoodAngry:
		return "😠"
	case MoodTired:
		return "😴"
	case MoodAnxious:
		return "😰"
	case MoodEnergetic:
		return "⚡"
	case MoodNeutral:
		return "😐"
	}
	return "😊"
}

// Description returns the adjective pair used to describe recipes curated for m.
func (m Mood) Description() string {
	switch m {
	case MoodHappy:
		return "uplifting and celebratory"
	case MoodSad:
		return "comforting and nurturing"
	case MoodAngry:
		return "calming and soothing"
	case MoodTired:
		return "energizing and revitalizing"
	case MoodAnxious:
		return "grounding and relaxing"
	case MoodEnergetic:
		return "balanced and sustaining"
	case MoodNeutral:
		return "balanced and nutritious"
	}
	return ""
}

// EmotionDescription describes the recommendation set for an optional mood.
func EmotionDescription(m *Mood) string {
	if m == nil {
		return "Your preferences"
	}
	return m.Description()
}

// EmotionEmoji returns the heading glyph for an optional mood.
func EmotionEmoji(m *Mood) string {
	if m == nil {
		return "😊"
	}
	return m.Emoji()
}

// MoodExplanation returns the sentence explaining why a recipe suits the mood.
func MoodExplanation(m Mood, title string) string {
	switch m {
	case MoodHappy:
		return fmt.Sprintf("This %s is perfect for your happy mood! The bright flavors will complement your positive energy.", title)
	case MoodSad:
		return fmt.Sprintf("We recommend this comforting %s to help lift your spirits with its warm, satisfying qualities.", title)
	case MoodAngry:
		return fmt.Sprintf("This soothing %s can help calm your angry mood with balanced flavors and comforting textures.", title)
	case MoodTired:
		return fmt.Sprintf("This energizing %s contains ingredients that can help combat fatigue and boost your energy levels.", title)
	case MoodAnxious:
		return fmt.Sprintf("The ingredients in this %s have calming properties that may help ease anxiety and stress.", title)
	case MoodEnergetic:
		return fmt.Sprintf("This balanced %s will help sustain your energy without causing a crash later.", title)
	case MoodNeutral:
		return fmt.Sprintf("This well-rounded %s is a great choice for your balanced mood, providing both nutrition and satisfaction.", title)
	}
	return ""
}
