package mood

import (
	"strings"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
)

// SimulatedTranscript is the text a stopped voice recording produces, since
// audio is never actually transcribed.
const SimulatedTranscript = "I'm feeling a bit tired today and need some energy."

// keywordRules are checked in order; the first rule with a matching keyword
// decides the mood.
var keywordRules = []struct {
	mood     domain.Mood
	keywords []string
}{
	{domain.MoodHappy, []string{"happy", "joy", "excited"}},
	{domain.MoodSad, []string{"sad", "depressed", "down"}},
	{domain.MoodAngry, []string{"angry", "upset", "mad"}},
	{domain.MoodTired, []string{"tired", "exhausted", "sleepy"}},
	{domain.MoodAnxious, []string{"anxious", "worried", "stressed"}},
	{domain.MoodEnergetic, []string{"energetic", "active", "motivated"}},
}

// ClassifyText maps free text to a mood by case-insensitive substring match.
// Text matching no rule is neutral.
func ClassifyText(text string) domain.Mood {
	lower := strings.ToLower(text)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.mood
			}
		}
	}
	return domain.MoodNeutral
}

// randomMoods is the output set of the image and voice simulators. It does
// not include angry.
var randomMoods = []domain.Mood{
	domain.MoodHappy, domain.MoodSad, domain.MoodTired,
	domain.MoodAnxious, domain.MoodEnergetic, domain.MoodNeutral,
}

// RandomMoods returns a copy of the moods the random simulators can produce.
func RandomMoods() []domain.Mood {
	out := make([]domain.Mood, len(randomMoods))
	copy(out, randomMoods)
	return out
}
