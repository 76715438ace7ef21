package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoodPresentation_CoversEveryMood(t *testing.T) {
	for _, m := range AllMoods {
		assert.NotEmpty(t, m.Emoji(), "emoji for %s", m)
		assert.NotEmpty(t, m.Description(), "description for %s", m)
		assert.Contains(t, MoodExplanation(m, "Test Dish"), "Test Dish", "explanation for %s", m)
	}
}

func TestEmotionDescription_NoMood(t *testing.T) {
	assert.Equal(t, "Your preferences", EmotionDescription(nil))
	assert.Equal(t, "😊", EmotionEmoji(nil))

	tired := MoodTired
	assert.Equal(t, "energizing and revitalizing", EmotionDescription(&tired))
	assert.Equal(t, "😴", EmotionEmoji(&tired))
}

func TestMoodExplanation_Text(t *testing.T) {
	got := MoodExplanation(MoodSad, "Chocolate Avocado Mousse")
	assert.Equal(t, "We recommend this comforting Chocolate Avocado Mousse to help lift your spirits with its warm, satisfying qualities.", got)
}

func TestRecipe_TagAndMoodMatching(t *testing.T) {
	r := &Recipe{Tags: []string{"comfort food", "vegetarian"}, MoodCategories: []string{"sad", "stressed"}}
	assert.True(t, r.HasTag("comfort food"))
	assert.False(t, r.HasTag("Comfort Food"), "tags match verbatim")
	assert.True(t, r.SuitsMood(MoodSad))
	assert.False(t, r.SuitsMood(MoodHappy))
}
