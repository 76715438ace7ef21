package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/athulvp5125/Mood-Meal/internal/catalog"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/recommend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtinRecipe(t *testing.T, id string) *domain.Recipe {
	t.Helper()
	r, err := catalog.Builtin().Get(t.Context(), id)
	require.NoError(t, err)
	return r
}

func TestElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{5 * time.Second, "00:05"},
		{65 * time.Second, "01:05"},
		{10*time.Minute + 59*time.Second + 900*time.Millisecond, "10:59"},
		{-time.Second, "00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Elapsed(tt.in), "elapsed %s", tt.in)
	}
}

func TestMinutes(t *testing.T) {
	assert.Equal(t, "1 min", Minutes(1))
	assert.Equal(t, "25 mins", Minutes(25))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestRenderProgress_Clamps(t *testing.T) {
	assert.Contains(t, RenderProgress(-1, 4), "0%")
	assert.Contains(t, RenderProgress(2, 4), "100%")
	full := RenderProgress(1, 4)
	assert.Equal(t, 4, strings.Count(full, filledBlock))
	empty := RenderProgress(0, 1)
	assert.Equal(t, 2, strings.Count(empty, emptyBlock), "width clamps to 2")
}

func TestStepIndicator(t *testing.T) {
	labels := []string{"Capture", "Voice/Text", "Preferences", "Results"}

	got := StepIndicator(2, labels)
	assert.Contains(t, got, "Step 2 of 4")
	assert.Contains(t, got, "✔ Capture")
	assert.Contains(t, got, "● Voice/Text")
	assert.Contains(t, got, "○ Results")
	assert.Contains(t, got, "50%")

	assert.Contains(t, StepIndicator(9, labels), "Step 4 of 4")
	assert.Empty(t, StepIndicator(1, nil))
}

func TestMoodBadge(t *testing.T) {
	assert.Contains(t, MoodBadge(nil), "not detected")
	m := domain.MoodTired
	assert.Contains(t, MoodBadge(&m), "😴 tired")
}

func TestResultsSubtitle(t *testing.T) {
	m := domain.MoodTired
	assert.Equal(t,
		"Based on your tired mood, we've curated these energizing and revitalizing recipes just for you",
		ResultsSubtitle(&m))
	assert.Contains(t, ResultsSubtitle(nil), "Based on your preferences mood")
	assert.True(t, strings.HasSuffix(ResultsHeading(&m), "😴"))
}

func TestFormatRecipeDetail(t *testing.T) {
	r := builtinRecipe(t, "4")

	plain := FormatRecipeDetail(r, nil)
	assert.Contains(t, plain, r.Title)
	assert.Contains(t, plain, "INGREDIENTS")
	assert.Contains(t, plain, "INSTRUCTIONS")
	assert.Contains(t, plain, "NUTRITION INFORMATION")
	assert.Contains(t, plain, "1. "+r.Instructions[0])
	assert.Contains(t, plain, r.Ingredients[0])
	assert.NotContains(t, plain, "Why we recommended this recipe")

	m := domain.MoodTired
	withMood := FormatRecipeDetail(r, &m)
	assert.Contains(t, withMood, "Why we recommended this recipe")
	assert.Contains(t, withMood, "energizing")
}

func TestFormatRecipeCard(t *testing.T) {
	r := builtinRecipe(t, "1")
	card := FormatRecipeCard(r, true, 200)
	assert.Contains(t, card, "▸ ")
	assert.Contains(t, card, r.Title)
	assert.Contains(t, card, Minutes(r.CookTime))

	assert.NotContains(t, FormatRecipeCard(r, false, 200), "▸ ")
}

func TestFormatRecommendations(t *testing.T) {
	m := domain.MoodHappy
	res := recommend.Result{Recipes: []domain.Recipe{*builtinRecipe(t, "1")}}
	out := FormatRecommendations(&m, res)
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "id 1")
	assert.NotContains(t, out, "top picks")

	res.FinalFallback = true
	assert.Contains(t, FormatRecommendations(&m, res), "top picks instead")

	assert.Contains(t, FormatRecommendations(nil, recommend.Result{}), "No Recipes Found")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"ID", "Title"}, [][]string{{"1", "Soup"}, {"10", "Stew"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.True(t, strings.HasPrefix(lines[1], "──"))
	assert.Equal(t, strings.Index(lines[0], "Title"), strings.Index(lines[2], "Soup"))
	assert.Equal(t, strings.Index(lines[0], "Title"), strings.Index(lines[3], "Stew"))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestSpinner_StopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "working")
	stop()
	stop()
	assert.True(t, strings.HasSuffix(buf.String(), "\r\033[K"))
}
