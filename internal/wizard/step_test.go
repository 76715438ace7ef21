package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_Number(t *testing.T) {
	assert.Equal(t, 0, StepLanding.Number())
	assert.Equal(t, 1, StepCapture.Number())
	assert.Equal(t, 2, StepVoiceOrText.Number())
	assert.Equal(t, 3, StepPreferences.Number())
	assert.Equal(t, 4, StepResults.Number())
	assert.Equal(t, 0, StepRecipeDetail.Number())
}

func TestStep_Labels(t *testing.T) {
	assert.Equal(t, "Capture", StepCapture.Label())
	assert.Equal(t, "Voice/Text", StepVoiceOrText.Label())
	assert.Equal(t, "Step 9", Step(9).Label())
	for _, s := range Steps {
		assert.NotEmpty(t, s.Title())
		assert.NotEmpty(t, s.Route())
	}
}

func TestParseRoute(t *testing.T) {
	cases := []struct {
		path string
		want Location
	}{
		{"/", Location{Step: StepLanding}},
		{"/capture", Location{Step: StepCapture}},
		{"/voice", Location{Step: StepVoiceOrText}},
		{"/preferences/", Location{Step: StepPreferences}},
		{" /results ", Location{Step: StepResults}},
		{"/recipe/4", Location{Step: StepRecipeDetail, RecipeID: "4"}},
		{"/recipe/999", Location{Step: StepRecipeDetail, RecipeID: "999"}},
	}
	for _, tc := range cases {
		got, err := ParseRoute(tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}
}

func TestParseRoute_Unknown(t *testing.T) {
	for _, p := range []string{"", "/nope", "/recipe/", "/recipe/1/2", "capture"} {
		_, err := ParseRoute(p)
		assert.ErrorIs(t, err, ErrUnknownRoute, p)
	}
}

func TestLocation_PathRoundTrip(t *testing.T) {
	for _, loc := range []Location{
		{Step: StepLanding},
		{Step: StepCapture},
		{Step: StepVoiceOrText},
		{Step: StepPreferences},
		{Step: StepResults},
		{Step: StepRecipeDetail, RecipeID: "2"},
	} {
		got, err := ParseRoute(loc.Path())
		require.NoError(t, err)
		assert.Equal(t, loc, got)
	}
}
