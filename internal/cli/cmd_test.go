package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/athulvp5125/Mood-Meal/internal/catalog"
	"github.com/athulvp5125/Mood-Meal/internal/db"
	"github.com/athulvp5125/Mood-Meal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	output, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, output, "moodmeal")
	assert.Contains(t, output, "recommend")
}

func TestVersionCmd(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "version")
	require.NoError(t, err)
	assert.Equal(t, "moodmeal test\n", output)
}

// --- analyze ---

func TestAnalyzeCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"first match wins", []string{"I am happy but also a bit sad"}, "happy"},
		{"tired before energetic", []string{"I'm feeling tired and need an energy boost"}, "tired"},
		{"no keyword", []string{"nothing", "special", "today"}, "neutral"},
		{"angry", []string{"so MAD right now"}, "angry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCmd(t, testApp(t), append([]string{"analyze", "-q"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", output)
		})
	}
}

func TestAnalyzeCmd_ReadsStdin(t *testing.T) {
	root := NewRootCmd(testApp(t))
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetIn(strings.NewReader("feeling stressed about work\n"))
	root.SetArgs([]string{"analyze"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "anxious")
	assert.Contains(t, buf.String(), "grounding and relaxing")
}

func TestAnalyzeCmd_EmptyInput(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "analyze")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to analyze")
}

// --- detect ---

func TestDetectCmd_Sample(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "detect", "--sample")
	require.NoError(t, err)
	assert.Contains(t, output, "Camera snapshot")
	assert.Contains(t, output, "tired")
}

func TestDetectCmd_Voice(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "detect", "--voice", "-q")
	require.NoError(t, err)
	assert.Equal(t, "tired\n", output)
}

func TestDetectCmd_Image(t *testing.T) {
	path := writeSamplePNG(t)

	output, err := executeCmd(t, testApp(t), "detect", "--image", path)
	require.NoError(t, err)
	assert.Contains(t, output, filepath.Base(path))
}

func TestDetectCmd_RejectsNonImage(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("just some text\n"))

	_, err := executeCmd(t, testApp(t), "detect", "--image", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotImage)
}

func TestDetectCmd_RequiresInput(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "detect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "choose an input")
}

func TestDetectCmd_InputsAreExclusive(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "detect", "--sample", "--voice")
	assert.Error(t, err)
}

// --- recommend ---

func TestRecommendCmd_Tired(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "recommend", "--mood", "tired", "--ids")
	require.NoError(t, err)
	assert.Equal(t, "2\n4\n", output)
}

func TestRecommendCmd_Preferences(t *testing.T) {
	output, err := executeCmd(t, testApp(t),
		"recommend", "--mood", "happy", "--diet", "vegan,gluten-free", "--goal", "mood-improvement", "--ids")
	require.NoError(t, err)
	assert.Equal(t, "5\n", output)
}

func TestRecommendCmd_FinalFallback(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "recommend", "--mood", "angry", "--diet", "vegan")
	require.NoError(t, err)
	assert.Contains(t, output, "Comforting Mac and Cheese")
	assert.Contains(t, output, "top picks instead")
}

func TestRecommendCmd_NoMoodUsesNeutral(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "recommend")
	require.NoError(t, err)
	assert.Contains(t, output, "Mediterranean Grilled Chicken Salad")
	assert.Contains(t, output, "Based on your preferences mood")
}

func TestRecommendCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"mood", []string{"--mood", "sleepy"}},
		{"diet", []string{"--diet", "carnivore"}},
		{"goal", []string{"--goal", "bulk"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, testApp(t), append([]string{"recommend"}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

// --- recipe ---

func TestRecipeCmd(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "recipe", "4", "--mood", "tired")
	require.NoError(t, err)
	assert.Contains(t, output, "Spicy Kimchi Fried Rice")
	assert.Contains(t, output, "Why we recommended this recipe")
	assert.Contains(t, output, "INGREDIENTS")
}

func TestRecipeCmd_NoMoodNoExplanation(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "recipe", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "Comforting Mac and Cheese")
	assert.NotContains(t, output, "Why we recommended")
}

func TestRecipeCmd_NotFound(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "recipe", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// --- catalog ---

func TestCatalogListCmd(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "catalog", "list")
	require.NoError(t, err)
	for _, title := range []string{"Comforting Mac and Cheese", "Mediterranean Grilled Chicken Salad"} {
		assert.Contains(t, output, title)
	}
}

func TestCatalogListCmd_FilterByMood(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "catalog", "list", "--mood", "anxious")
	require.NoError(t, err)
	assert.Contains(t, output, "Comforting Mac and Cheese")
	assert.Contains(t, output, "Calming Chamomile Lavender Tea Cookies")
	assert.NotContains(t, output, "Spicy Kimchi Fried Rice")
}

func TestCatalogExportCmd_RoundTrips(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "catalog", "export")
	require.NoError(t, err)

	parsed, err := catalog.Parse([]byte(output))
	require.NoError(t, err)
	assert.Equal(t, catalog.Builtin().Len(), parsed.Len())
}

func TestCatalogSeedCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	output, err := executeCmd(t, testApp(t), "catalog", "seed", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Seeded 6 recipes from builtin")

	conn, err := db.OpenDB(dbPath)
	require.NoError(t, err)
	defer conn.Close()
	n, err := repository.NewSQLiteRecipeRepo(conn).Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestCatalogSeedCmd_FromFile(t *testing.T) {
	exported, err := executeCmd(t, testApp(t), "catalog", "export")
	require.NoError(t, err)
	from := writeFile(t, "recipes.yaml", []byte(exported))
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	output, err := executeCmd(t, testApp(t), "catalog", "seed", "--db", dbPath, "--from", from)
	require.NoError(t, err)
	assert.Contains(t, output, "from "+from)
}

func TestCatalogSeedCmd_NeedsDB(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "catalog", "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no database")
}

// --- routes ---

func TestRoutesCmd(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "routes")
	require.NoError(t, err)
	for _, route := range []string{"/capture", "/voice", "/preferences", "/results", "/recipe/:id"} {
		assert.Contains(t, output, route)
	}
}
