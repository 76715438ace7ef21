package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves into an empty directory so no stray moodmeal.yaml is found.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv(PathEnvVar, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 1500*time.Millisecond, cfg.Latency.Image)
	assert.Equal(t, 1800*time.Millisecond, cfg.Latency.Recommend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Catalog.Path)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := chdirTemp(t)
	p := writeFile(t, dir, "custom.yaml", `
latency:
  text: 250ms
  recommend: 0s
catalog:
  path: recipes.yaml
log:
  level: debug
random:
  seed: 42
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Latency.Text)
	assert.Equal(t, time.Duration(0), cfg.Latency.Recommend)
	assert.Equal(t, 1500*time.Millisecond, cfg.Latency.Image, "unset keys keep defaults")
	assert.Equal(t, "recipes.yaml", cfg.Catalog.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, int64(42), cfg.Random.Seed)
}

func TestLoad_DefaultFileIsDiscovered(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv(PathEnvVar, "")
	writeFile(t, dir, "moodmeal.yaml", "log:\n  format: json\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvPathVariable(t *testing.T) {
	dir := chdirTemp(t)
	p := writeFile(t, dir, "elsewhere.yaml", "catalog:\n  db: recipes.db\n")
	t.Setenv(PathEnvVar, p)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "recipes.db", cfg.Catalog.DB)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	p := writeFile(t, dir, "c.yaml", "latency:\n  text: 250ms\nlog:\n  level: debug\n")
	t.Setenv("MOODMEAL_LATENCY_TEXT", "10ms")
	t.Setenv("MOODMEAL_LOG_LEVEL", "warn")
	t.Setenv("MOODMEAL_CATALOG_PATH", "/tmp/x.yaml")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, cfg.Latency.Text)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/x.yaml", cfg.Catalog.Path)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := chdirTemp(t)
	_, err := Load(filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"bad level":        "log:\n  level: loud\n",
		"bad format":       "log:\n  format: xml\n",
		"negative latency": "latency:\n  text: -1s\n",
		"bad duration":     "latency:\n  text: soon\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			dir := chdirTemp(t)
			_, err := Load(writeFile(t, dir, "bad.yaml", doc))
			assert.Error(t, err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "latency.text", envKey("MOODMEAL_LATENCY_TEXT"))
	assert.Equal(t, "catalog.db", envKey("MOODMEAL_CATALOG_DB"))
	assert.Equal(t, "random.seed", envKey("MOODMEAL_RANDOM_SEED"))
}
