package cli

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// writeSamplePNG writes the built-in snapshot as a real PNG file.
func writeSamplePNG(t *testing.T) string {
	t.Helper()
	_, encoded, ok := strings.Cut(sampleSnapshot, ",")
	require.True(t, ok)
	data, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	return writeFile(t, "selfie.png", data)
}

func TestLoadImage_PNG(t *testing.T) {
	path := writeSamplePNG(t)

	img, err := loadImage(path)
	require.NoError(t, err)
	assert.Equal(t, "selfie.png", img.label)
	assert.True(t, strings.HasPrefix(img.dataURI, "data:image/png;base64,"))
	assert.Equal(t, sampleSnapshot, img.dataURI)
}

func TestLoadImage_Errors(t *testing.T) {
	dir := t.TempDir()
	text := writeFile(t, "notes.txt", []byte("hello"))

	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "  ", "no file chosen"},
		{"missing", filepath.Join(dir, "nope.png"), "reading image"},
		{"directory", dir, "is a directory"},
		{"not an image", text, "not an image"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadImage(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "a.png"), expandHome("~/a.png"))
	assert.Equal(t, "/tmp/a.png", expandHome(" /tmp/a.png "))
	assert.Equal(t, "~user/a.png", expandHome("~user/a.png"))
}

func TestSnapshotImage(t *testing.T) {
	img := snapshotImage()
	assert.Equal(t, "camera snapshot", img.label)
	assert.Equal(t, sampleSnapshot, img.dataURI)
}
