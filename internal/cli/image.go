package cli

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// maxImageBytes caps uploads so a stray path to a huge file fails fast.
const maxImageBytes = 10 << 20

// sampleSnapshot stands in for a webcam frame. Detection never looks at the
// pixels, so a fixed 1x1 PNG is enough.
const sampleSnapshot = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

var errNotImage = errors.New("not an image")

// capturedImage is an image chosen on the capture step, ready to submit.
type capturedImage struct {
	dataURI string
	label   string
	size    int
}

func snapshotImage() capturedImage {
	return capturedImage{dataURI: sampleSnapshot, label: "camera snapshot", size: len(sampleSnapshot)}
}

// loadImage reads path and encodes it as a base64 data URI. The content
// type is sniffed from the bytes, and anything that is not an image is
// rejected.
func loadImage(path string) (capturedImage, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return capturedImage{}, fmt.Errorf("no file chosen")
	}
	info, err := os.Stat(path)
	if err != nil {
		return capturedImage{}, fmt.Errorf("reading image: %w", err)
	}
	if info.IsDir() {
		return capturedImage{}, fmt.Errorf("reading image: %s is a directory", path)
	}
	if info.Size() > maxImageBytes {
		return capturedImage{}, fmt.Errorf("image is %d bytes, limit is %d", info.Size(), maxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return capturedImage{}, fmt.Errorf("reading image: %w", err)
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return capturedImage{}, fmt.Errorf("%s is %s: %w", filepath.Base(path), mt.String(), errNotImage)
	}

	return capturedImage{
		dataURI: "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data),
		label:   filepath.Base(path),
		size:    len(data),
	}, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	path = strings.TrimSpace(path)
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
