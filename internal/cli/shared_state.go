package cli

import (
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/wizard"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App    *App
	Wizard *wizard.Controller

	// Terminal dimensions
	Width  int
	Height int
}

// DetectedMood returns the session's mood, or nil before any detection.
func (s *SharedState) DetectedMood() *domain.Mood {
	return s.Wizard.Store().DetectedMood()
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator), step indicator
// (3 lines), notice (1 line), status bar (2 lines: separator + hints), and
// command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 9
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth returns the usable width for wrapped text.
func (s *SharedState) ContentWidth() int {
	if s.Width < 40 {
		return 80
	}
	return s.Width - 4
}
