package cli

import (
	"github.com/athulvp5125/Mood-Meal/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewLanding ViewID = iota
	ViewCapture
	ViewVoice
	ViewPreferences
	ViewResults
	ViewRecipe
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// stepView is a View that renders one wizard location. Views without a
// location (forms) are overlays and are dropped when the location changes.
type stepView interface {
	View
	Location() wizard.Location
}

// inputCapturer is implemented by views that own a focused text input and
// must receive every key, including q, ':' and esc.
type inputCapturer interface {
	CapturesInput() bool
}

// newStepView builds the view for loc.
func newStepView(state *SharedState, loc wizard.Location) stepView {
	switch loc.Step {
	case wizard.StepCapture:
		return newCaptureView(state)
	case wizard.StepVoiceOrText:
		return newVoiceView(state)
	case wizard.StepPreferences:
		return newPreferencesView(state)
	case wizard.StepResults:
		return newResultsView(state)
	case wizard.StepRecipeDetail:
		return newRecipeView(state, loc.RecipeID)
	default:
		return newLandingView(state)
	}
}

// pathTo lists the locations a user passes through to reach loc, landing
// first. The view stack mirrors this list so the breadcrumb reads like the
// flow.
func pathTo(loc wizard.Location) []wizard.Location {
	var out []wizard.Location
	for _, s := range wizard.Steps {
		if s == wizard.StepRecipeDetail {
			break
		}
		out = append(out, wizard.Location{Step: s})
		if s == loc.Step {
			return out
		}
	}
	return append(out, loc)
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing global keybindings like q/:/Esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if v.ID() == ViewForm {
		return true
	}
	if c, ok := v.(inputCapturer); ok {
		return c.CapturesInput()
	}
	return false
}
