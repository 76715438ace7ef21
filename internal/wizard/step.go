package wizard

import (
	"fmt"
	"strings"
)

// Step is a screen of the wizard.
type Step int

const (
	StepLanding Step = iota
	StepCapture
	StepVoiceOrText
	StepPreferences
	StepResults
	StepRecipeDetail
)

// TotalSteps is the length of the numbered progress indicator.
const TotalSteps = 4

// Steps lists every step in flow order.
var Steps = []Step{StepLanding, StepCapture, StepVoiceOrText, StepPreferences, StepResults, StepRecipeDetail}

// Number is the step's position on the progress indicator, or 0 for the
// landing and detail screens which are not part of it.
func (s Step) Number() int {
	switch s {
	case StepCapture:
		return 1
	case StepVoiceOrText:
		return 2
	case StepPreferences:
		return 3
	case StepResults:
		return 4
	default:
		return 0
	}
}

// Label is the short name shown under the progress indicator.
func (s Step) Label() string {
	switch s {
	case StepLanding:
		return "Home"
	case StepCapture:
		return "Capture"
	case StepVoiceOrText:
		return "Voice/Text"
	case StepPreferences:
		return "Preferences"
	case StepResults:
		return "Results"
	case StepRecipeDetail:
		return "Recipe"
	}
	return fmt.Sprintf("Step %d", int(s))
}

// Title is the heading of the step's screen.
func (s Step) Title() string {
	switch s {
	case StepLanding:
		return "Eat What Your Mood Needs"
	case StepCapture:
		return "Capture Your Mood"
	case StepVoiceOrText:
		return "Tell Us How You Feel"
	case StepPreferences:
		return "Your Preferences"
	case StepResults:
		return "Your Personalized Recipe Recommendations"
	case StepRecipeDetail:
		return "Recipe Details"
	}
	return s.Label()
}

// Route is the path pattern of the step. RecipeDetail's is "/recipe/:id".
func (s Step) Route() string {
	switch s {
	case StepLanding:
		return "/"
	case StepCapture:
		return "/capture"
	case StepVoiceOrText:
		return "/voice"
	case StepPreferences:
		return "/preferences"
	case StepResults:
		return "/results"
	case StepRecipeDetail:
		return "/recipe/:id"
	}
	return ""
}

func (s Step) String() string { return s.Label() }

// Location is a step plus the recipe id when the step is RecipeDetail.
type Location struct {
	Step     Step
	RecipeID string
}

// Path renders the concrete route, e.g. "/recipe/4".
func (l Location) Path() string {
	if l.Step == StepRecipeDetail {
		return "/recipe/" + l.RecipeID
	}
	return l.Step.Route()
}

// ParseRoute resolves a concrete path to a Location. Trailing slashes are
// ignored.
func ParseRoute(path string) (Location, error) {
	p := strings.TrimSpace(path)
	if p != "/" {
		p = strings.TrimRight(p, "/")
	}
	if id, ok := strings.CutPrefix(p, "/recipe/"); ok {
		if id == "" || strings.Contains(id, "/") {
			return Location{}, fmt.Errorf("route %q: %w", path, ErrUnknownRoute)
		}
		return Location{Step: StepRecipeDetail, RecipeID: id}, nil
	}
	for _, s := range Steps {
		if s != StepRecipeDetail && s.Route() == p {
			return Location{Step: s}, nil
		}
	}
	return Location{}, fmt.Errorf("route %q: %w", path, ErrUnknownRoute)
}
