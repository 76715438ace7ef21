package cli

import (
	"fmt"
	"strings"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// landingShortcut is one of the feature cards on the home screen.
type landingShortcut struct {
	key         string
	title       string
	description string
	route       string
}

var landingShortcuts = []landingShortcut{
	{"c", "Mood Detection", "Upload a selfie or use your camera to detect your current mood.", "/capture"},
	{"v", "Voice Input", "Tell us how you feel for more accurate recommendations.", "/voice"},
	{"p", "Preferences", "Set your dietary restrictions, health goals, and allergies.", "/preferences"},
}

// landingView is the home screen. It starts the wizard or jumps straight to
// one of its steps.
type landingView struct {
	state  *SharedState
	cursor int
}

func newLandingView(state *SharedState) *landingView {
	return &landingView{state: state}
}

func (v *landingView) ID() ViewID                { return ViewLanding }
func (v *landingView) Title() string             { return wizard.StepLanding.Label() }
func (v *landingView) Location() wizard.Location { return wizard.Location{Step: wizard.StepLanding} }

func (v *landingView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "get started")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("c", "v", "p"), key.WithHelp("c/v/p", "jump")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *landingView) Init() tea.Cmd { return nil }

func (v *landingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch km.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(landingShortcuts) {
			v.cursor++
		}
	case "s":
		return v, v.begin()
	case "enter":
		if v.cursor == 0 {
			return v, v.begin()
		}
		return v, v.jump(landingShortcuts[v.cursor-1].route)
	default:
		for _, sc := range landingShortcuts {
			if km.String() == sc.key {
				return v, v.jump(sc.route)
			}
		}
	}
	return v, nil
}

func (v *landingView) begin() tea.Cmd {
	if err := v.state.Wizard.Begin(); err != nil {
		return notify(navigationError(err))
	}
	return locationChanged()
}

func (v *landingView) jump(route string) tea.Cmd {
	if err := v.state.Wizard.Goto(route); err != nil {
		return notify(navigationError(err))
	}
	return locationChanged()
}

func (v *landingView) View() string {
	var b strings.Builder

	hero := formatter.StyleHeader.Render("Eat") + " " + formatter.Bold("What Your") + " " +
		formatter.StylePurple.Bold(true).Render("Mood") + " " + formatter.Bold("Needs")
	b.WriteString("\n  " + hero + "\n\n")
	blurb := lipgloss.NewStyle().Width(min(v.state.ContentWidth(), 76)).Render(
		"MoodMeal detects your emotions and recommends personalized recipes to match " +
			"your mood, dietary preferences, and health goals.")
	b.WriteString(indent(formatter.Dim(blurb), 2) + "\n\n")

	b.WriteString("  " + formatter.Cursor(v.cursor == 0) + formatter.StyleGreen.Render("Get Started →") + "\n\n")

	for i, sc := range landingShortcuts {
		b.WriteString(fmt.Sprintf("  %s%s %s\n",
			formatter.Cursor(v.cursor == i+1),
			formatter.StylePurple.Render("["+sc.key+"]"),
			formatter.Bold(sc.title)))
		b.WriteString("       " + formatter.Dim(sc.description) + "\n")
	}

	b.WriteString("\n  " + formatter.Header("How It Works") + "\n")
	steps := [][2]string{
		{"Capture Your Mood", "Take a selfie or tell us how you feel"},
		{"Set Preferences", "Select your dietary needs and health goals"},
		{"Get Personalized Recipes", "Receive mood-matched meal recommendations"},
	}
	for i, s := range steps {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n",
			formatter.StyleHeader.Render(fmt.Sprintf("%d.", i+1)),
			formatter.StyleFg.Render(s[0]),
			formatter.Dim(s[1])))
	}
	return b.String()
}

// indent prefixes every line of s with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
