package formatter

import (
	"fmt"
	"strings"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// MoodColor returns the style used to render the given mood.
func MoodColor(m domain.Mood) lipgloss.Style {
	switch m {
	case domain.MoodHappy, domain.MoodEnergetic:
		return StyleYellow
	case domain.MoodSad, domain.MoodTired:
		return StyleBlue
	case domain.MoodAngry:
		return StyleRed
	case domain.MoodAnxious:
		return StylePurple
	case domain.MoodNeutral:
		return StyleGreen
	default:
		return StyleDim
	}
}

// MoodBadge returns a colored mood indicator such as "😴 tired".
func MoodBadge(m *domain.Mood) string {
	if m == nil {
		return StyleDim.Render("○ not detected")
	}
	return MoodColor(*m).Render(m.Emoji() + " " + string(*m))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
