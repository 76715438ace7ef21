package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// Minutes renders a cook time the way recipe cards show it, e.g. "25 mins".
func Minutes(min int) string {
	if min == 1 {
		return "1 min"
	}
	return fmt.Sprintf("%d mins", min)
}

// Elapsed renders a recording duration as mm:ss.
func Elapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// TagList renders tags as dim pills separated by spaces.
func TagList(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	pills := make([]string, len(tags))
	for i, t := range tags {
		pills[i] = StyleDim.Render("[" + t + "]")
	}
	return strings.Join(pills, " ")
}

// Checkbox renders a multi-select marker.
func Checkbox(checked bool) string {
	if checked {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// Radio renders a single-select marker.
func Radio(selected bool) string {
	if selected {
		return StyleGreen.Render("(•)")
	}
	return StyleDim.Render("( )")
}

// Cursor renders the row pointer for list views.
func Cursor(active bool) string {
	if active {
		return StylePurple.Render("▸ ")
	}
	return "  "
}

// Truncate shortens s to at most n visible runes, appending an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
