package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 50%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %3.0f%%", StyleGreen.Render(bar), pct*100)
}

// StepIndicator renders the numbered wizard progress line:
//
//	Step 2 of 4  [██████░░░░░░] 50%
//	 ✔ Capture  ● Voice/Text  ○ Preferences  ○ Results
//
// current is 1-based. Labels beyond current are dimmed.
func StepIndicator(current int, labels []string) string {
	total := len(labels)
	if total == 0 {
		return ""
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	head := Bold(fmt.Sprintf("Step %d of %d", current, total)) + "  " +
		RenderProgress(float64(current)/float64(total), 12)

	parts := make([]string, total)
	for i, label := range labels {
		n := i + 1
		switch {
		case n < current:
			parts[i] = StyleGreen.Render("✔ " + label)
		case n == current:
			parts[i] = StylePurple.Render("● " + label)
		default:
			parts[i] = StyleDim.Render("○ " + label)
		}
	}
	return head + "\n " + strings.Join(parts, "  ")
}
