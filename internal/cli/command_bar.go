package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// barCommands are the words the command bar understands besides a route.
var barCommands = []string{"back", "goto", "help", "quit", "restart", "routes", "session"}

// commandBar is the persistent text input at the bottom of the TUI.
// It jumps to routes (":/preferences") and runs a few session commands.
type commandBar struct {
	input   textinput.Model
	state   *SharedState
	focused bool

	history    []string
	historyIdx int
}

func newCommandBar(state *SharedState) commandBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 200
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return commandBar{
		input: ti,
		state: state,
	}
}

// Focus gives focus to the command bar.
func (c *commandBar) Focus() {
	c.focused = true
	c.input.Focus()
}

// Blur removes focus from the command bar.
func (c *commandBar) Blur() {
	c.focused = false
	c.input.Blur()
}

// Focused returns whether the command bar has focus.
func (c *commandBar) Focused() bool {
	return c.focused
}

// SetWidth updates the input width for terminal resizing.
func (c *commandBar) SetWidth(w int) {
	c.input.Width = w - len("moodmeal > ") - 1
}

// Update handles key messages when the command bar is focused.
func (c *commandBar) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(c.input.Value())
		c.input.Reset()
		c.input.SetSuggestions(nil)
		if input == "" {
			return nil
		}
		c.addHistory(input)
		return c.execute(input)

	case tea.KeyUp:
		c.historyUp()
		return nil

	case tea.KeyDown:
		c.historyDown()
		return nil

	case tea.KeyEsc:
		c.Blur()
		return nil

	default:
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		c.updateSuggestions()
		return cmd
	}
}

// UpdateNonKey handles non-key messages (e.g., cursor blink).
func (c *commandBar) UpdateNonKey(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// View renders the command bar.
func (c *commandBar) View() string {
	prompt := formatter.StylePurple.Render("moodmeal") + " " + formatter.Dim("❯") + " "
	if !c.focused {
		return prompt + formatter.Dim("press : to type a route or command")
	}
	return prompt + c.input.View()
}

// execute runs one command line and blurs the bar.
func (c *commandBar) execute(line string) tea.Cmd {
	c.Blur()
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])

	if strings.HasPrefix(name, "/") {
		return c.gotoRoute(fields[0])
	}

	switch name {
	case "goto", "go":
		if len(fields) < 2 {
			return notify("usage: goto <route>")
		}
		return c.gotoRoute(fields[1])
	case "back":
		if err := c.state.Wizard.Back(); err != nil {
			return notify(navigationError(err))
		}
		return locationChanged()
	case "restart":
		c.state.Wizard.Restart()
		return locationChanged()
	case "routes":
		return func() tea.Msg { return cmdOutputMsg{output: routesTable()} }
	case "session":
		return func() tea.Msg { return cmdOutputMsg{output: sessionSummary(c.state)} }
	case "help":
		return func() tea.Msg { return cmdOutputMsg{output: barHelp()} }
	case "quit", "exit", "q":
		return func() tea.Msg { return quitMsg{} }
	}
	return notify(fmt.Sprintf("unknown command %q (try help)", fields[0]))
}

func (c *commandBar) gotoRoute(path string) tea.Cmd {
	if err := c.state.Wizard.Goto(path); err != nil {
		return notify(navigationError(err))
	}
	return locationChanged()
}

// navigationError turns a controller error into a notice line.
func navigationError(err error) string {
	var te *wizard.TransitionError
	switch {
	case errors.Is(err, wizard.ErrBusy):
		return "Still working, please wait…"
	case errors.Is(err, wizard.ErrUnknownRoute):
		return err.Error() + " (try routes)"
	case errors.As(err, &te):
		return fmt.Sprintf("Can't %s from %s", te.Action, te.From.Label())
	}
	return err.Error()
}

func sessionSummary(state *SharedState) string {
	snap := state.Wizard.Store().Snapshot()
	allergies := "none"
	if len(snap.Allergies) > 0 {
		allergies = strings.Join(snap.Allergies, ", ")
	}
	text := snap.TextInput
	if text == "" {
		text = "-"
	}
	image := "-"
	if snap.Image != nil {
		image = formatter.Truncate(*snap.Image, 40)
	}
	rows := [][]string{
		{"Session", state.Wizard.Store().ID()},
		{"Mood", formatter.MoodBadge(snap.DetectedMood)},
		{"Image", image},
		{"Text", formatter.Truncate(text, 60)},
		{"Diet", snap.Restrictions.String()},
		{"Goal", snap.HealthGoal.Label()},
		{"Allergies", allergies},
	}
	return formatter.RenderTable([]string{"Field", "Value"}, rows)
}

func barHelp() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Commands") + "\n")
	lines := [][2]string{
		{"/<route>", "jump to a route, e.g. /preferences or /recipe/4"},
		{"goto <route>", "same as above"},
		{"back", "previous step"},
		{"restart", "clear the session and start over"},
		{"routes", "list routes"},
		{"session", "show what has been entered so far"},
		{"quit", "leave moodmeal"},
	}
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", l[0], formatter.Dim(l[1])))
	}
	return b.String()
}

// ── history ──────────────────────────────────────────────────────────────────

func (c *commandBar) addHistory(line string) {
	c.history = append(c.history, line)
	c.historyIdx = len(c.history)
}

func (c *commandBar) historyUp() {
	if c.historyIdx > 0 {
		c.historyIdx--
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	}
}

func (c *commandBar) historyDown() {
	if c.historyIdx < len(c.history)-1 {
		c.historyIdx++
		c.input.SetValue(c.history[c.historyIdx])
		c.input.CursorEnd()
	} else {
		c.historyIdx = len(c.history)
		c.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (c *commandBar) updateSuggestions() {
	text := c.input.Value()
	if text == "" || (strings.Contains(text, " ") && !strings.HasPrefix(text, "goto ")) {
		c.input.SetSuggestions(nil)
		return
	}
	var pool []string
	for _, s := range wizard.Steps {
		if s != wizard.StepRecipeDetail {
			pool = append(pool, s.Route())
		}
	}
	if rest, ok := strings.CutPrefix(text, "goto "); ok {
		var out []string
		for _, r := range filterSuggestions(pool, rest) {
			out = append(out, "goto "+r)
		}
		c.input.SetSuggestions(out)
		return
	}
	c.input.SetSuggestions(filterSuggestions(append(pool, barCommands...), text))
}

// filterSuggestions returns items from pool that start with prefix (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}
