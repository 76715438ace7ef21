package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
// It mirrors the wizard controller's location as a view stack and owns a
// persistent command bar.
type appModel struct {
	state     *SharedState
	viewStack []View
	cmdBar    commandBar
	quitting  bool

	// started records which views have had Init run. Views below the top
	// are created lazily when a route jumps ahead, and load on reveal.
	started map[View]bool
	// gen is the session generation the stack was built for.
	gen uint64

	notice string

	// Transient output from the command bar, displayed in content area.
	lastOutput string

	// Scrollable viewport for command output that exceeds terminal height.
	outputVP     viewport.Model
	outputActive bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:    app,
		Wizard: app.newController(),
	}

	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	m := appModel{
		state:    state,
		cmdBar:   newCommandBar(state),
		started:  make(map[View]bool),
		outputVP: vp,
		gen:      state.Wizard.Store().Generation(),
	}
	m.viewStack = []View{newLandingView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// rebuild makes the view stack match the controller's location. Views whose
// location is unchanged are kept so their state survives; everything is
// discarded when the session was reset. It returns the Init command of the
// top view if it has not run yet.
func (m *appModel) rebuild() tea.Cmd {
	if gen := m.state.Wizard.Store().Generation(); gen != m.gen {
		m.viewStack = nil
		m.started = make(map[View]bool)
		m.gen = gen
	}

	want := pathTo(m.state.Wizard.Location())
	keep := 0
	for keep < len(m.viewStack) && keep < len(want) {
		sv, ok := m.viewStack[keep].(stepView)
		if !ok || sv.Location() != want[keep] {
			break
		}
		keep++
	}
	for _, v := range m.viewStack[keep:] {
		delete(m.started, v)
	}
	m.viewStack = m.viewStack[:keep]
	for _, loc := range want[keep:] {
		m.viewStack = append(m.viewStack, newStepView(m.state, loc))
	}
	return m.initTop()
}

func (m *appModel) initTop() tea.Cmd {
	v := m.activeView()
	if v == nil || m.started[v] {
		return nil
	}
	m.started[v] = true
	return v.Init()
}

// location returns the wizard location of the top step view.
func (m *appModel) location() (wizard.Location, bool) {
	for i := len(m.viewStack) - 1; i >= 0; i-- {
		if sv, ok := m.viewStack[i].(stepView); ok {
			return sv.Location(), true
		}
	}
	return wizard.Location{}, false
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.initTop()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.cmdBar.SetWidth(msg.Width)
		if m.outputActive {
			m.outputVP.Width = msg.Width
			m.outputVP.Height = m.state.ContentHeight()
		}
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.outputActive {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}

	case locationChangedMsg:
		m.cmdBar.Blur()
		m.clearOutput()
		return m, m.rebuild()

	case pushViewMsg:
		m.cmdBar.Blur()
		m.clearOutput()
		m.viewStack = append(m.viewStack, msg.view)
		m.started[msg.view] = true
		return m, msg.view.Init()

	case popViewMsg:
		m.popOverlay()
		return m, nil

	case formCompleteMsg:
		m.popOverlay()
		m.clearOutput()
		return m, msg.nextCmd

	case noticeMsg:
		m.notice = msg.text
		return m, nil

	case cmdOutputMsg:
		m.lastOutput = msg.output
		m.outputActive = true
		m.outputVP.SetContent(msg.output)
		m.outputVP.Width = m.state.Width
		m.outputVP.Height = m.state.ContentHeight()
		m.outputVP.GotoTop()
		return m, nil

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	// Views keep receiving async results while the command bar is focused.
	var cmds []tea.Cmd
	if m.cmdBar.Focused() {
		cmds = append(cmds, m.cmdBar.UpdateNonKey(msg))
	}
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// popOverlay removes the top view if it is not a wizard step.
func (m *appModel) popOverlay() {
	if v := m.activeView(); v != nil {
		if _, isStep := v.(stepView); !isStep {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			delete(m.started, v)
		}
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyCtrlR:
		m.state.Wizard.Restart()
		m.cmdBar.Blur()
		m.clearOutput()
		return m, m.rebuild()
	}

	if m.cmdBar.Focused() {
		if msg.Type == tea.KeyEnter {
			m.clearOutput()
		}
		cmd := m.cmdBar.Update(msg)
		return m, cmd
	}

	// When output is displayed, intercept scroll keys for the viewport.
	// Non-scroll keys dismiss the output, then fall through to normal handling.
	if m.outputActive {
		if isOutputScrollKey(msg) {
			var cmd tea.Cmd
			m.outputVP, cmd = m.outputVP.Update(msg)
			return m, cmd
		}
		m.clearOutput()
		if msg.Type == tea.KeyEsc {
			return m, nil
		}
	}

	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == ":":
		m.cmdBar.Focus()
		return m, nil

	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		return m, m.back()
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

// back asks the controller for the previous step. Landing has none, so esc
// there is a no-op.
func (m *appModel) back() tea.Cmd {
	if v := m.activeView(); v != nil {
		if _, isStep := v.(stepView); !isStep {
			m.popOverlay()
			return nil
		}
	}
	err := m.state.Wizard.Back()
	var te *wizard.TransitionError
	switch {
	case err == nil:
		return m.rebuild()
	case errors.As(err, &te):
		return nil
	case errors.Is(err, wizard.ErrBusy):
		m.notice = "Still working, please wait…"
		return nil
	default:
		m.notice = err.Error()
		return nil
	}
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	if ind := m.renderStepIndicator(); ind != "" {
		sections = append(sections, ind)
	}

	if m.lastOutput != "" {
		if m.outputActive && m.state.Height > 0 {
			sections = append(sections, m.outputVP.View())
		} else {
			sections = append(sections, m.lastOutput)
		}
	} else if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	if m.notice != "" {
		sections = append(sections, formatter.StyleYellow.Render(m.notice))
	}
	sections = append(sections, m.renderStatusBar())
	sections = append(sections, m.cmdBar.View())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("moodmeal")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb
	if loc, ok := m.location(); ok {
		header += "  " + formatter.Dim(loc.Path())
	}
	header += "  " + formatter.MoodBadge(m.state.DetectedMood())

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStepIndicator() string {
	loc, ok := m.location()
	if !ok || loc.Step.Number() == 0 {
		return ""
	}
	labels := make([]string, 0, wizard.TotalSteps)
	for _, s := range wizard.Steps {
		if s.Number() > 0 {
			labels = append(labels, s.Label())
		}
	}
	return formatter.StepIndicator(loc.Step.Number(), labels) + "\n"
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.outputActive && m.outputVP.TotalLineCount() > m.outputVP.Height {
		hints = append(hints, scrollIndicator(m.outputVP))
		hints = append(hints, formatter.Dim("↑↓ pgup/pgdn: scroll"))
		hints = append(hints, formatter.Dim("esc: dismiss"))
	} else if v := m.activeView(); v != nil && !m.outputActive {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	if !m.cmdBar.Focused() && !m.outputActive {
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: back"))
		}
		hints = append(hints, formatter.Dim("ctrl+r: restart"))
		hints = append(hints, formatter.Dim(": command"))
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// clearOutput dismisses the transient command output and deactivates the viewport.
func (m *appModel) clearOutput() {
	m.lastOutput = ""
	m.outputActive = false
}

// outputViewportKeyMap returns a restricted keymap for the output viewport.
// Only arrow/page keys scroll; letter keys stay free for global shortcuts.
func outputViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// isOutputScrollKey returns true if the key should scroll the output viewport
// rather than dismissing the output.
func isOutputScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}
