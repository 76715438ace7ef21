package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/mood"
	"github.com/athulvp5125/Mood-Meal/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const voicePlaceholder = "Describe how you're feeling today... (e.g., 'I'm feeling tired and need an energy boost' or 'I'm happy but want something light')"

// recordTickMsg advances the recording timer by one second.
type recordTickMsg struct {
	from *voiceView
	take int
}

// textDoneMsg signals that text mood analysis has finished.
type textDoneMsg struct {
	from *voiceView
	mood domain.Mood
	err  error
}

// voiceView is step 2: type, or "record", how you feel. Recording is
// simulated; stopping fills the text box with a canned transcript.
type voiceView struct {
	state     *SharedState
	input     textarea.Model
	recording bool
	take      int // bumped per recording so old ticks are ignored
	elapsed   time.Duration
	analyzing bool
	err       error
	spinner   spinner.Model
}

func newVoiceView(state *SharedState) *voiceView {
	ta := textarea.New()
	ta.Placeholder = voicePlaceholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 1000
	ta.SetWidth(min(state.ContentWidth(), 80))
	ta.SetHeight(4)
	ta.SetValue(state.Wizard.Store().TextInput())
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return &voiceView{state: state, input: ta, spinner: sp}
}

func (v *voiceView) ID() ViewID                { return ViewVoice }
func (v *voiceView) Title() string             { return wizard.StepVoiceOrText.Label() }
func (v *voiceView) Location() wizard.Location { return wizard.Location{Step: wizard.StepVoiceOrText} }

// CapturesInput is true while the text box has focus.
func (v *voiceView) CapturesInput() bool {
	return v.input.Focused() && !v.analyzing
}

func (v *voiceView) ShortHelp() []key.Binding {
	if v.analyzing {
		return nil
	}
	if v.input.Focused() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "analyze")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done typing")),
		}
	}
	rec := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start recording"))
	if v.recording {
		rec = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "stop recording"))
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "analyze")),
		rec,
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "type")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
	}
}

func (v *voiceView) Init() tea.Cmd {
	return textarea.Blink
}

func (v *voiceView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordTickMsg:
		if msg.from != v || !v.recording || msg.take != v.take {
			return v, nil
		}
		v.elapsed += time.Second
		return v, v.tick()

	case textDoneMsg:
		if msg.from != v {
			return v, nil
		}
		v.analyzing = false
		switch {
		case errors.Is(msg.err, wizard.ErrStaleResult):
			return v, nil
		case msg.err != nil:
			v.err = msg.err
			return v, nil
		}
		return v, locationChanged()

	case spinner.TickMsg:
		if !v.analyzing {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.analyzing {
			return v, nil
		}
		if v.input.Focused() {
			return v, v.handleTyping(msg)
		}
		return v, v.handleKey(msg)
	}

	if v.input.Focused() {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *voiceView) handleTyping(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		v.input.Blur()
		return nil
	case "ctrl+s":
		return v.submit()
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *voiceView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "ctrl+s":
		return v.submit()
	case "r":
		return v.toggleRecording()
	case "i", "e":
		if !v.recording {
			return v.input.Focus()
		}
	case "s":
		if err := v.state.Wizard.Skip(); err != nil {
			return notify(navigationError(err))
		}
		return locationChanged()
	}
	return nil
}

func (v *voiceView) toggleRecording() tea.Cmd {
	if v.recording {
		v.recording = false
		v.input.SetValue(mood.SimulatedTranscript)
		return nil
	}
	v.recording = true
	v.take++
	v.elapsed = 0
	v.input.Blur()
	return v.tick()
}

func (v *voiceView) tick() tea.Cmd {
	from, take := v, v.take
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return recordTickMsg{from: from, take: take}
	})
}

func (v *voiceView) submit() tea.Cmd {
	text := v.input.Value()
	if strings.TrimSpace(text) == "" {
		return notify("Type or record how you feel first, or press s to skip.")
	}
	v.recording = false
	v.analyzing = true
	v.err = nil
	v.input.Blur()
	ctrl := v.state.Wizard
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		m, err := ctrl.SubmitText(context.Background(), text)
		return textDoneMsg{from: v, mood: m, err: err}
	})
}

func (v *voiceView) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(wizard.StepVoiceOrText.Title()) + "\n")
	b.WriteString(formatter.Dim("Speak or type how you're feeling today to help us recommend the perfect meals") + "\n\n")

	if m := v.state.DetectedMood(); m != nil {
		b.WriteString(formatter.Dim("From your photo: ") + formatter.MoodBadge(m) + "\n\n")
	}

	b.WriteString(v.input.View() + "\n\n")

	switch {
	case v.analyzing:
		b.WriteString(v.spinner.View() + " " + formatter.Dim("Analyzing...") + "\n")
	case v.recording:
		b.WriteString(formatter.StyleRed.Render("● Recording... "+formatter.Elapsed(v.elapsed)) + "\n")
	default:
		b.WriteString(formatter.Dim("🎙 Press r to record, or i to type.") + "\n")
	}

	if v.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("✖ "+v.err.Error()) + "\n")
	}

	b.WriteString("\n" + formatter.Bold("For better recommendations:") + "\n")
	b.WriteString("  • Be specific about your current mood (e.g., \"I feel energetic but anxious\")\n")
	b.WriteString("  • Mention any cravings you might have\n")
	b.WriteString("  • This step is optional - you can skip if you'd prefer to use just your photo\n")
	return b.String()
}
