package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type captureMode int

const (
	captureCamera captureMode = iota
	captureUpload
)

// imagePickedMsg delivers the result of the upload form.
type imagePickedMsg struct {
	from  *captureView
	image capturedImage
	err   error
}

// captureDoneMsg signals that image mood detection has finished.
type captureDoneMsg struct {
	from *captureView
	mood domain.Mood
	err  error
}

// captureView is step 1: take a snapshot or upload a photo, then run mood
// detection on it.
type captureView struct {
	state   *SharedState
	mode    captureMode
	pending *capturedImage
	busy    bool
	err     error
	spinner spinner.Model
}

func newCaptureView(state *SharedState) *captureView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return &captureView{state: state, spinner: sp}
}

func (v *captureView) ID() ViewID                { return ViewCapture }
func (v *captureView) Title() string             { return wizard.StepCapture.Label() }
func (v *captureView) Location() wizard.Location { return wizard.Location{Step: wizard.StepCapture} }

func (v *captureView) ShortHelp() []key.Binding {
	if v.busy {
		return nil
	}
	if v.pending != nil {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retake")),
		}
	}
	action := key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "take photo"))
	if v.mode == captureUpload {
		action = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload image"))
	}
	return []key.Binding{
		action,
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "camera/upload")),
	}
}

func (v *captureView) Init() tea.Cmd { return nil }

func (v *captureView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case imagePickedMsg:
		if msg.from != v {
			return v, nil
		}
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		img := msg.image
		v.pending = &img
		v.err = nil
		return v, nil

	case captureDoneMsg:
		if msg.from != v {
			return v, nil
		}
		v.busy = false
		switch {
		case errors.Is(msg.err, wizard.ErrStaleResult):
			return v, nil
		case msg.err != nil:
			v.err = msg.err
			return v, nil
		}
		return v, locationChanged()

	case spinner.TickMsg:
		if !v.busy {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.busy {
			return v, nil
		}
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *captureView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "m":
		if v.pending == nil {
			v.mode = 1 - v.mode
		}
	case "r":
		v.pending = nil
		v.err = nil
	case " ", "t":
		if v.pending == nil && v.mode == captureCamera {
			img := snapshotImage()
			v.pending = &img
			v.err = nil
		}
	case "u":
		if v.pending == nil {
			v.mode = captureUpload
			return v.openUpload()
		}
	case "enter":
		if v.pending != nil {
			return v.submit()
		}
		if v.mode == captureUpload {
			return v.openUpload()
		}
	}
	return nil
}

func (v *captureView) openUpload() tea.Cmd {
	var path string
	form := uploadForm(&path)
	return pushView(newFormView(v.state, "Upload Image", form, func() tea.Cmd {
		return func() tea.Msg {
			img, err := loadImage(expandHome(path))
			return imagePickedMsg{from: v, image: img, err: err}
		}
	}))
}

func (v *captureView) submit() tea.Cmd {
	v.busy = true
	v.err = nil
	image := v.pending.dataURI
	ctrl := v.state.Wizard
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		m, err := ctrl.SubmitCapture(context.Background(), image)
		return captureDoneMsg{from: v, mood: m, err: err}
	})
}

func (v *captureView) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(wizard.StepCapture.Title()) + "\n")
	b.WriteString(formatter.Dim("We'll analyze your expression to suggest recipes that match your mood") + "\n\n")

	camera, upload := formatter.Dim(" Camera "), formatter.Dim(" Upload ")
	if v.mode == captureCamera {
		camera = formatter.StyleHeader.Render("[Camera]")
	} else {
		upload = formatter.StyleHeader.Render("[Upload]")
	}
	b.WriteString("  " + camera + "  " + upload + "\n\n")

	switch {
	case v.busy:
		b.WriteString("  " + v.spinner.View() + " " + formatter.Dim("Analyzing your mood...") + "\n")
	case v.pending != nil:
		b.WriteString(formatter.RenderBox("", fmt.Sprintf("%s %s\n%s",
			formatter.StyleGreen.Render("✔"),
			formatter.Bold(v.pending.label),
			formatter.Dim(fmt.Sprintf("%d bytes ready for analysis", v.pending.size)))) + "\n")
	case v.mode == captureCamera:
		b.WriteString(formatter.RenderBox("", formatter.Dim("📷 Camera ready. Press space to take a photo.")) + "\n")
	default:
		b.WriteString(formatter.RenderBox("", formatter.Dim("🖼  Press u to choose an image file.")) + "\n")
	}

	if v.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("✖ "+v.err.Error()) + "\n")
	}

	b.WriteString("\n" + formatter.Bold("Tips for better mood detection:") + "\n")
	b.WriteString("  " + formatter.StyleGreen.Render("✔") + " Ensure your face is clearly visible and well-lit\n")
	b.WriteString("  " + formatter.StyleGreen.Render("✔") + " Look directly at the camera with a natural expression\n")
	b.WriteString("  " + formatter.StyleRed.Render("✖") + " Avoid wearing sunglasses or items that cover your face\n")
	return b.String()
}
