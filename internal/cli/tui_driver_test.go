package cli

import (
	"context"
	"testing"

	"github.com/athulvp5125/Mood-Meal/internal/catalog"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/mood"
	"github.com/athulvp5125/Mood-Meal/internal/recommend"
	"github.com/athulvp5125/Mood-Meal/internal/teatest"
	"github.com/rs/zerolog"
)

// fakeMood answers image and voice detection with a fixed mood and
// classifies text with the real keyword rules. When gate is set, image
// detection blocks until it is closed.
type fakeMood struct {
	image domain.Mood
	gate  chan struct{}
}

func (f *fakeMood) DetectFromImage(ctx context.Context, image string) (domain.Mood, error) {
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.image, nil
}

func (f *fakeMood) AnalyzeText(ctx context.Context, text string) (domain.Mood, error) {
	return mood.ClassifyText(text), nil
}

func (f *fakeMood) AnalyzeVoice(ctx context.Context, audio string) (domain.Mood, error) {
	return f.image, nil
}

// testApp wires an App over the built-in catalog with no simulated latency.
// Image and voice detection always report tired.
func testApp(t *testing.T) *App {
	t.Helper()
	cat := catalog.Builtin()
	return &App{
		Mood:    &fakeMood{image: domain.MoodTired},
		Recipes: recommend.NewService(cat, recommend.Latencies{}, zerolog.Nop()),
		Catalog: cat,
		Logger:  zerolog.Nop(),
		Version: "test",
	}
}

// TestDriver wraps teatest.Driver with access to appModel internals (view
// stack, shared state, command bar focus) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets the terminal size and drains
// Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Command focuses the command bar with ':', types the command, and presses
// Enter. The bar blurs itself after running a command.
func (d *TestDriver) Command(input string) {
	d.T.Helper()
	d.PressKey(':')
	d.Type(input)
	d.PressEnter()
	if d.CmdBarFocused() {
		d.PressEsc()
	}
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveView returns the top view on the stack.
func (d *TestDriver) ActiveView() View {
	m := d.appModel()
	return m.activeView()
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	v := d.ActiveView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// CmdBarFocused returns whether the command bar currently has focus.
func (d *TestDriver) CmdBarFocused() bool {
	m := d.appModel()
	return m.cmdBar.Focused()
}

// LastOutput returns the last command output displayed in the content area.
func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}

// Notice returns the notice line, if any.
func (d *TestDriver) Notice() string {
	return d.appModel().notice
}
