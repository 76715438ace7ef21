// Package teatest drives a bubbletea model synchronously in tests.
//
// A Driver stands in for tea.Program: it calls Update directly, runs each
// returned Cmd on a short deadline and feeds the resulting messages back in
// until nothing is left. Cmds that sleep (cursor blink, spinner and record
// ticks) miss the deadline and are dropped, so a test only advances timers
// by sending their messages itself.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how long a chain of Cmd -> Msg -> Cmd may grow.
const MaxDrainDepth = 100

// DefaultCmdTimeout separates Cmds that return at once (message factories,
// in-memory service calls) from Cmds parked on a timer.
const DefaultCmdTimeout = 10 * time.Millisecond

// Driver is a synchronous harness for a tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg comes out of a Cmd. The runtime
	// normally swallows it, so the model is not expected to handle it.
	Quitting bool

	// Seen records every message that reached Update, oldest first.
	Seen []tea.Msg

	timeout time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout overrides DefaultCmdTimeout.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.timeout = timeout }
}

// New wraps model. Call DrainInit to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, timeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command to completion.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send dispatches msg and drains every Cmd it leads to. It does nothing
// once the model has quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.drain(d.update(msg), 0)
}

// Resize sends a WindowSizeMsg.
func (d *Driver) Resize(w, h int) {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// View returns the model's current rendering.
func (d *Driver) View() string {
	return d.Model.View()
}

// Saw reports whether a message of type T has reached Update.
func Saw[T tea.Msg](d *Driver) bool {
	for _, msg := range d.Seen {
		if _, ok := msg.(T); ok {
			return true
		}
	}
	return false
}

// ── Keys ─────────────────────────────────────────────────────────────────────

// namedKeys maps the names Press accepts to the key bubbletea would emit.
var namedKeys = map[string]tea.KeyMsg{
	"enter":     {Type: tea.KeyEnter},
	"esc":       {Type: tea.KeyEsc},
	"space":     {Type: tea.KeySpace, Runes: []rune{' '}},
	"tab":       {Type: tea.KeyTab},
	"backspace": {Type: tea.KeyBackspace},
	"up":        {Type: tea.KeyUp},
	"down":      {Type: tea.KeyDown},
	"left":      {Type: tea.KeyLeft},
	"right":     {Type: tea.KeyRight},
	"ctrl+c":    {Type: tea.KeyCtrlC},
	"ctrl+r":    {Type: tea.KeyCtrlR},
	"ctrl+s":    {Type: tea.KeyCtrlS},
}

// Press sends a named key such as "enter" or "ctrl+s". An unknown name
// fails the test.
func (d *Driver) Press(name string) {
	d.T.Helper()
	msg, ok := namedKeys[name]
	if !ok {
		d.T.Fatalf("teatest: unknown key %q", name)
	}
	d.Send(msg)
}

// SendKey sends an arbitrary key message.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a single rune, or a space key for ' '.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	if r == ' ' {
		d.Press("space")
		return
	}
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) PressEnter() { d.T.Helper(); d.Press("enter") }
func (d *Driver) PressEsc()   { d.T.Helper(); d.Press("esc") }
func (d *Driver) PressSpace() { d.T.Helper(); d.Press("space") }
func (d *Driver) PressCtrlC() { d.T.Helper(); d.Press("ctrl+c") }
func (d *Driver) PressUp()    { d.T.Helper(); d.Press("up") }
func (d *Driver) PressDown()  { d.T.Helper(); d.Press("down") }

// ── Draining ─────────────────────────────────────────────────────────────────

func (d *Driver) update(msg tea.Msg) tea.Cmd {
	d.Seen = append(d.Seen, msg)
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	return cmd
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := d.run(cmd)
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.update(msg)
		return
	}
	if isBlink(msg) {
		return
	}
	d.drain(d.update(msg), depth+1)
}

// run executes cmd, giving up after the driver's timeout.
func (d *Driver) run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d.timeout):
		return nil
	}
}

// isBlink matches the unexported blink messages of bubbles/cursor, which
// would otherwise chain into timer Cmds.
func isBlink(msg tea.Msg) bool {
	name := fmt.Sprintf("%T", msg)
	return strings.Contains(strings.ToLower(name), "blink")
}
