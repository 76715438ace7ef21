package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// locationChangedMsg tells the appModel that the wizard controller moved and
// the view stack must be rebuilt to match.
type locationChangedMsg struct{}

// pushViewMsg pushes an overlay view (a form) onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current overlay view off the navigation stack.
type popViewMsg struct{}

// noticeMsg shows a one-line notice above the status bar until the next key.
type noticeMsg struct {
	text string
}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the current view.
type cmdOutputMsg struct {
	output string
}

// formCompleteMsg is sent when a form completes or is cancelled.
// The appModel handles it atomically: pop the form view, then run nextCmd.
type formCompleteMsg struct {
	nextCmd tea.Cmd
}

// quitMsg signals the app to quit.
type quitMsg struct{}

// locationChanged returns a tea.Cmd that resyncs the view stack.
func locationChanged() tea.Cmd {
	return func() tea.Msg { return locationChangedMsg{} }
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// notify returns a tea.Cmd that shows text as a notice.
func notify(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}
