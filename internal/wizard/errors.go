package wizard

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when an action is not allowed from the
	// current step.
	ErrInvalidTransition = errors.New("invalid wizard transition")

	// ErrBusy is returned while the wizard waits on an async call.
	ErrBusy = errors.New("wizard is busy")

	// ErrStaleResult is returned when the session was reset, or the wizard
	// moved elsewhere, while an async call was in flight. Its result is
	// discarded.
	ErrStaleResult = errors.New("stale result discarded")

	// ErrEmptyInput is returned when a submit has nothing to submit.
	ErrEmptyInput = errors.New("empty input")

	ErrUnknownRoute = errors.New("unknown route")
)

// TransitionError describes a rejected action.
type TransitionError struct {
	From   Step
	Action string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s from %s", e.Action, e.From.Label())
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
