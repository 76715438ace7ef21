package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMood        = errors.New("unknown mood")
	ErrUnknownRestriction = errors.New("unknown dietary restriction")
	ErrUnknownHealthGoal  = errors.New("unknown health goal")
)

// ParseError reports a label that does not belong to one of the fixed enums.
type ParseError struct {
	Kind  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Kind, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }
