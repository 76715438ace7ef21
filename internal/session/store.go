// Package session holds the in-progress wizard's accumulated user input.
package session

import (
	"slices"
	"sync"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/google/uuid"
)

// State is a copy of everything entered during one wizard run.
type State struct {
	Image        *string
	TextInput    string
	VoiceInput   *string
	DetectedMood *domain.Mood
	Restrictions domain.Restrictions
	HealthGoal   domain.HealthGoal
	Allergies    []string
}

// Default returns the state of a fresh session.
func Default() State {
	return State{
		Restrictions: domain.Restrictions{domain.DietNone},
		HealthGoal:   domain.GoalNone,
		Allergies:    []string{},
	}
}

func (s State) clone() State {
	out := s
	if s.Image != nil {
		v := *s.Image
		out.Image = &v
	}
	if s.VoiceInput != nil {
		v := *s.VoiceInput
		out.VoiceInput = &v
	}
	if s.DetectedMood != nil {
		v := *s.DetectedMood
		out.DetectedMood = &v
	}
	out.Restrictions = slices.Clone(s.Restrictions)
	out.Allergies = slices.Clone(s.Allergies)
	return out
}

// Store is the single owner of session State. Setters replace values
// wholesale and perform no validation; the dietary exclusivity rule is the
// caller's to enforce.
type Store struct {
	mu         sync.RWMutex
	state      State
	id         string
	generation uint64
}

// NewStore returns a store holding a fresh session.
func NewStore() *Store {
	return &Store{state: Default(), id: uuid.NewString()}
}

// Reset restores every field to its default in one step, assigns a new
// session ID and advances the generation so in-flight work started before
// the reset can detect that it is stale.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Default()
	s.id = uuid.NewString()
	s.generation++
}

// Generation identifies the current session lifetime. It changes only on Reset.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// ID returns the session identifier used for log correlation.
func (s *Store) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Update applies fn to the state under the write lock, but only if the
// session generation still equals gen. It reports whether fn ran.
func (s *Store) Update(gen uint64, fn func(*State)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return false
	}
	fn(&s.state)
	return true
}

func (s *Store) Image() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone().Image
}

func (s *Store) SetImage(image *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Image = nil
	if image != nil {
		v := *image
		s.state.Image = &v
	}
}

func (s *Store) TextInput() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TextInput
}

func (s *Store) SetTextInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TextInput = text
}

func (s *Store) VoiceInput() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone().VoiceInput
}

func (s *Store) SetVoiceInput(voice *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.VoiceInput = nil
	if voice != nil {
		v := *voice
		s.state.VoiceInput = &v
	}
}

func (s *Store) DetectedMood() *domain.Mood {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone().DetectedMood
}

func (s *Store) SetDetectedMood(m *domain.Mood) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.DetectedMood = nil
	if m != nil {
		v := *m
		s.state.DetectedMood = &v
	}
}

func (s *Store) Restrictions() domain.Restrictions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Restrictions)
}

func (s *Store) SetRestrictions(rs domain.Restrictions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Restrictions = slices.Clone(rs)
}

func (s *Store) HealthGoal() domain.HealthGoal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.HealthGoal
}

func (s *Store) SetHealthGoal(g domain.HealthGoal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.HealthGoal = g
}

func (s *Store) Allergies() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Allergies)
}

func (s *Store) SetAllergies(allergies []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Allergies = slices.Clone(allergies)
}
