package session

import (
	"sync"
	"testing"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewStore_StartsWithDefaults(t *testing.T) {
	s := NewStore()
	assert.Equal(t, Default(), s.Snapshot())
	assert.NotEmpty(t, s.ID())
	assert.Zero(t, s.Generation())
}

func TestStore_RoundTripEveryField(t *testing.T) {
	s := NewStore()

	s.SetImage(ptr("data:image/jpeg;base64,AAAA"))
	assert.Equal(t, ptr("data:image/jpeg;base64,AAAA"), s.Image())

	s.SetTextInput("  I feel MAD  ")
	assert.Equal(t, "  I feel MAD  ", s.TextInput())

	s.SetVoiceInput(ptr("transcript"))
	assert.Equal(t, ptr("transcript"), s.VoiceInput())

	s.SetDetectedMood(ptr(domain.MoodAngry))
	assert.Equal(t, ptr(domain.MoodAngry), s.DetectedMood())

	s.SetRestrictions(domain.Restrictions{domain.DietVegan, domain.DietKeto})
	assert.Equal(t, domain.Restrictions{domain.DietVegan, domain.DietKeto}, s.Restrictions())

	s.SetHealthGoal(domain.GoalEnergyBoost)
	assert.Equal(t, domain.GoalEnergyBoost, s.HealthGoal())

	s.SetAllergies([]string{"Peanuts ", "peanuts"})
	assert.Equal(t, []string{"Peanuts ", "peanuts"}, s.Allergies(), "no coercion on write")
}

func TestStore_AcceptsInvariantViolatingRestrictions(t *testing.T) {
	s := NewStore()
	s.SetRestrictions(domain.Restrictions{domain.DietNone, domain.DietVegan})
	assert.Equal(t, domain.Restrictions{domain.DietNone, domain.DietVegan}, s.Restrictions())

	s.SetRestrictions(nil)
	assert.Nil(t, s.Restrictions())
}

func TestStore_ClearingOptionalFields(t *testing.T) {
	s := NewStore()
	s.SetImage(ptr("img"))
	s.SetDetectedMood(ptr(domain.MoodHappy))
	s.SetImage(nil)
	s.SetDetectedMood(nil)
	assert.Nil(t, s.Image())
	assert.Nil(t, s.DetectedMood())
}

func TestStore_ReturnedValuesAreCopies(t *testing.T) {
	s := NewStore()
	allergies := []string{"soy"}
	s.SetAllergies(allergies)
	allergies[0] = "changed"
	assert.Equal(t, []string{"soy"}, s.Allergies())

	got := s.Allergies()
	got[0] = "changed"
	assert.Equal(t, []string{"soy"}, s.Allergies())

	mood := domain.MoodSad
	s.SetDetectedMood(&mood)
	mood = domain.MoodHappy
	assert.Equal(t, domain.MoodSad, *s.DetectedMood())
}

func TestStore_ResetRestoresDefaults(t *testing.T) {
	s := NewStore()
	firstID := s.ID()
	s.SetImage(ptr("img"))
	s.SetTextInput("happy")
	s.SetDetectedMood(ptr(domain.MoodHappy))
	s.SetRestrictions(domain.Restrictions{domain.DietVegan})
	s.SetHealthGoal(domain.GoalWeightLoss)
	s.SetAllergies([]string{"egg"})

	s.Reset()
	assert.Equal(t, Default(), s.Snapshot())
	assert.Equal(t, uint64(1), s.Generation())
	assert.NotEqual(t, firstID, s.ID())
}

func TestStore_ResetIsIdempotent(t *testing.T) {
	s := NewStore()
	s.SetTextInput("tired")
	s.Reset()
	once := s.Snapshot()
	s.Reset()
	assert.Equal(t, once, s.Snapshot())
	assert.Equal(t, Default(), s.Snapshot())
}

func TestStore_UpdateIsGuardedByGeneration(t *testing.T) {
	s := NewStore()
	gen := s.Generation()

	applied := s.Update(gen, func(st *State) { st.TextInput = "first" })
	require.True(t, applied)
	assert.Equal(t, "first", s.TextInput())

	s.Reset()
	applied = s.Update(gen, func(st *State) { st.TextInput = "stale" })
	assert.False(t, applied)
	assert.Equal(t, "", s.TextInput())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetAllergies([]string{"a", "b"})
			_ = s.Snapshot()
		}()
		go func() {
			defer wg.Done()
			s.Reset()
			_ = s.Allergies()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(20), s.Generation())
}
