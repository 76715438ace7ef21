package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_FromNoneSelectsSingle(t *testing.T) {
	rs := NewRestrictions()
	assert.Equal(t, Restrictions{DietNone}, rs)

	rs = rs.Toggle(DietVegan)
	assert.Equal(t, Restrictions{DietVegan}, rs)

	rs = rs.Toggle(DietNone)
	assert.Equal(t, Restrictions{DietNone}, rs)
}

func TestToggle_AccumulatesAndRevertsToNone(t *testing.T) {
	rs := NewRestrictions().Toggle(DietVegan).Toggle(DietKeto)
	assert.Equal(t, Restrictions{DietVegan, DietKeto}, rs)

	rs = rs.Toggle(DietVegan)
	assert.Equal(t, Restrictions{DietKeto}, rs)

	rs = rs.Toggle(DietKeto)
	assert.Equal(t, Restrictions{DietNone}, rs, "never an empty set")
}

func TestToggle_FromEmptySet(t *testing.T) {
	var rs Restrictions
	assert.Equal(t, Restrictions{DietPaleo}, rs.Toggle(DietPaleo))
	assert.Equal(t, Restrictions{DietNone}, rs.Toggle(DietNone))
}

func TestToggle_DoesNotMutateReceiver(t *testing.T) {
	rs := Restrictions{DietVegan, DietKeto}
	_ = rs.Toggle(DietKeto)
	_ = rs.Toggle(DietPaleo)
	assert.Equal(t, Restrictions{DietVegan, DietKeto}, rs)
}

func TestToggle_ExclusivityHoldsForEverySequence(t *testing.T) {
	rs := NewRestrictions()
	seq := []DietaryRestriction{
		DietVegan, DietKeto, DietNone, DietPaleo, DietPaleo, DietGlutenFree,
		DietDairyFree, DietNone, DietVegetarian, DietVegetarian,
	}
	for _, r := range seq {
		rs = rs.Toggle(r)
		require.NotEmpty(t, rs)
		if rs.Has(DietNone) {
			assert.Len(t, rs, 1, "none must be exclusive after toggling %s", r)
		}
	}
}

func TestRestrictions_IsNone(t *testing.T) {
	cases := []struct {
		rs   Restrictions
		none bool
	}{
		{nil, true},
		{Restrictions{DietNone}, true},
		{Restrictions{DietNone, DietNone}, true},
		{Restrictions{DietVegan}, false},
		{Restrictions{DietNone, DietVegan}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.none, tc.rs.IsNone(), "rs=%v", tc.rs)
	}
}

func TestNewRestrictions_DropsDuplicates(t *testing.T) {
	rs := NewRestrictions(DietVegan, DietKeto, DietVegan)
	assert.Equal(t, Restrictions{DietVegan, DietKeto}, rs)
	assert.Equal(t, "vegan, keto", rs.String())
}

func TestAddAllergy(t *testing.T) {
	list, ok := AddAllergy(nil, "  Peanuts ")
	require.True(t, ok)
	assert.Equal(t, []string{"peanuts"}, list)

	list, ok = AddAllergy(list, "PEANUTS")
	assert.False(t, ok, "duplicate after normalization")
	assert.Equal(t, []string{"peanuts"}, list)

	list, ok = AddAllergy(list, "   ")
	assert.False(t, ok, "blank entry")
	assert.Equal(t, []string{"peanuts"}, list)

	list, ok = AddAllergy(list, "Shellfish")
	require.True(t, ok)
	assert.Equal(t, []string{"peanuts", "shellfish"}, list)
}

func TestAddAllergy_DoesNotAliasInput(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "soy"
	next, ok := AddAllergy(base, "egg")
	require.True(t, ok)
	next[0] = "changed"
	assert.Equal(t, "soy", base[0])
}

func TestRemoveAllergy(t *testing.T) {
	list := []string{"peanuts", "soy", "egg"}
	assert.Equal(t, []string{"peanuts", "egg"}, RemoveAllergy(list, "soy"))
	assert.Equal(t, list, RemoveAllergy(list, "gluten"))
	assert.Equal(t, []string{"peanuts", "soy", "egg"}, list)
}

func TestParseEnums(t *testing.T) {
	m, err := ParseMood("tired")
	require.NoError(t, err)
	assert.Equal(t, MoodTired, m)

	_, err = ParseMood("stressed")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMood))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "stressed", pe.Value)

	r, err := ParseRestriction("gluten-free")
	require.NoError(t, err)
	assert.Equal(t, DietGlutenFree, r)
	_, err = ParseRestriction("pescatarian")
	assert.ErrorIs(t, err, ErrUnknownRestriction)

	g, err := ParseHealthGoal("muscle-building")
	require.NoError(t, err)
	assert.Equal(t, GoalMuscleBuilding, g)
	_, err = ParseHealthGoal("bulk")
	assert.ErrorIs(t, err, ErrUnknownHealthGoal)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Gluten Free", DietGlutenFree.Label())
	assert.Equal(t, "No Restrictions", DietNone.Label())
	assert.Equal(t, "No Specific Goal", GoalNone.Label())
	assert.Equal(t, "Mood Improvement", GoalMoodImprovement.Label())
}
