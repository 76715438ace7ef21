package domain

import (
	"slices"
	"strings"
)

type DietaryRestriction string

const (
	DietNone       DietaryRestriction = "none"
	DietVegetarian DietaryRestriction = "vegetarian"
	DietVegan      DietaryRestriction = "vegan"
	DietGlutenFree DietaryRestriction = "gluten-free"
	DietDairyFree  DietaryRestriction = "dairy-free"
	DietKeto       DietaryRestriction = "keto"
	DietPaleo      DietaryRestriction = "paleo"
)

// AllRestrictions lists the dietary options in display order.
var AllRestrictions = []DietaryRestriction{
	DietNone, DietVegetarian, DietVegan, DietGlutenFree, DietDairyFree, DietKeto, DietPaleo,
}

// ParseRestriction converts a label into a DietaryRestriction.
func ParseRestriction(s string) (DietaryRestriction, error) {
	for _, r := range AllRestrictions {
		if string(r) == s {
			return r, nil
		}
	}
	return "", &ParseError{Kind: "dietary restriction", Value: s, Err: ErrUnknownRestriction}
}

// Label returns the display name of the restriction.
func (r DietaryRestriction) Label() string {
	switch r {
	case DietNone:
		return "No Restrictions"
	case DietVegetarian:
		return "Vegetarian"
	case DietVegan:
		return "Vegan"
	case DietGlutenFree:
		return "Gluten Free"
	case DietDairyFree:
		return "Dairy Free"
	case DietKeto:
		return "Keto"
	case DietPaleo:
		return "Paleo"
	}
	return string(r)
}

type HealthGoal string

const (
	GoalNone            HealthGoal = "none"
	GoalWeightLoss      HealthGoal = "weight-loss"
	GoalWeightGain      HealthGoal = "weight-gain"
	GoalMuscleBuilding  HealthGoal = "muscle-building"
	GoalEnergyBoost     HealthGoal = "energy-boost"
	GoalMoodImprovement HealthGoal = "mood-improvement"
)

// AllHealthGoals lists the health goals in display order.
var AllHealthGoals = []HealthGoal{
	GoalNone, GoalWeightLoss, GoalWeightGain, GoalMuscleBuilding, GoalEnergyBoost, GoalMoodImprovement,
}

// ParseHealthGoal converts a label into a HealthGoal.
func ParseHealthGoal(s string) (HealthGoal, error) {
	for _, g := range AllHealthGoals {
		if string(g) == s {
			return g, nil
		}
	}
	return "", &ParseError{Kind: "health goal", Value: s, Err: ErrUnknownHealthGoal}
}

// Label returns the display name of the goal.
func (g HealthGoal) Label() string {
	switch g {
	case GoalNone:
		return "No Specific Goal"
	case GoalWeightLoss:
		return "Weight Loss"
	case GoalWeightGain:
		return "Weight Gain"
	case GoalMuscleBuilding:
		return "Muscle Building"
	case GoalEnergyBoost:
		return "Energy Boost"
	case GoalMoodImprovement:
		return "Mood Improvement"
	}
	return string(g)
}

// Restrictions is an ordered set of dietary restrictions. The zero value is
// treated as "no restrictions".
type Restrictions []DietaryRestriction

// NewRestrictions builds a set from rs, dropping duplicates. An empty input
// yields {none}.
func NewRestrictions(rs ...DietaryRestriction) Restrictions {
	out := make(Restrictions, 0, len(rs))
	for _, r := range rs {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return Restrictions{DietNone}
	}
	return out
}

// Has reports whether r is in the set.
func (rs Restrictions) Has(r DietaryRestriction) bool {
	return slices.Contains(rs, r)
}

// IsNone reports whether the set requests no filtering: it is empty or holds
// only "none".
func (rs Restrictions) IsNone() bool {
	for _, r := range rs {
		if r != DietNone {
			return false
		}
	}
	return true
}

// Toggle returns the set that results from the user selecting r.
// Selecting "none" clears everything else; selecting a real restriction while
// "none" is active replaces the set; removing the last real restriction falls
// back to {none}. The receiver is not modified.
func (rs Restrictions) Toggle(r DietaryRestriction) Restrictions {
	if r == DietNone {
		return Restrictions{DietNone}
	}

	var next Restrictions
	switch {
	case rs.Has(DietNone):
		next = Restrictions{r}
	case rs.Has(r):
		next = make(Restrictions, 0, len(rs))
		for _, existing := range rs {
			if existing != r {
				next = append(next, existing)
			}
		}
	default:
		next = append(slices.Clone(rs), r)
	}

	if len(next) == 0 {
		return Restrictions{DietNone}
	}
	return next
}

// Strings returns the labels in set order.
func (rs Restrictions) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

func (rs Restrictions) String() string {
	return strings.Join(rs.Strings(), ", ")
}

// NormalizeAllergy trims and lowercases a free-text allergy entry.
func NormalizeAllergy(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// AddAllergy appends the normalized entry to list. It reports false, leaving
// list untouched, when the entry is blank or already present.
func AddAllergy(list []string, raw string) ([]string, bool) {
	a := NormalizeAllergy(raw)
	if a == "" || slices.Contains(list, a) {
		return list, false
	}
	next := make([]string, 0, len(list)+1)
	next = append(next, list...)
	return append(next, a), true
}

// RemoveAllergy returns list without value.
func RemoveAllergy(list []string, value string) []string {
	next := make([]string, 0, len(list))
	for _, a := range list {
		if a != value {
			next = append(next, a)
		}
	}
	return next
}
