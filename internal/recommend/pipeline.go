// Package recommend selects catalog recipes for a mood and the user's
// dietary preferences.
//
// The pipeline runs mood, dietary and health-goal filters in that order.
// It never returns an empty list for a non-empty catalog: an empty mood match
// and an empty final result both fall back to the first FallbackSize recipes
// in catalog order.
package recommend

import (
	"github.com/athulvp5125/Mood-Meal/internal/domain"
)

// FallbackSize is how many leading catalog recipes a fallback returns.
const FallbackSize = 3

// Calorie thresholds for the weight goals. Both bounds are strict.
const (
	weightLossMaxCalories = 400
	weightGainMinCalories = 350
)

// Request is the input to Recommend.
type Request struct {
	Mood         domain.Mood
	Restrictions domain.Restrictions
	Goal         domain.HealthGoal
}

// Result is the ordered recommendation plus a record of which fallbacks fired.
type Result struct {
	Recipes []domain.Recipe
	// MoodFallback is set when no recipe matched the mood.
	MoodFallback bool
	// FinalFallback is set when filtering removed every candidate.
	FinalFallback bool
}

// Recommend runs the full pipeline over catalog.
func Recommend(catalog []domain.Recipe, req Request) Result {
	var res Result

	candidates := FilterByMood(catalog, req.Mood)
	if len(candidates) == 0 {
		candidates = Fallback(catalog)
		res.MoodFallback = true
	}

	candidates = FilterByRestrictions(candidates, req.Restrictions)
	candidates = FilterByGoal(candidates, req.Goal)

	if len(candidates) == 0 {
		candidates = Fallback(catalog)
		res.FinalFallback = true
	}
	res.Recipes = candidates
	return res
}

// FilterByMood keeps recipes whose mood categories contain mood.
func FilterByMood(recipes []domain.Recipe, mood domain.Mood) []domain.Recipe {
	return filter(recipes, func(r *domain.Recipe) bool { return r.SuitsMood(mood) })
}

// FilterByRestrictions keeps recipes tagged with at least one selected
// restriction. A set that is empty or holds only none keeps everything.
// Matching is exact on the restriction value, so "gluten-free" matches the
// tag "gluten-free" only.
func FilterByRestrictions(recipes []domain.Recipe, restrictions domain.Restrictions) []domain.Recipe {
	if restrictions.IsNone() {
		return recipes
	}
	return filter(recipes, func(r *domain.Recipe) bool {
		for _, want := range restrictions {
			if want != domain.DietNone && r.HasTag(string(want)) {
				return true
			}
		}
		return false
	})
}

// FilterByGoal applies the health-goal predicate. GoalNone and
// GoalMuscleBuilding keep everything; an unrecognised goal does too.
func FilterByGoal(recipes []domain.Recipe, goal domain.HealthGoal) []domain.Recipe {
	switch goal {
	case domain.GoalWeightLoss:
		return filter(recipes, func(r *domain.Recipe) bool { return r.Calories < weightLossMaxCalories })
	case domain.GoalWeightGain:
		return filter(recipes, func(r *domain.Recipe) bool { return r.Calories > weightGainMinCalories })
	case domain.GoalEnergyBoost:
		return filter(recipes, func(r *domain.Recipe) bool { return r.HasTag("energizing") })
	case domain.GoalMoodImprovement:
		return filter(recipes, func(r *domain.Recipe) bool {
			return r.HasTag("chocolate") || r.HasTag("comfort food")
		})
	default:
		return recipes
	}
}

// Fallback returns up to the first FallbackSize recipes in catalog order.
func Fallback(catalog []domain.Recipe) []domain.Recipe {
	n := min(FallbackSize, len(catalog))
	out := make([]domain.Recipe, n)
	copy(out, catalog[:n])
	return out
}

func filter(recipes []domain.Recipe, keep func(*domain.Recipe) bool) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(recipes))
	for i := range recipes {
		if keep(&recipes[i]) {
			out = append(out, recipes[i])
		}
	}
	return out
}
