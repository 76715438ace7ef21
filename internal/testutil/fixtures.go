package testutil

import (
	"github.com/athulvp5125/Mood-Meal/internal/domain"
)

// RecipeOption customises a test recipe.
type RecipeOption func(*domain.Recipe)

func WithMoods(moods ...string) RecipeOption {
	return func(r *domain.Recipe) {
		r.MoodCategories = moods
	}
}

func WithTags(tags ...string) RecipeOption {
	return func(r *domain.Recipe) {
		r.Tags = tags
	}
}

func WithCalories(kcal int) RecipeOption {
	return func(r *domain.Recipe) {
		r.Calories = kcal
	}
}

func WithTitle(title string) RecipeOption {
	return func(r *domain.Recipe) {
		r.Title = title
	}
}

// NewTestRecipe returns a valid recipe with sensible defaults.
func NewTestRecipe(id string, opts ...RecipeOption) domain.Recipe {
	r := domain.Recipe{
		ID:           id,
		Title:        "Recipe " + id,
		Description:  "Test recipe " + id,
		CookTime:     15,
		Servings:     2,
		Calories:     300,
		Difficulty:   "Easy",
		Tags:         []string{},
		Ingredients:  []string{"1 thing", "2 other things"},
		Instructions: []string{"Combine.", "Serve."},
		Nutrition: []domain.NutritionFact{
			{Name: "Calories", Value: "300 kcal"},
		},
		MoodCategories: []string{},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RecipeIDs extracts ids in order.
func RecipeIDs(recipes []domain.Recipe) []string {
	ids := make([]string, len(recipes))
	for i := range recipes {
		ids[i] = recipes[i].ID
	}
	return ids
}
