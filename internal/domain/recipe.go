package domain

import "slices"

// NutritionFact is a single labelled nutrition line such as "Protein: 18g".
type NutritionFact struct {
	Name  string `yaml:"name" validate:"required"`
	Value string `yaml:"value" validate:"required"`
}

// Recipe is an immutable catalog entry.
type Recipe struct {
	ID             string          `yaml:"id" validate:"required"`
	Title          string          `yaml:"title" validate:"required"`
	Description    string          `yaml:"description"`
	Image          string          `yaml:"image"`
	CookTime       int             `yaml:"cook_time" validate:"gt=0"`
	Servings       int             `yaml:"servings" validate:"gt=0"`
	Calories       int             `yaml:"calories" validate:"gt=0"`
	Difficulty     string          `yaml:"difficulty"`
	Tags           []string        `yaml:"tags"`
	Ingredients    []string        `yaml:"ingredients"`
	Instructions   []string        `yaml:"instructions"`
	Nutrition      []NutritionFact `yaml:"nutrition" validate:"dive"`
	MoodCategories []string        `yaml:"mood_categories"`
}

// HasTag reports whether tag appears verbatim in the recipe's tags.
func (r *Recipe) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// SuitsMood reports whether the recipe lists m among its mood categories.
func (r *Recipe) SuitsMood(m Mood) bool {
	return slices.Contains(r.MoodCategories, string(m))
}
