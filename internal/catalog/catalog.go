// Package catalog provides the read-only recipe collection the recommender
// filters. Catalog order is significant: fallbacks take the first entries.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
)

// ErrNotFound is returned by Get when no recipe has the requested id.
var ErrNotFound = errors.New("recipe not found")

// Source is a queryable recipe catalog.
type Source interface {
	// List returns every recipe in catalog order.
	List(ctx context.Context) ([]domain.Recipe, error)
	// Get returns the recipe with id, or an error wrapping ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Recipe, error)
}

// Static is an in-memory catalog. It is safe for concurrent use because it
// is never mutated after construction.
type Static struct {
	recipes []domain.Recipe
}

var _ Source = (*Static)(nil)

// NewStatic builds a catalog from recipes, keeping their order.
func NewStatic(recipes []domain.Recipe) *Static {
	return &Static{recipes: cloneRecipes(recipes)}
}

func (s *Static) List(ctx context.Context) ([]domain.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneRecipes(s.recipes), nil
}

func (s *Static) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			r := cloneRecipe(s.recipes[i])
			return &r, nil
		}
	}
	return nil, fmt.Errorf("recipe %q: %w", id, ErrNotFound)
}

// Len returns the number of recipes.
func (s *Static) Len() int { return len(s.recipes) }

func cloneRecipes(in []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, len(in))
	for i := range in {
		out[i] = cloneRecipe(in[i])
	}
	return out
}

func cloneRecipe(r domain.Recipe) domain.Recipe {
	r.Tags = slices.Clone(r.Tags)
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Instructions = slices.Clone(r.Instructions)
	r.Nutrition = slices.Clone(r.Nutrition)
	r.MoodCategories = slices.Clone(r.MoodCategories)
	return r
}
