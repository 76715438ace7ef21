package repository

import (
	"context"

	"github.com/athulvp5125/Mood-Meal/internal/catalog"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
)

// RecipeRepo is a persistent catalog. Reads follow catalog.Source; writes
// replace the whole catalog so its order stays the order it was seeded in.
type RecipeRepo interface {
	catalog.Source
	Count(ctx context.Context) (int, error)
	Replace(ctx context.Context, recipes []domain.Recipe) error
	Meta(ctx context.Context) (*CatalogMeta, error)
}

var _ RecipeRepo = (*SQLiteRecipeRepo)(nil)
