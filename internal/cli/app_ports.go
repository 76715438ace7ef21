package cli

import (
	"context"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/session"
	"github.com/athulvp5125/Mood-Meal/internal/wizard"
)

// MoodService is the mood simulator surface used by commands and the TUI.
type MoodService interface {
	DetectFromImage(ctx context.Context, image string) (domain.Mood, error)
	AnalyzeText(ctx context.Context, text string) (domain.Mood, error)
	AnalyzeVoice(ctx context.Context, audio string) (domain.Mood, error)
}

// RecipeService answers recommendation and lookup queries.
type RecipeService interface {
	wizard.RecipeFinder
}

// newController starts a fresh wizard session on the landing step.
func (a *App) newController() *wizard.Controller {
	c := wizard.NewController(session.NewStore(), a.Mood, a.Recipes, a.Logger)
	c.Start()
	return c
}
