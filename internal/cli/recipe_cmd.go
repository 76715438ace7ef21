package cli

import (
	"fmt"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/logging"
	"github.com/spf13/cobra"
)

func newRecipeCmd(app *App) *cobra.Command {
	var mood moodFlag

	cmd := &cobra.Command{
		Use:     "recipe ID",
		Short:   "Show a recipe",
		Example: `  moodmeal recipe 4 --mood tired`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.ContextWithNewCorrelationID(cmd.Context())
			id := args[0]

			r, err := withSpinner(cmd, "Loading recipe details...", func() (*domain.Recipe, error) {
				return app.Recipes.GetRecipeByID(ctx, id)
			})
			if err != nil {
				return fmt.Errorf("loading recipe %s: %w", id, err)
			}
			if r == nil {
				logging.Ctx(ctx).Warn().Str("recipe_id", id).Msg("recipe not found")
				return fmt.Errorf("recipe %q not found", id)
			}

			var m *domain.Mood
			if cmd.Flags().Changed("mood") {
				m = &mood.mood
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecipeDetail(r, m))
			return nil
		},
	}

	cmd.Flags().Var(&mood, "mood", "Explain why the recipe suits this mood")
	return cmd
}
