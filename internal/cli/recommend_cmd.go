package cli

import (
	"fmt"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/logging"
	"github.com/athulvp5125/Mood-Meal/internal/recommend"
	"github.com/spf13/cobra"
)

func newRecommendCmd(app *App) *cobra.Command {
	var mood moodFlag
	var diet restrictionsFlag
	var goal goalFlag
	var idsOnly bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend recipes for a mood and preferences",
		Long: "Run the recommendation pipeline: mood match, then dietary match, then\n" +
			"health goal match, falling back to the first three catalog recipes when\n" +
			"nothing survives. Without --mood no mood is assumed and neutral is used.",
		Example: `  moodmeal recommend --mood tired
  moodmeal recommend --mood happy --diet vegan,gluten-free --goal weight-loss`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.ContextWithNewCorrelationID(cmd.Context())

			var detected *domain.Mood
			req := recommend.Request{
				Mood:         domain.MoodNeutral,
				Restrictions: diet.Value(),
				Goal:         goal.Value(),
			}
			if cmd.Flags().Changed("mood") {
				m := mood.mood
				detected = &m
				req.Mood = m
			}

			res, err := withSpinner(cmd, "Finding the perfect recipes for your mood...", func() (recommend.Result, error) {
				return app.Recipes.Recommend(ctx, req)
			})
			if err != nil {
				return fmt.Errorf("recommending recipes: %w", err)
			}
			logging.Ctx(ctx).Debug().
				Str("mood", string(req.Mood)).
				Int("results", len(res.Recipes)).
				Msg("recommendations ready")

			out := cmd.OutOrStdout()
			if idsOnly {
				for _, r := range res.Recipes {
					fmt.Fprintln(out, r.ID)
				}
				return nil
			}
			fmt.Fprint(out, formatter.FormatRecommendations(detected, res))
			return nil
		},
	}

	cmd.Flags().Var(&mood, "mood", "Mood to recommend for: happy, sad, angry, tired, anxious, energetic, neutral")
	addPreferenceFlags(cmd.Flags(), &diet, &goal)
	cmd.Flags().BoolVar(&idsOnly, "ids", false, "Print only recipe ids, one per line")

	return cmd
}
