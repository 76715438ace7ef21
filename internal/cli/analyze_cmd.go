package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/logging"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "analyze [TEXT...]",
		Short: "Classify how you feel from a sentence",
		Long: "Classify free text into a mood by keyword. With no arguments the text\n" +
			"is read from stdin.",
		Example: `  moodmeal analyze "I'm exhausted after work"
  echo "so excited for the weekend" | moodmeal analyze`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				text = string(data)
			}
			if strings.TrimSpace(text) == "" {
				return errors.New("nothing to analyze: pass text as arguments or on stdin")
			}

			ctx := logging.ContextWithNewCorrelationID(cmd.Context())
			m, err := withSpinner(cmd, "Analyzing...", func() (domain.Mood, error) {
				return app.Mood.AnalyzeText(ctx, text)
			})
			if err != nil {
				return fmt.Errorf("analyzing text: %w", err)
			}
			logging.Ctx(ctx).Debug().Str("mood", string(m)).Int("chars", len(text)).Msg("text analysed")

			out := cmd.OutOrStdout()
			if quiet {
				fmt.Fprintln(out, m)
				return nil
			}
			fmt.Fprint(out, formatter.FormatMoodResult("Text", m))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the mood label")
	return cmd
}
