package cli

import (
	"errors"
	"fmt"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/logging"
	"github.com/athulvp5125/Mood-Meal/internal/mood"
	"github.com/spf13/cobra"
)

func newDetectCmd(app *App) *cobra.Command {
	var imagePath string
	var sample, voice, quiet bool

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect a mood from a photo or a voice recording",
		Long: "Run the simulated mood detector. Pass --image with a photo, --sample to\n" +
			"use the built-in camera snapshot, or --voice to simulate a recording.",
		Example: `  moodmeal detect --image ~/Pictures/selfie.jpg
  moodmeal detect --sample
  moodmeal detect --voice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.ContextWithNewCorrelationID(cmd.Context())

			var source string
			var run func() (domain.Mood, error)
			switch {
			case voice:
				source = "Voice"
				run = func() (domain.Mood, error) { return app.Mood.AnalyzeVoice(ctx, mood.SimulatedTranscript) }
			case sample:
				source = "Camera snapshot"
				run = func() (domain.Mood, error) { return app.Mood.DetectFromImage(ctx, sampleSnapshot) }
			case imagePath != "":
				img, err := loadImage(expandHome(imagePath))
				if err != nil {
					return err
				}
				source = "Photo " + img.label
				run = func() (domain.Mood, error) { return app.Mood.DetectFromImage(ctx, img.dataURI) }
			default:
				return errors.New("choose an input: --image PATH, --sample or --voice")
			}

			m, err := withSpinner(cmd, "Analyzing your mood...", run)
			if err != nil {
				return fmt.Errorf("detecting mood: %w", err)
			}
			logging.Ctx(ctx).Debug().Str("source", source).Str("mood", string(m)).Msg("mood detected")

			out := cmd.OutOrStdout()
			if quiet {
				fmt.Fprintln(out, m)
				return nil
			}
			fmt.Fprint(out, formatter.FormatMoodResult(source, m))
			return nil
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "Path to an image file")
	cmd.Flags().BoolVar(&sample, "sample", false, "Use the built-in camera snapshot")
	cmd.Flags().BoolVar(&voice, "voice", false, "Simulate a voice recording")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the mood label")
	cmd.MarkFlagsMutuallyExclusive("image", "sample", "voice")

	return cmd
}
