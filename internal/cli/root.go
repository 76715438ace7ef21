package cli

import (
	"fmt"

	"github.com/athulvp5125/Mood-Meal/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds references to everything the commands and the TUI need.
type App struct {
	Mood    MoodService
	Recipes RecipeService
	Catalog catalog.Source
	Logger  zerolog.Logger

	// DBPath is the default target of "catalog seed".
	DBPath  string
	Version string

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command opens the TUI only when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "moodmeal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "moodmeal",
		Short:         "Mood-based recipe recommendations",
		Long:          "MoodMeal detects how you feel and recommends recipes to match your mood,\ndietary preferences, and health goals.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			p := tea.NewProgram(newAppModel(app),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running tui: %w", err)
			}
			return nil
		},
	}

	// Read by main before the command tree is built; declared here so
	// cobra accepts it.
	root.PersistentFlags().String("config", "", "Path to a moodmeal.yaml config file")

	root.AddCommand(
		newAnalyzeCmd(app),
		newDetectCmd(app),
		newRecommendCmd(app),
		newRecipeCmd(app),
		newCatalogCmd(app),
		newRoutesCmd(),
		newVersionCmd(app),
	)

	return root
}
