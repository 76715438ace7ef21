package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/athulvp5125/Mood-Meal/internal/catalog"
	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/db"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/logging"
	"github.com/athulvp5125/Mood-Meal/internal/recommend"
	"github.com/athulvp5125/Mood-Meal/internal/repository"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the recipe catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogExportCmd(app),
		newCatalogSeedCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	var mood moodFlag

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog recipes in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := app.Catalog.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing catalog: %w", err)
			}
			if cmd.Flags().Changed("mood") {
				recipes = recommend.FilterByMood(recipes, mood.mood)
			}

			out := cmd.OutOrStdout()
			if len(recipes) == 0 {
				fmt.Fprintln(out, formatter.Dim("No recipes."))
				return nil
			}

			rows := make([][]string, len(recipes))
			for i, r := range recipes {
				rows[i] = []string{
					r.ID,
					r.Title,
					formatter.Minutes(r.CookTime),
					strconv.Itoa(r.Calories),
					strings.Join(r.MoodCategories, ", "),
					strings.Join(r.Tags, ", "),
				}
			}
			fmt.Fprint(out, formatter.RenderTable(
				[]string{"ID", "TITLE", "TIME", "CAL", "MOODS", "TAGS"}, rows))
			return nil
		},
	}

	cmd.Flags().Var(&mood, "mood", "Only recipes tagged for this mood")
	return cmd
}

func newCatalogExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as YAML",
		Long:  "Write the active catalog as a YAML document that catalog seed --from\nand the catalog.path setting accept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := app.Catalog.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing catalog: %w", err)
			}
			return catalog.Encode(cmd.OutOrStdout(), recipes)
		},
	}
}

func newCatalogSeedCmd(app *App) *cobra.Command {
	var dbPath, from string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store a catalog in a SQLite database",
		Long: "Replace the recipes in a SQLite catalog database with the built-in\n" +
			"catalog, or with a YAML catalog file given by --from.",
		Example: `  moodmeal catalog seed --db ~/.moodmeal/catalog.db
  moodmeal catalog seed --db ./catalog.db --from recipes.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.ContextWithNewCorrelationID(cmd.Context())
			if dbPath == "" {
				dbPath = app.DBPath
			}
			if dbPath == "" {
				return errors.New("no database: pass --db or set catalog.db")
			}
			dbPath = expandHome(dbPath)

			var recipes []domain.Recipe
			source := "builtin"
			if from != "" {
				file, err := catalog.LoadFile(expandHome(from))
				if err != nil {
					return err
				}
				recipes, err = file.List(ctx)
				if err != nil {
					return err
				}
				source = from
			} else {
				var err error
				recipes, err = catalog.Builtin().List(ctx)
				if err != nil {
					return err
				}
			}

			conn, err := db.OpenDB(dbPath)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := repository.SeedCatalog(ctx, db.NewSQLiteUnitOfWork(conn), recipes, source, time.Now()); err != nil {
				return err
			}
			meta, err := repository.NewSQLiteRecipeRepo(conn).Meta(ctx)
			if err != nil {
				return err
			}
			logging.Ctx(ctx).Info().
				Str("db", dbPath).
				Str("source", source).
				Int("recipes", len(recipes)).
				Msg("catalog seeded")

			fmt.Fprintf(cmd.OutOrStdout(), "%s Seeded %d recipes from %s into %s (%s)\n",
				formatter.StyleGreen.Render("✔"), len(recipes), meta.Source, dbPath,
				meta.SeededAt.Local().Format(time.DateTime))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file (defaults to catalog.db from config)")
	cmd.Flags().StringVar(&from, "from", "", "YAML catalog file to seed from instead of the built-in recipes")
	return cmd
}
