package cli

import (
	"fmt"
	"strconv"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/wizard"
	"github.com/spf13/cobra"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the wizard's screens and their routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), routesTable())
			return nil
		},
	}
}

// routesTable renders every step with its route and progress number.
func routesTable() string {
	rows := make([][]string, 0, len(wizard.Steps))
	for _, s := range wizard.Steps {
		step := "-"
		if n := s.Number(); n > 0 {
			step = strconv.Itoa(n)
		}
		rows = append(rows, []string{s.Route(), step, s.Title()})
	}
	return formatter.RenderTable([]string{"ROUTE", "STEP", "PAGE"}, rows)
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v := app.Version
			if v == "" {
				v = "dev"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "moodmeal %s\n", v)
		},
	}
}
