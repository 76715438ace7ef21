package cli

import (
	"io"
	"os"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// withSpinner runs fn while a spinner animates on stderr. The spinner is
// only shown when stderr is a terminal, so piped and captured output stays
// clean.
func withSpinner[T any](cmd *cobra.Command, message string, fn func() (T, error)) (T, error) {
	if isTerminalWriter(cmd.ErrOrStderr()) {
		stop := formatter.StartSpinner(cmd.ErrOrStderr(), message)
		defer stop()
	}
	return fn()
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
