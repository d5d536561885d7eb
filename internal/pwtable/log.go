package pwtable

import (
	"io"
	"log/slog"
	"os"

	"github.com/MatusOllah/slogcolor"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newLogger returns the diagnostics logger of one invocation. Table contents
// are never logged.
func newLogger(cmd *cobra.Command, stderr io.Writer) *slog.Logger {
	opts := *slogcolor.DefaultOptions
	opts.Level = slog.LevelInfo
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := stderr.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		opts.NoColor = true
	}
	return slog.New(slogcolor.NewHandler(stderr, &opts))
}
