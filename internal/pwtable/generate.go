package pwtable

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pwtable/pwtable/internal/entropy"
	"github.com/pwtable/pwtable/internal/render"
	"github.com/pwtable/pwtable/internal/table"
)

// generateCmd is pwtable generate.
func generateCmd() *cobra.Command {
	impl := &generateImplConfig{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and print a new password table",
		Long: `Generate a new password table and print it.

Every invocation draws a completely new table; nothing is cached or stored.

Examples:
  # 20×12 table with extra punctuation, printed to the terminal:
  % pwtable generate --width=20 --height=12 --charset='!#%&'

  # same settings as a bookmarked web page, saved for printing:
  % pwtable generate --query='size_width=20&size_height=12' -o table.html -o table.txt
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NArg() > 0 {
				fmt.Fprint(cmd.ErrOrStderr(), `positional arguments are not supported

`)
				return cmd.Usage()
			}
			return impl.run(cmd.Context(), cmd, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	impl.settings.register(cmd.Flags())
	cmd.Flags().StringVarP(&impl.format, "format", "f", string(render.Terminal), "output format on stdout: terminal, text or html")
	cmd.Flags().StringSliceVarP(&impl.outputs, "output", "o", nil, "write the table to this file instead of stdout (repeatable; .html files get HTML, others text)")
	cmd.Flags().StringVar(&impl.color, "color", "auto", "stripe colors in terminal format: auto, always or never")
	cmd.Flags().BoolVar(&impl.printQuery, "print-query", false, "print the settings as a query string for --query after the table")
	return cmd
}

type generateImplConfig struct {
	settings   settingsFlags
	format     string
	outputs    []string
	color      string
	printQuery bool
}

func (r *generateImplConfig) run(ctx context.Context, cmd *cobra.Command, stdout, stderr io.Writer) error {
	log := newLogger(cmd, stderr)

	s, err := r.settings.resolve(cmd.Flags(), log)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(r.format)
	if err != nil {
		return err
	}
	useColor, err := colorEnabled(r.color, stdout)
	if err != nil {
		return err
	}

	src := entropy.New()
	defer src.Close()
	tbl, err := table.Build(src, s)
	if err != nil {
		return err
	}
	log.Debug("generated table",
		"width", s.Width,
		"height", s.Height,
		"symbols", tbl.Charset.Len(),
		"bits_per_cell", fmt.Sprintf("%.2f", tbl.Charset.BitsPerSymbol()),
		"emoji", len(tbl.Emoji),
		"draws", src.Draws())

	if len(r.outputs) > 0 {
		if err := render.WriteFiles(ctx, tbl, r.outputs); err != nil {
			return err
		}
		for _, path := range r.outputs {
			log.Info("wrote password table", "path", path, "format", render.FormatForPath(path))
		}
	}
	if len(r.outputs) == 0 || cmd.Flags().Changed("format") {
		if err := render.Render(stdout, tbl, format, render.Options{Color: useColor}); err != nil {
			return err
		}
	}
	if r.printQuery {
		fmt.Fprintf(stdout, "?%s\n", s.Encode())
	}
	return nil
}

func colorEnabled(mode string, stdout io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := stdout.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color=%q (want auto, always or never)", mode)
	}
}

