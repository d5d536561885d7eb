package pwtable

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// queryCmd is pwtable query.
func queryCmd() *cobra.Command {
	impl := &queryImplConfig{}
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the resolved settings as a URL query string",
		Long: `Print the resolved settings as a URL query string that can be passed to
--query or appended to the URL of the web front end.

Examples:
  % pwtable query --width=20 --charset='!?'
  global_charset=%21%3F&size_height=10&size_width=20
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return impl.run(cmd.Context(), cmd, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	impl.settings.register(cmd.Flags())
	return cmd
}

type queryImplConfig struct {
	settings settingsFlags
}

func (r *queryImplConfig) run(ctx context.Context, cmd *cobra.Command, stdout, stderr io.Writer) error {
	s, err := r.settings.resolve(cmd.Flags(), newLogger(cmd, stderr))
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, s.Encode())
	return nil
}
