package pwtable

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pwtable/pwtable/internal/version"
)

// versionCmd is pwtable version.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print pwtable version",
		Long:  `Print pwtable version`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionImpl.run(cmd.Context(), args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

type versionImplConfig struct{}

var versionImpl versionImplConfig

func (r *versionImplConfig) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fmt.Fprintf(stdout, "%s\n", version.Read())
	return nil
}
