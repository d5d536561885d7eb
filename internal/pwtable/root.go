package pwtable

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pwtable/pwtable/internal/version"
)

func RootCmd() *cobra.Command {
	gen := generateCmd()
	rootCmd := &cobra.Command{
		Use:   "pwtable",
		Short: "print a table of random characters to derive passwords from",
		Long: `The pwtable tool prints a password table: a grid of random characters,
decorated with emoji, that you can print or photograph.

A password is then a path through the grid (e.g. "C4, D4, D5, E5, ..."),
which you remember instead of the characters themselves. The table only
needs to be unpredictable; every cell is drawn uniformly from a
cryptographically secure random source.

Running pwtable without a command is the same as pwtable generate.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			versionVal, err := cmd.Flags().GetBool("version")
			if err != nil {
				return fmt.Errorf("BUG: version flag declared as non-bool")
			}
			if versionVal {
				fmt.Fprintln(cmd.OutOrStdout(), version.Read())
				return nil
			}
			return gen.RunE(cmd, args)
		},
	}
	rootCmd.Flags().Bool("version", false, "print pwtable version")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug messages to stderr")
	// The root command generates a table, too.
	rootCmd.Flags().AddFlagSet(gen.Flags())
	rootCmd.AddCommand(gen)
	rootCmd.AddCommand(entropyCmd())
	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}
