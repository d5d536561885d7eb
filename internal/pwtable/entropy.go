package pwtable

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pwtable/pwtable/internal/settings"
)

// entropyCmd is pwtable entropy.
func entropyCmd() *cobra.Command {
	impl := &entropyImplConfig{}
	cmd := &cobra.Command{
		Use:   "entropy",
		Short: "Estimate the strength of passwords read from a table",
		Long: `Print how many bits of entropy a cell, a password path of --cells cells
and the whole table carry for the resolved settings.

The estimate assumes an attacker who knows the path but not the table.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return impl.run(cmd.Context(), cmd, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	impl.settings.register(cmd.Flags())
	cmd.Flags().IntVar(&impl.cells, "cells", 8, "number of cells in a password path")
	return cmd
}

type entropyImplConfig struct {
	settings settingsFlags
	cells    int
}

// Estimate is the entropy of a table and of a password path read from it.
type Estimate struct {
	Symbols   int
	PerCell   float64
	PathCells int
	Path      float64
	Cells     int
	Table     float64
}

func estimate(s settings.Settings, pathCells int) (Estimate, error) {
	cs, err := s.CharacterSet()
	if err != nil {
		return Estimate{}, err
	}
	bits := cs.BitsPerSymbol()
	cells := s.Width * s.Height
	return Estimate{
		Symbols:   cs.Len(),
		PerCell:   bits,
		PathCells: pathCells,
		Path:      bits * float64(pathCells),
		Cells:     cells,
		Table:     bits * float64(cells),
	}, nil
}

func (r *entropyImplConfig) run(ctx context.Context, cmd *cobra.Command, stdout, stderr io.Writer) error {
	log := newLogger(cmd, stderr)
	if r.cells <= 0 {
		return fmt.Errorf("--cells must be positive, got %d", r.cells)
	}
	s, err := r.settings.resolve(cmd.Flags(), log)
	if err != nil {
		return err
	}
	e, err := estimate(s, r.cells)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "charset:    %d symbols, %.2f bits per cell\n", e.Symbols, e.PerCell)
	fmt.Fprintf(stdout, "password:   %d cells, %.1f bits\n", e.PathCells, e.Path)
	fmt.Fprintf(stdout, "table:      %d cells, %.1f bits\n", e.Cells, e.Table)
	return nil
}
