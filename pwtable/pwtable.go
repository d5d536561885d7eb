// Package pwtable runs the pwtable command line tool from Go code, so that
// other programs can generate password tables without spawning a process.
package pwtable

import (
	"context"
	"io"

	"github.com/pwtable/pwtable/internal/pwtable"
)

// Context carries the streams and arguments of one run. Nil fields fall
// back to the process's own standard streams and os.Args.
type Context struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Args   []string
}

// Execute runs pwtable and returns the first error of the command.
func (c Context) Execute(ctx context.Context) error {
	root := pwtable.RootCmd()
	root.SetIn(c.Stdin)
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)
	root.SetArgs(c.Args)
	return root.ExecuteContext(ctx)
}
