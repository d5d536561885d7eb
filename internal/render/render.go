// Package render writes password tables for terminals, text files and web
// pages.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pwtable/pwtable/internal/table"
)

// Format selects an output representation.
type Format string

const (
	Terminal Format = "terminal"
	Text     Format = "text"
	HTML     Format = "html"
)

// Formats lists the accepted --format values.
var Formats = []Format{Terminal, Text, HTML}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of terminal, text, html)", s)
}

// FormatForPath infers the format from a file name extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return HTML
	default:
		return Text
	}
}

// Options tune rendering.
type Options struct {
	// Color enables stripe colors in the terminal format.
	Color bool
}

// Render writes t to w in format f.
func Render(w io.Writer, t *table.Table, f Format, opts Options) error {
	switch f {
	case Terminal:
		return renderTerminal(w, t, opts)
	case Text:
		return renderText(w, t)
	case HTML:
		return renderHTML(w, t)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// WriteFiles renders t once per path, in the format implied by each path's
// extension. Files are replaced atomically and readable only by the owner.
func WriteFiles(ctx context.Context, t *table.Table, paths []string) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		eg.Go(func() error {
			var buf bytes.Buffer
			if err := Render(&buf, t, FormatForPath(path), Options{}); err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := replaceFile(path, buf.Bytes(), 0600); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			return nil
		})
	}
	return eg.Wait()
}
