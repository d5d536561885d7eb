package render

import (
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/pwtable/pwtable/internal/grid"
	"github.com/pwtable/pwtable/internal/table"
)

type stripes struct {
	header *color.Color
	oddRow *color.Color
	oddCol *color.Color
	both   *color.Color
}

func newStripes(enabled bool) stripes {
	s := stripes{
		header: color.New(color.FgCyan, color.Bold),
		oddRow: color.New(color.BgHiBlack),
		oddCol: color.New(color.Underline),
		both:   color.New(color.BgHiBlack, color.Underline),
	}
	for _, c := range []*color.Color{s.header, s.oddRow, s.oddCol, s.both} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s stripes) cell(row, col int, text string) string {
	switch {
	case row == grid.Header || col == grid.Header:
		return s.header.Sprint(text)
	case grid.ParityOf(row) == grid.Odd && grid.ParityOf(col) == grid.Odd:
		return s.both.Sprint(text)
	case grid.ParityOf(row) == grid.Odd:
		return s.oddRow.Sprint(text)
	case grid.ParityOf(col) == grid.Odd:
		return s.oddCol.Sprint(text)
	default:
		return text
	}
}

// renderTerminal draws a bordered table, striping odd rows and columns when
// colors are enabled.
func renderTerminal(w io.Writer, t *table.Table, opts Options) error {
	st := newStripes(opts.Color)

	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_CENTER)
	tw.SetHeaderAlignment(tablewriter.ALIGN_CENTER)

	header := make([]string, 0, t.Layout.Width+1)
	header = append(header, st.cell(grid.Header, grid.Header, t.Layout.RowLabel(grid.Header)))
	for col, label := range t.Layout.ColumnLabels() {
		header = append(header, st.cell(grid.Header, col, label))
	}
	tw.SetHeader(header)

	for row := 0; row < t.Layout.Height; row++ {
		line := make([]string, 0, t.Layout.Width+1)
		line = append(line, st.cell(row, grid.Header, t.Layout.RowLabel(row)))
		for col := 0; col < t.Layout.Width; col++ {
			line = append(line, st.cell(row, col, t.Display(row, col)))
		}
		tw.Append(line)
	}
	tw.Render()
	return nil
}
