package render

import (
	"bufio"
	"io"

	"github.com/pwtable/pwtable/internal/grid"
	"github.com/pwtable/pwtable/internal/table"
)

// renderText writes tab-separated rows with a header row and column.
func renderText(w io.Writer, t *table.Table) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(t.Layout.RowLabel(grid.Header))
	for _, label := range t.Layout.ColumnLabels() {
		bw.WriteByte('\t')
		bw.WriteString(label)
	}
	bw.WriteByte('\n')
	for row := 0; row < t.Layout.Height; row++ {
		bw.WriteString(t.Layout.RowLabel(row))
		for col := 0; col < t.Layout.Width; col++ {
			bw.WriteByte('\t')
			bw.WriteString(t.Display(row, col))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
