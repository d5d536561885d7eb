package render

import (
	"html/template"
	"io"

	"github.com/pwtable/pwtable/internal/grid"
	"github.com/pwtable/pwtable/internal/table"
)

var page = template.Must(template.New("table").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>Password table</title>
<style>
table.pwtable { border-collapse: collapse; font-family: monospace; font-size: 1.4em; }
table.pwtable th, table.pwtable td { padding: 0.2em 0.4em; text-align: center; }
table.pwtable th { color: #555; }
table.pwtable .row-odd { background: #eee; }
table.pwtable .col-odd { box-shadow: inset 0 0 0 100vmax rgba(0, 0, 0, 0.04); }
</style>
</head>
<body>
<table class="pwtable">
{{- range .Rows}}
<tr>
{{- range .}}{{if .Header}}<th class="{{.Class}}">{{.Text}}</th>{{else}}<td class="{{.Class}}">{{.Text}}</td>{{end}}{{end -}}
</tr>
{{- end}}
</table>
</body>
</html>
`))

type htmlCell struct {
	Header bool
	Class  string
	Text   string
}

// htmlRows lays out the header row and every data row, each starting with
// its header cell.
func htmlRows(t *table.Table) [][]htmlCell {
	rows := make([][]htmlCell, 0, t.Layout.Height+1)
	head := []htmlCell{{Header: true, Class: t.Class(grid.Header, grid.Header)}}
	for col, label := range t.Layout.ColumnLabels() {
		head = append(head, htmlCell{Header: true, Class: t.Class(grid.Header, col), Text: label})
	}
	rows = append(rows, head)
	for row := 0; row < t.Layout.Height; row++ {
		line := []htmlCell{{Header: true, Class: t.Class(row, grid.Header), Text: t.Layout.RowLabel(row)}}
		for col := 0; col < t.Layout.Width; col++ {
			class := t.Class(row, col)
			if t.Overlaid(row, col) {
				class += " emoji"
			}
			line = append(line, htmlCell{Class: class, Text: t.Display(row, col)})
		}
		rows = append(rows, line)
	}
	return rows
}

func renderHTML(w io.Writer, t *table.Table) error {
	return page.Execute(w, struct {
		Lang string
		Rows [][]htmlCell
	}{
		Lang: t.Settings.Lang,
		Rows: htmlRows(t),
	})
}
