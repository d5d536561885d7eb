// Package table assembles a password grid, its labels and the emoji overlay
// into one value that renderers consume.
package table

import (
	"github.com/pwtable/pwtable/internal/emoji"
	"github.com/pwtable/pwtable/internal/entropy"
	"github.com/pwtable/pwtable/internal/grid"
	"github.com/pwtable/pwtable/internal/pwgen"
	"github.com/pwtable/pwtable/internal/settings"
)

// Table is a generated password table. The grid itself is never modified;
// emoji are applied when a cell is displayed.
type Table struct {
	Grid     *grid.Grid
	Layout   grid.Layout
	Charset  pwgen.CharacterSet
	Emoji    []emoji.Placement
	Settings settings.Settings

	overlay map[[2]int]string
}

// Build validates s and generates a new table. Every call produces an
// independent table.
func Build(src entropy.Indexer, s settings.Settings) (*Table, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	cs, err := s.CharacterSet()
	if err != nil {
		return nil, err
	}
	tag, err := s.Language()
	if err != nil {
		return nil, err
	}
	layout, err := grid.NewLayout(s.Width, s.Height, tag)
	if err != nil {
		return nil, err
	}
	g, err := grid.Generate(src, s.Width, s.Height, cs)
	if err != nil {
		return nil, err
	}
	t := &Table{
		Grid:     g,
		Layout:   layout,
		Charset:  cs,
		Settings: s,
	}
	if s.Emoji {
		plan, err := emoji.Plan(src, s.Width, s.Height, s.EmojiPalette())
		if err != nil {
			return nil, err
		}
		t.Emoji = plan
		t.overlay = emoji.Overlay(plan)
	}
	return t, nil
}

// Display returns what is shown in the cell at (row, col): an overlaid emoji
// or the grid symbol.
func (t *Table) Display(row, col int) string {
	if g, ok := t.overlay[[2]int{row, col}]; ok {
		return g
	}
	return string(t.Grid.At(row, col))
}

// Class returns the stripe classes of a cell, e.g. "row-even col-odd".
// Header cells use grid.Header as index.
func (t *Table) Class(row, col int) string {
	return "row-" + grid.ParityOf(row).String() + " col-" + grid.ParityOf(col).String()
}

// Overlaid reports whether the cell at (row, col) shows an emoji.
func (t *Table) Overlaid(row, col int) bool {
	_, ok := t.overlay[[2]int{row, col}]
	return ok
}
