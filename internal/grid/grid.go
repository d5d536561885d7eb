// Package grid holds password grids and the addressing scheme used to label
// their rows and columns.
//
// Columns are labelled with fixed-width base-26 letters (A, B, … or AA, AB,
// …), rows with decimal numbers. Both start at zero.
package grid

import (
	"fmt"
	"math"

	"github.com/pwtable/pwtable/internal/entropy"
	"github.com/pwtable/pwtable/internal/pwgen"
)

// Grid is a width×height row-major array of symbols. It is not modified
// after Generate returns it.
type Grid struct {
	width  int
	height int
	cells  []rune
}

// Generate fills a new width×height grid with symbols drawn uniformly from
// charset.
func Generate(src entropy.Indexer, width, height int, charset pwgen.CharacterSet) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d", entropy.ErrInvalidArgument, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d overflow", entropy.ErrInvalidArgument, width, height)
	}
	if charset.Len() == 0 {
		return nil, fmt.Errorf("%w: empty character set", entropy.ErrInvalidArgument)
	}
	cells, err := pwgen.RandomRunes(src, width*height, charset)
	if err != nil {
		return nil, err
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// At returns the symbol at (row, col).
func (g *Grid) At(row, col int) rune {
	return g.cells[row*g.width+col]
}

// Row returns the symbols of one row.
func (g *Grid) Row(row int) string {
	return string(g.cells[row*g.width : (row+1)*g.width])
}

// Rows returns all rows top to bottom.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for i := range rows {
		rows[i] = g.Row(i)
	}
	return rows
}

// String returns all symbols in row-major order.
func (g *Grid) String() string {
	return string(g.cells)
}
