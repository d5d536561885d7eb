package grid

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pwtable/pwtable/internal/entropy"
)

// Parity classifies an index for alternating stripes.
type Parity int

const (
	Even Parity = iota
	Odd
)

func (p Parity) String() string {
	if p == Even {
		return "even"
	}
	return "odd"
}

// ParityOf returns the parity of i. The header index -1 is odd.
func ParityOf(i int) Parity {
	if i%2 == 0 {
		return Even
	}
	return Odd
}

// Header is the index of the synthetic header row and column.
const Header = -1

// MinDigits is the number of letters every column label of a table with the
// given width has: floor(log26(width)) + 1, and at least 1.
func MinDigits(width int) int {
	digits := 1
	for v := width; v >= 26; v /= 26 {
		digits++
	}
	return digits
}

// ColumnLabel encodes index in base 26 using 'A'..'Z', padded with leading
// 'A' to minDigits letters. At least one letter is always produced. Negative
// indices (the header column) have an empty label.
func ColumnLabel(index, minDigits int) string {
	if index < 0 {
		return ""
	}
	var buf []byte
	for v := index; v > 0 || len(buf) < minDigits || len(buf) == 0; v /= 26 {
		buf = append(buf, byte('A'+v%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Layout addresses the cells of a width×height table.
type Layout struct {
	Width  int
	Height int
	Digits int

	printer *message.Printer
}

// NewLayout returns the layout of a width×height table whose row labels are
// formatted for tag.
func NewLayout(width, height int, tag language.Tag) (Layout, error) {
	if width <= 0 || height <= 0 {
		return Layout{}, fmt.Errorf("%w: table dimensions %dx%d", entropy.ErrInvalidArgument, width, height)
	}
	return Layout{
		Width:   width,
		Height:  height,
		Digits:  MinDigits(width),
		printer: message.NewPrinter(tag),
	}, nil
}

// ColumnLabel returns the label of column col.
func (l Layout) ColumnLabel(col int) string {
	return ColumnLabel(col, l.Digits)
}

// RowLabel returns the zero-based row number in the layout's locale, or the
// empty string for the header row.
func (l Layout) RowLabel(row int) string {
	if row < 0 {
		return ""
	}
	p := l.printer
	if p == nil {
		p = message.NewPrinter(language.English)
	}
	return p.Sprintf("%d", row)
}

// ColumnLabels returns the labels of all columns in order.
func (l Layout) ColumnLabels() []string {
	labels := make([]string, l.Width)
	for i := range labels {
		labels[i] = l.ColumnLabel(i)
	}
	return labels
}

// RowLabels returns the labels of all rows in order.
func (l Layout) RowLabels() []string {
	labels := make([]string, l.Height)
	for i := range labels {
		labels[i] = l.RowLabel(i)
	}
	return labels
}
