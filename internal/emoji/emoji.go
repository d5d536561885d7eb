// Package emoji plans where emoji are overlaid onto a password table.
package emoji

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/pwtable/pwtable/internal/entropy"
	"github.com/pwtable/pwtable/internal/shuffle"
)

// DefaultPalette is used when no palette is configured.
var DefaultPalette = []string{
	"🍎", "🍌", "🍒", "🍇", "🍉", "🍋", "🥝", "🍍",
	"🐱", "🐶", "🐸", "🐼", "🦊", "🐙", "🐝", "🦉",
	"🌟", "🌙", "🌻", "🌈", "🍄", "🔥", "💧", "🍀",
	"🚗", "🚀", "🐢", "🎈", "🎲", "🔑", "🔔", "🎵",
}

// Placement puts Glyph into the cell at (Row, Col).
type Placement struct {
	Row   int
	Col   int
	Glyph string
}

// Count is the number of emoji placed on a width×height table: one per cell
// of the long side, plus one more lap for every full 12 cells of the short
// side.
func Count(width, height int) int {
	return max(width, height) * (1 + min(width, height)/12)
}

// Plan returns Count(width, height) placements. Rows, columns and glyphs are
// each taken from independently reshuffled laps, so every value occurs once
// per lap. Placements are not deduplicated; two of them may target the same
// cell, in which case the later one wins when applied.
func Plan(src entropy.Indexer, width, height int, palette []string) ([]Placement, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: table dimensions %dx%d", entropy.ErrInvalidArgument, width, height)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("%w: empty emoji palette", entropy.ErrInvalidArgument)
	}
	n := Count(width, height)

	cols, err := shuffle.Laps(src, lo.Range(width), n)
	if err != nil {
		return nil, err
	}
	rows, err := shuffle.Laps(src, lo.Range(height), n)
	if err != nil {
		return nil, err
	}
	glyphs, err := shuffle.Laps(src, palette, n)
	if err != nil {
		return nil, err
	}

	plan := make([]Placement, n)
	for i := range plan {
		plan[i] = Placement{
			Row:   rows[i],
			Col:   cols[i],
			Glyph: glyphs[i],
		}
	}
	return plan, nil
}

// Overlay maps cell coordinates to the glyph shown there after applying plan
// in order.
func Overlay(plan []Placement) map[[2]int]string {
	m := make(map[[2]int]string, len(plan))
	for _, p := range plan {
		m[[2]int{p.Row, p.Col}] = p.Glyph
	}
	return m
}
