// Package pwgen generates random strings drawn uniformly from a character
// set.
package pwgen

import (
	"fmt"
	"math"
	"strings"

	"github.com/pwtable/pwtable/internal/entropy"
)

const (
	lower  = "abcdefghijklmnopqrstuvwxyz"
	upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits = "0123456789"

	// Alphanumeric is the base alphabet of a password table.
	Alphanumeric = lower + upper + digits

	// Extended is the punctuation suffix offered for stronger tables.
	Extended = "!#$%&*+-=?@^_~"

	// Human excludes I, l, 1, O, o and 0.
	Human = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Presets maps preset names accepted on the command line to their symbols.
var Presets = map[string]string{
	"alphanumeric": Alphanumeric,
	"extended":     Alphanumeric + Extended,
	"human":        Human,
}

// CharacterSet is an ordered sequence of unique symbols.
type CharacterSet struct {
	symbols []rune
}

// NewCharacterSet returns the set of runes in symbols in order of first
// occurrence. Repeated runes are dropped so that no symbol is more likely
// than another.
func NewCharacterSet(symbols string) (CharacterSet, error) {
	seen := make(map[rune]bool)
	var set []rune
	for _, r := range symbols {
		if seen[r] {
			continue
		}
		seen[r] = true
		set = append(set, r)
	}
	if len(set) == 0 {
		return CharacterSet{}, fmt.Errorf("%w: empty character set", entropy.ErrInvalidArgument)
	}
	if uint64(len(set)) > math.MaxUint32 {
		return CharacterSet{}, fmt.Errorf("%w: character set has %d symbols", entropy.ErrInvalidArgument, len(set))
	}
	return CharacterSet{symbols: set}, nil
}

// WithSuffix returns the set of base followed by suffix.
func WithSuffix(base, suffix string) (CharacterSet, error) {
	return NewCharacterSet(base + suffix)
}

// Len returns the number of symbols.
func (c CharacterSet) Len() int { return len(c.symbols) }

// At returns the i-th symbol.
func (c CharacterSet) At(i int) rune { return c.symbols[i] }

// Contains reports whether r is a member of the set.
func (c CharacterSet) Contains(r rune) bool {
	for _, s := range c.symbols {
		if s == r {
			return true
		}
	}
	return false
}

func (c CharacterSet) String() string { return string(c.symbols) }

// BitsPerSymbol is the entropy contributed by one uniformly drawn symbol.
func (c CharacterSet) BitsPerSymbol() float64 {
	if len(c.symbols) == 0 {
		return 0
	}
	return math.Log2(float64(len(c.symbols)))
}

// RandomRunes returns n symbols, each drawn independently and uniformly from
// charset.
func RandomRunes(src entropy.Indexer, n int, charset CharacterSet) ([]rune, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", entropy.ErrInvalidArgument, n)
	}
	if charset.Len() == 0 {
		return nil, fmt.Errorf("%w: empty character set", entropy.ErrInvalidArgument)
	}
	out := make([]rune, n)
	for i := range out {
		idx, err := src.Index(charset.Len())
		if err != nil {
			return nil, err
		}
		out[i] = charset.At(idx)
	}
	return out, nil
}

// RandomString is RandomRunes as a string.
func RandomString(src entropy.Indexer, n int, charset CharacterSet) (string, error) {
	rs, err := RandomRunes(src, n, charset)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, r := range rs {
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
