// Package shuffle permutes sequences uniformly at random.
package shuffle

import (
	"fmt"

	"github.com/pwtable/pwtable/internal/entropy"
)

var errEmpty = fmt.Errorf("%w: cannot fill laps from an empty sequence", entropy.ErrInvalidArgument)

// Shuffle permutes s in place using the Fisher–Yates algorithm and returns
// it. Sequences shorter than two elements are returned without drawing.
func Shuffle[T any](src entropy.Indexer, s []T) ([]T, error) {
	for i := len(s) - 1; i > 0; i-- {
		j, err := src.Index(i + 1)
		if err != nil {
			return s, err
		}
		s[i], s[j] = s[j], s[i]
	}
	return s, nil
}

// Laps returns the first n elements of repeated, independently shuffled
// copies of items. Each element occurs once per full lap. items is not
// modified.
func Laps[T any](src entropy.Indexer, items []T, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if len(items) == 0 {
		return nil, errEmpty
	}
	out := make([]T, 0, n+len(items))
	for len(out) < n {
		lap, err := Shuffle(src, append([]T(nil), items...))
		if err != nil {
			return nil, err
		}
		out = append(out, lap...)
	}
	return out[:n], nil
}
