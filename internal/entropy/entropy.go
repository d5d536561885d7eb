// Package entropy draws unbiased integers from a cryptographically secure
// random source.
//
// Every higher-level random operation (strings, shuffles, emoji placement) is
// built on Source.Index, which uses rejection sampling so that each of the
// bound outcomes is equally likely even when bound does not divide 2^32.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	pool "github.com/libp2p/go-buffer-pool"
)

var (
	// ErrInvalidArgument is returned for bounds, dimensions or sets that
	// cannot be sampled from. It is always returned before any entropy is
	// read.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEntropyUnavailable is returned when the secure random source fails.
	ErrEntropyUnavailable = errors.New("entropy unavailable")
)

// DefaultChunk is the number of 32-bit values fetched per read.
const DefaultChunk = 2

// span is 2^32, the number of distinct values of one draw.
const span uint64 = 1 << 32

// Indexer draws uniform indices in [0, bound).
type Indexer interface {
	Index(bound int) (int, error)
}

// Source hands out uniformly distributed 32-bit values read from an
// underlying secure reader. A Source is not safe for concurrent use.
type Source struct {
	r     io.Reader
	buf   []byte
	off   int
	draws uint64
}

// New returns a Source reading from crypto/rand.
func New() *Source {
	return NewReader(rand.Reader, DefaultChunk)
}

// NewReader returns a Source reading chunk values at a time from r.
func NewReader(r io.Reader, chunk int) *Source {
	if chunk < 1 {
		chunk = 1
	}
	buf := pool.Get(4 * chunk)
	return &Source{
		r:   r,
		buf: buf,
		off: len(buf),
	}
}

// Close releases the chunk buffer. Draws after Close fail.
func (s *Source) Close() error {
	if s.buf != nil {
		pool.Put(s.buf)
		s.buf = nil
	}
	return nil
}

// Draws reports how many 32-bit values have been consumed, rejected ones
// included.
func (s *Source) Draws() uint64 {
	return s.draws
}

// Uint32 returns a value drawn uniformly from [0, 2^32).
func (s *Source) Uint32() (uint32, error) {
	if s.buf == nil {
		return 0, fmt.Errorf("%w: source closed", ErrEntropyUnavailable)
	}
	if s.off >= len(s.buf) {
		if _, err := io.ReadFull(s.r, s.buf); err != nil {
			return 0, fmt.Errorf("%w: reading random bytes: %v", ErrEntropyUnavailable, err)
		}
		s.off = 0
	}
	v := binary.LittleEndian.Uint32(s.buf[s.off:])
	s.off += 4
	s.draws++
	return v, nil
}

// limit is the largest multiple of bound not exceeding 2^32. Draws at or
// above it are rejected.
func limit(bound uint64) uint64 {
	return span / bound * bound
}

// Index returns an integer drawn uniformly from [0, bound). bound must be in
// [1, 2^32].
func (s *Source) Index(bound int) (int, error) {
	if bound <= 0 || uint64(bound) > span {
		return 0, fmt.Errorf("%w: bound %d outside [1, 2^32]", ErrInvalidArgument, bound)
	}
	b := uint64(bound)
	lim := limit(b)
	for {
		v, err := s.Uint32()
		if err != nil {
			return 0, err
		}
		if uint64(v) < lim {
			return int(uint64(v) % b), nil
		}
	}
}
