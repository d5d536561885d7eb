// Package settings resolves the parameters of a password table from
// defaults, a YAML config file, a query string and command line flags.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/pwtable/pwtable/internal/emoji"
	"github.com/pwtable/pwtable/internal/entropy"
	"github.com/pwtable/pwtable/internal/pwgen"
)

// Query keys shared with the web front end.
const (
	KeyHeight  = "size_height"
	KeyWidth   = "size_width"
	KeyCharset = "global_charset"
)

// MaxDimension bounds width and height.
const MaxDimension = 1000

// Settings describe one table. They are passed by value; nothing in the
// generation path modifies them.
type Settings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Preset names the base alphabet, see pwgen.Presets.
	Preset string `yaml:"preset"`
	// CharsetSuffix is appended to the base alphabet.
	CharsetSuffix string `yaml:"charset"`

	Emoji   bool     `yaml:"emoji"`
	Palette []string `yaml:"palette,omitempty"`

	// Lang is the BCP 47 tag used to format row labels.
	Lang string `yaml:"lang"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Width:         16,
		Height:        10,
		Preset:        "alphanumeric",
		CharsetSuffix: "",
		Emoji:         true,
		Lang:          "en",
	}
}

// Load reads a YAML config file on top of base. Keys missing from the file
// keep their value from base.
func Load(path string, base Settings) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	s := base
	s.Palette = append([]string(nil), base.Palette...)
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// ApplyQuery overrides base with the values in a URL query string. Size keys
// that are not positive integers fall back to base. The charset key is used
// verbatim when present.
func ApplyQuery(base Settings, rawQuery string) (Settings, error) {
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return base, fmt.Errorf("%w: parsing query %q: %v", entropy.ErrInvalidArgument, rawQuery, err)
	}
	s := base
	s.Width = positiveOr(q.Get(KeyWidth), base.Width)
	s.Height = positiveOr(q.Get(KeyHeight), base.Height)
	if q.Has(KeyCharset) {
		s.CharsetSuffix = q.Get(KeyCharset)
	}
	return s, nil
}

func positiveOr(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// Encode serializes the query-string part of s.
func (s Settings) Encode() string {
	return url.Values{
		KeyHeight:  {strconv.Itoa(s.Height)},
		KeyWidth:   {strconv.Itoa(s.Width)},
		KeyCharset: {s.CharsetSuffix},
	}.Encode()
}

// Validate reports the first problem that would make generation fail.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Width > MaxDimension || s.Height <= 0 || s.Height > MaxDimension {
		return fmt.Errorf("%w: table size %dx%d, want 1..%d on each side", entropy.ErrInvalidArgument, s.Width, s.Height, MaxDimension)
	}
	if _, err := s.CharacterSet(); err != nil {
		return err
	}
	if s.Emoji && len(s.EmojiPalette()) == 0 {
		return fmt.Errorf("%w: empty emoji palette", entropy.ErrInvalidArgument)
	}
	if _, err := s.Language(); err != nil {
		return err
	}
	return nil
}

// CharacterSet builds the alphabet: the preset followed by the suffix.
func (s Settings) CharacterSet() (pwgen.CharacterSet, error) {
	base, ok := pwgen.Presets[s.Preset]
	if !ok {
		return pwgen.CharacterSet{}, fmt.Errorf("%w: unknown charset preset %q", entropy.ErrInvalidArgument, s.Preset)
	}
	return pwgen.WithSuffix(base, s.CharsetSuffix)
}

// EmojiPalette returns the configured palette or the default one.
func (s Settings) EmojiPalette() []string {
	if s.Palette == nil {
		return emoji.DefaultPalette
	}
	return s.Palette
}

// Language parses Lang.
func (s Settings) Language() (language.Tag, error) {
	tag, err := language.Parse(s.Lang)
	if err != nil {
		return language.Und, fmt.Errorf("%w: language %q: %v", entropy.ErrInvalidArgument, s.Lang, err)
	}
	return tag, nil
}
