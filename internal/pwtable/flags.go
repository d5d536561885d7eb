package pwtable

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/pwtable/pwtable/internal/pwgen"
	"github.com/pwtable/pwtable/internal/settings"
)

// settingsFlags are the flags shared by every command that works on a table
// description.
type settingsFlags struct {
	config  string
	query   string
	width   int
	height  int
	charset string
	preset  string
	emoji   bool
	palette []string
	lang    string
}

func (f *settingsFlags) register(flags *pflag.FlagSet) {
	def := settings.Default()
	flags.StringVarP(&f.config, "config", "c", os.Getenv("PWTABLE_CONFIG"), "YAML file with table settings (default $PWTABLE_CONFIG)")
	flags.StringVarP(&f.query, "query", "q", "", "URL query string with size_width, size_height and global_charset, as written by --print-query")
	flags.IntVarP(&f.width, "width", "W", def.Width, "number of columns")
	flags.IntVarP(&f.height, "height", "H", def.Height, "number of rows")
	flags.StringVar(&f.charset, "charset", def.CharsetSuffix, "extra characters appended to the preset alphabet")
	flags.StringVar(&f.preset, "preset", def.Preset, "base alphabet, one of "+strings.Join(presetNames(), ", "))
	flags.BoolVar(&f.emoji, "emoji", def.Emoji, "overlay emoji onto the table")
	flags.StringSliceVar(&f.palette, "palette", nil, "emoji to overlay (default: built-in palette)")
	flags.StringVar(&f.lang, "lang", def.Lang, "BCP 47 language tag used to format row numbers")
}

func presetNames() []string {
	names := lo.Keys(pwgen.Presets)
	slices.Sort(names)
	return names
}

// resolve applies, in increasing precedence: defaults, config file, query
// string, explicitly set flags.
func (f *settingsFlags) resolve(flags *pflag.FlagSet, log *slog.Logger) (settings.Settings, error) {
	s := settings.Default()
	if f.config != "" {
		loaded, err := settings.Load(f.config, s)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !flags.Changed("config"):
			log.Debug("config file from $PWTABLE_CONFIG does not exist, ignoring", "path", f.config)
		case err != nil:
			return s, fmt.Errorf("loading config: %w", err)
		default:
			log.Debug("loaded config file", "path", f.config)
			s = loaded
		}
	}
	if f.query != "" {
		q, err := settings.ApplyQuery(s, strings.TrimPrefix(f.query, "?"))
		if err != nil {
			return s, err
		}
		s = q
	}
	if flags.Changed("width") {
		s.Width = f.width
	}
	if flags.Changed("height") {
		s.Height = f.height
	}
	if flags.Changed("charset") {
		s.CharsetSuffix = f.charset
	}
	if flags.Changed("preset") {
		s.Preset = f.preset
	}
	if flags.Changed("emoji") {
		s.Emoji = f.emoji
	}
	if flags.Changed("palette") {
		s.Palette = f.palette
	}
	if flags.Changed("lang") {
		s.Lang = f.lang
	}
	return s, s.Validate()
}
