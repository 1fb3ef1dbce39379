package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the config file inside the user's home directory.
const FileName = ".spotify-status"

// Built-in defaults.
const (
	DefaultIcon       = "&#xf1bc;"
	DefaultColor      = "white"
	DefaultMaxLength  = 45
	DefaultRemoveFeat = false
	DefaultFeatRegex  = `\(feat\. [\w* ]*\)`
)

// ErrNoHome is returned when the current user's home directory cannot be found.
var ErrNoHome = errors.New("could not find the home directory of the current user")

// Settings holds all configuration options.
type Settings struct {
	// Icon is the glyph printed before the track text. It is inserted
	// into the markup verbatim, so Pango entities such as "&#xf1bc;" work.
	Icon string

	// Color is the Pango color name or hex value for the span.
	Color string

	// MaxLength is the character budget for the displayed text.
	MaxLength int

	// RemoveFeat enables stripping of "(feat. ...)" from titles.
	RemoveFeat bool

	// FeatRegex is the pattern removed from titles when RemoveFeat is set.
	FeatRegex string
}

// fileSettings mirrors the config file. Nil fields were absent.
type fileSettings struct {
	Icon       *string `toml:"icon"`
	Color      *string `toml:"color"`
	MaxLength  *int    `toml:"max_length"`
	RemoveFeat *bool   `toml:"remove_feat"`
	FeatRegex  *string `toml:"feat_regex"`
}

// Error describes a configuration file that could not be used.
type Error struct {
	// Path is the config file, empty when the value did not come from a file.
	Path string
	// Field is the offending key, empty for file-level failures.
	Field string
	Err   error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Field != "":
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Field, e.Err)
	case e.Path != "":
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	case e.Field != "":
		return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("config: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Icon:       DefaultIcon,
		Color:      DefaultColor,
		MaxLength:  DefaultMaxLength,
		RemoveFeat: DefaultRemoveFeat,
		FeatRegex:  DefaultFeatRegex,
	}
}

// DefaultPath returns ~/.spotify-status.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHome, err)
	}
	if home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(home, FileName), nil
}

// Load reads settings from a TOML file.
//
// A file that does not exist yields DefaultSettings(). Any other read
// failure, a parse failure or an invalid value returns an *Error and no
// settings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("config file not found, using defaults", "path", path)
			return DefaultSettings(), nil
		}
		return nil, &Error{Path: path, Err: fmt.Errorf("unable to open the config file: %w", err)}
	}

	settings, err := Parse(string(data))
	if err != nil {
		var cerr *Error
		if errors.As(err, &cerr) {
			cerr.Path = path
			return nil, cerr
		}
		return nil, &Error{Path: path, Err: err}
	}

	return settings, nil
}

// Parse decodes TOML config contents and merges them over the defaults.
func Parse(contents string) (*Settings, error) {
	var fs fileSettings
	md, err := toml.Decode(contents, &fs)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to parse the configuration file: %w", err)}
	}

	for _, key := range md.Undecoded() {
		slog.Debug("ignoring unknown config key", "key", key.String())
	}

	settings := DefaultSettings()
	settings.merge(&fs)

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// merge copies every field present in fs over s.
func (s *Settings) merge(fs *fileSettings) {
	if fs.Icon != nil {
		s.Icon = *fs.Icon
	}
	if fs.Color != nil {
		s.Color = *fs.Color
	}
	if fs.MaxLength != nil {
		s.MaxLength = *fs.MaxLength
	}
	if fs.RemoveFeat != nil {
		s.RemoveFeat = *fs.RemoveFeat
	}
	if fs.FeatRegex != nil {
		s.FeatRegex = *fs.FeatRegex
	}
}

// Validate checks values the file format cannot express constraints for.
func (s *Settings) Validate() error {
	if s.MaxLength < 0 {
		return &Error{Field: "max_length", Err: fmt.Errorf("must not be negative, got %d", s.MaxLength)}
	}
	if s.RemoveFeat {
		if _, err := s.CompileFeatRegex(); err != nil {
			return err
		}
	}
	return nil
}

// CompileFeatRegex compiles FeatRegex, falling back to DefaultFeatRegex
// when it is empty.
func (s *Settings) CompileFeatRegex() (*regexp.Regexp, error) {
	pattern := s.FeatRegex
	if pattern == "" {
		pattern = DefaultFeatRegex
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &Error{Field: "feat_regex", Err: err}
	}
	return re, nil
}

// Resolver loads settings from a fixed path.
type Resolver struct {
	// Path overrides the default ~/.spotify-status location when set.
	Path string
}

// Resolve loads the settings from r.Path or the default location.
func (r *Resolver) Resolve() (*Settings, error) {
	path := r.Path
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	slog.Debug("resolving config", "path", path)
	return Load(path)
}
