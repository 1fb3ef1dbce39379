package display

import (
	"strings"

	"github.com/handiism/spotify-status/internal/config"
)

// RemoveFeat strips every match of the configured feat pattern from title
// and trims the surrounding whitespace.
//
// The title is returned unchanged when RemoveFeat is off, whatever the
// pattern. An invalid pattern returns a *config.Error.
//
// Example:
//
//	s := config.DefaultSettings()
//	s.RemoveFeat = true
//	RemoveFeat("1x1 (feat. Nova Twins)", s) // Returns "1x1"
func RemoveFeat(title string, s *config.Settings) (string, error) {
	if !s.RemoveFeat {
		return title, nil
	}

	re, err := s.CompileFeatRegex()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(re.ReplaceAllString(title, "")), nil
}
