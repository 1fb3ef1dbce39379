// Package config provides configuration management for spotify-status.
//
// This package handles:
//   - Loading settings from a TOML file (~/.spotify-status by default)
//   - Default configuration values
//   - Field-level merging of user settings over the defaults
//
// # Default Settings
//
// Use DefaultSettings() to get the built-in values:
//
//	settings := config.DefaultSettings()
//	// Spotify glyph, white text, 45 characters, feat removal off
//
// # Loading from File
//
//	settings, err := config.Load("/home/me/.spotify-status")
//	if err != nil {
//	    // *config.Error describes the bad file or field
//	}
//
// A missing file is not an error: Load returns DefaultSettings().
// Every key is optional and falls back to its default on its own:
//
//	icon        = "&#xf1bc;"
//	color       = "#1db954"
//	max_length  = 30
//	remove_feat = true
//	feat_regex  = '\(feat\. [^)]*\)'
package config
