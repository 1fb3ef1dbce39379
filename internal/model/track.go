package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTitle is returned when a track has no title.
	ErrNoTitle = errors.New("track has no title")

	// ErrNoArtist is returned when a track has no artists.
	ErrNoArtist = errors.New("track has no artist")
)

// Track represents the track a player is currently playing.
//
// Track contains:
//   - Title as reported by the player, before any cleanup
//   - Artists in the order the player reports them
//
// Only the first artist is shown in the status line.
type Track struct {
	// Title is the track title.
	Title string

	// Artists lists the track artists. The first entry is the primary artist.
	Artists []string
}

// Validate reports whether the track can be displayed.
func (t *Track) Validate() error {
	if t.Title == "" {
		return ErrNoTitle
	}
	if len(t.Artists) == 0 || t.Artists[0] == "" {
		return ErrNoArtist
	}
	return nil
}

// PrimaryArtist returns the first artist, or "" if there is none.
func (t *Track) PrimaryArtist() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0]
}

// DisplayText composes the status line text from a (possibly cleaned)
// title and the primary artist.
//
// Example:
//
//	t := &Track{Title: "Song", Artists: []string{"A", "B"}}
//	t.DisplayText("Song") // Returns "Song (by A)"
func (t *Track) DisplayText(title string) string {
	return fmt.Sprintf("%s (by %s)", title, t.PrimaryArtist())
}

// String implements fmt.Stringer for log output.
func (t *Track) String() string {
	return fmt.Sprintf("%q by %v", t.Title, t.Artists)
}
