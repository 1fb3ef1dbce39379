package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/handiism/spotify-status/internal/model"
)

// ErrMissingTag is returned when the file has no title or artist frame.
var ErrMissingTag = errors.New("id3 tag missing")

// TagSource reads the track from the ID3v2 tag of an MP3 file.
type TagSource struct {
	path string
}

// NewTagSource creates a TagSource for the file at path.
func NewTagSource(path string) *TagSource {
	return &TagSource{path: path}
}

// CurrentTrack parses the file's title (TIT2) and artist (TPE1) frames.
//
// The context is only checked before the file is opened.
func (s *TagSource) CurrentTrack(ctx context.Context) (*model.Track, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tag, err := id3v2.Open(s.path, id3v2.Options{
		Parse:       true,
		ParseFrames: []string{"Title", "Artist"},
	})
	if err != nil {
		return nil, fmt.Errorf("read tags from %s: %w", s.path, err)
	}
	defer tag.Close()

	slog.Debug("read id3 tag", "path", s.path, "version", tag.Version())

	title := strings.TrimSpace(tag.Title())
	if title == "" {
		return nil, fmt.Errorf("%s: title: %w", s.path, ErrMissingTag)
	}

	artists := splitArtists(tag.Artist())
	if len(artists) == 0 {
		return nil, fmt.Errorf("%s: artist: %w", s.path, ErrMissingTag)
	}

	return &model.Track{Title: title, Artists: artists}, nil
}

// splitArtists splits a TPE1 value on NUL separators.
// "/" is left alone since it appears in artist names like "AC/DC".
func splitArtists(value string) []string {
	var artists []string
	for _, a := range strings.Split(value, "\x00") {
		if a = strings.TrimSpace(a); a != "" {
			artists = append(artists, a)
		}
	}
	return artists
}
