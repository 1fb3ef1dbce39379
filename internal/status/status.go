package status

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/handiism/spotify-status/internal/config"
	"github.com/handiism/spotify-status/internal/display"
	"github.com/handiism/spotify-status/internal/model"
)

// DefaultTimeout bounds the metadata lookup.
const DefaultTimeout = 5 * time.Second

// ConfigSource resolves the settings for one run.
type ConfigSource interface {
	Resolve() (*config.Settings, error)
}

// TrackSource returns the track currently playing.
type TrackSource interface {
	CurrentTrack(ctx context.Context) (*model.Track, error)
}

// Formatter renders the display text using the resolved settings.
type Formatter func(s *config.Settings, text string) string

// Options configures Run.
type Options struct {
	Config ConfigSource
	Tracks TrackSource

	// Format defaults to display.Markup.
	Format Formatter

	// Output receives the formatted line, without a trailing newline.
	Output io.Writer

	// Timeout bounds Tracks.CurrentTrack. Zero means DefaultTimeout.
	Timeout time.Duration

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Line builds the status line for track without writing it.
func Line(s *config.Settings, track *model.Track, format Formatter) (string, error) {
	if err := track.Validate(); err != nil {
		return "", err
	}

	title, err := display.RemoveFeat(track.Title, s)
	if err != nil {
		return "", err
	}

	if format == nil {
		format = display.Markup
	}
	return format(s, track.DisplayText(title)), nil
}

// Run resolves the config, fetches the current track and writes the
// formatted line to opts.Output.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	settings, err := opts.Config.Resolve()
	if err != nil {
		return err
	}
	logger.Debug("config resolved",
		"color", settings.Color,
		"max_length", settings.MaxLength,
		"remove_feat", settings.RemoveFeat,
	)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	track, err := opts.Tracks.CurrentTrack(ctx)
	if err != nil {
		return fmt.Errorf("get current track: %w", err)
	}
	logger.Debug("current track", "track", track)

	line, err := Line(settings, track, opts.Format)
	if err != nil {
		return fmt.Errorf("format %s: %w", track, err)
	}

	_, err = io.WriteString(opts.Output, line)
	return err
}
