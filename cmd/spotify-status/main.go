package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/handiism/spotify-status/internal/audio"
	"github.com/handiism/spotify-status/internal/config"
	"github.com/handiism/spotify-status/internal/display"
	"github.com/handiism/spotify-status/internal/mpris"
	"github.com/handiism/spotify-status/internal/status"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		configPath string
		player     string
		file       string
		format     string
		timeout    time.Duration
		verbose    bool
	)

	flags := pflag.NewFlagSet("spotify-status", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default ~/"+config.FileName+")")
	flags.StringVarP(&player, "player", "p", mpris.DefaultPlayer, "MPRIS player name (org.mpris.MediaPlayer2.<name>)")
	flags.StringVarP(&file, "file", "f", "", "Read the track from an MP3's ID3 tag instead of a player")
	flags.StringVar(&format, "format", "pango", "Output format: pango|term")
	flags.DurationVar(&timeout, "timeout", status.DefaultTimeout, "Metadata lookup timeout")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: spotify-status [flags]")
		fmt.Fprintln(stderr, "\nPrints the track playing in an MPRIS player as Pango markup for status bars.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var formatter status.Formatter
	switch format {
	case "pango":
		formatter = display.Markup
	case "term":
		formatter = display.Terminal
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q (want pango or term)\n", format)
		return 2
	}

	var tracks status.TrackSource = mpris.NewSource(player)
	if file != "" {
		tracks = audio.NewTagSource(file)
	}

	err := status.Run(context.Background(), status.Options{
		Config:  &config.Resolver{Path: configPath},
		Tracks:  tracks,
		Format:  formatter,
		Output:  stdout,
		Timeout: timeout,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
