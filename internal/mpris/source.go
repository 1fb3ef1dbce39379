package mpris

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
	"github.com/handiism/spotify-status/internal/model"
)

// MPRIS names.
const (
	BusNamePrefix   = "org.mpris.MediaPlayer2."
	ObjectPath      = "/org/mpris/MediaPlayer2"
	PlayerInterface = "org.mpris.MediaPlayer2.Player"
	MetadataProp    = "Metadata"

	TitleKey  = "xesam:title"
	ArtistKey = "xesam:artist"

	// DefaultPlayer is the MPRIS player name queried when none is given.
	DefaultPlayer = "spotify"
)

const (
	propertiesGet     = "org.freedesktop.DBus.Properties.Get"
	errServiceUnknown = "org.freedesktop.DBus.Error.ServiceUnknown"
	errNameHasNoOwner = "org.freedesktop.DBus.Error.NameHasNoOwner"
)

var (
	// ErrPlayerUnavailable is returned when the player is not on the bus.
	ErrPlayerUnavailable = errors.New("media player is not running")

	// ErrMissingProperty is returned when a metadata key is absent.
	ErrMissingProperty = errors.New("metadata property missing")

	// ErrUnexpectedType is returned when a metadata value has the wrong shape.
	ErrUnexpectedType = errors.New("metadata property has unexpected type")
)

// Source reads the current track from one MPRIS player.
type Source struct {
	player string
	dial   func(ctx context.Context) (*dbus.Conn, error)
}

// NewSource creates a Source for the player registered as
// org.mpris.MediaPlayer2.<player>. An empty player means DefaultPlayer.
func NewSource(player string) *Source {
	if player == "" {
		player = DefaultPlayer
	}
	return &Source{
		player: player,
		dial: func(ctx context.Context) (*dbus.Conn, error) {
			return dbus.ConnectSessionBus(dbus.WithContext(ctx))
		},
	}
}

// BusName returns the D-Bus name queried by s.
func (s *Source) BusName() string {
	return BusNamePrefix + s.player
}

// CurrentTrack fetches the player's Metadata property and parses it.
// ctx bounds both the bus connection and the property lookup.
func (s *Source) CurrentTrack(ctx context.Context) (*model.Track, error) {
	conn, err := s.dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect to session bus: %w", err)
	}
	defer conn.Close()

	slog.Debug("querying mpris metadata", "bus", s.BusName())

	var prop dbus.Variant
	obj := conn.Object(s.BusName(), ObjectPath)
	call := obj.CallWithContext(ctx, propertiesGet, 0, PlayerInterface, MetadataProp)
	if call.Err != nil {
		return nil, s.wrapCallError(call.Err)
	}
	if err := call.Store(&prop); err != nil {
		return nil, fmt.Errorf("get %s from %s: %w", MetadataProp, s.BusName(), err)
	}

	metadata, ok := prop.Value().(map[string]dbus.Variant)
	if !ok {
		return nil, fmt.Errorf("%s is %s: %w", MetadataProp, prop.Signature(), ErrUnexpectedType)
	}

	return ParseMetadata(metadata)
}

func (s *Source) wrapCallError(err error) error {
	var derr dbus.Error
	if errors.As(err, &derr) {
		switch derr.Name {
		case errServiceUnknown, errNameHasNoOwner:
			return fmt.Errorf("%s: %w", s.BusName(), ErrPlayerUnavailable)
		}
	}
	return fmt.Errorf("get %s.%s from %s: %w", PlayerInterface, MetadataProp, s.BusName(), err)
}

// ParseMetadata extracts the title and artists from an MPRIS metadata map.
//
// xesam:title must be a string and xesam:artist a list of strings. A
// single string artist is accepted as a one-element list.
func ParseMetadata(metadata map[string]dbus.Variant) (*model.Track, error) {
	titleVar, ok := metadata[TitleKey]
	if !ok {
		return nil, fmt.Errorf("%s: %w", TitleKey, ErrMissingProperty)
	}
	title, ok := titleVar.Value().(string)
	if !ok {
		return nil, fmt.Errorf("%s is %s: %w", TitleKey, titleVar.Signature(), ErrUnexpectedType)
	}

	artistVar, ok := metadata[ArtistKey]
	if !ok {
		return nil, fmt.Errorf("%s: %w", ArtistKey, ErrMissingProperty)
	}

	var artists []string
	switch v := artistVar.Value().(type) {
	case []string:
		artists = v
	case string:
		artists = []string{v}
	default:
		return nil, fmt.Errorf("%s is %s: %w", ArtistKey, artistVar.Signature(), ErrUnexpectedType)
	}

	if len(artists) == 0 {
		return nil, fmt.Errorf("%s is empty: %w", ArtistKey, ErrMissingProperty)
	}

	return &model.Track{Title: title, Artists: artists}, nil
}
