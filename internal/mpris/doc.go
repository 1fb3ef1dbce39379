// Package mpris reads "now playing" metadata from an MPRIS media player
// over the D-Bus session bus.
//
//	src := mpris.NewSource("spotify")
//	track, err := src.CurrentTrack(ctx)
//	if errors.Is(err, mpris.ErrPlayerUnavailable) {
//	    // player not running
//	}
//
// Each call opens its own session bus connection and closes it before
// returning. A context deadline bounds the property lookup.
package mpris
