// Package status wires configuration, a metadata source and a formatter
// into the single line printed by spotify-status.
//
// # Basic Usage
//
//	err := status.Run(ctx, status.Options{
//	    Config: &config.Resolver{},
//	    Tracks: mpris.NewSource("spotify"),
//	    Output: os.Stdout,
//	})
//
// Run writes nothing unless every step succeeds. There are no retries; the
// status bar re-runs the tool on its own schedule.
//
// # Sources
//
// ConfigSource and TrackSource are small interfaces so tests and other
// front-ends can supply settings and tracks without a config file or a
// D-Bus session.
package status
