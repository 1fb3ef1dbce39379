// Package display turns track text into the line printed for the status bar.
//
// The pipeline is:
//
//	title, err := display.RemoveFeat(track.Title, settings) // optional "(feat. X)" removal
//	line := display.Markup(settings, track.DisplayText(title))
//
// Markup truncates the text to Settings.MaxLength with a center ellipsis
// (see Truncate), escapes it and wraps it in a Pango span:
//
//	<span color="white">&#xf1bc; 1x1 (by Tame Impala)</span>
//
// Terminal renders the same text with ANSI colors for previewing a config
// in a shell.
package display
