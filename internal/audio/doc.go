// Package audio reads track metadata from local audio files.
//
// # ID3 Tags
//
// Use a TagSource to read the title and artists from an MP3 file's ID3v2
// tag instead of asking a running player:
//
//	src := audio.NewTagSource("/music/01 Let It Happen.mp3")
//	track, err := src.CurrentTrack(ctx)
//
// This is handy for trying out a config without a media player.
// Multiple artists stored as NUL-separated values (ID3v2.4) are split
// into separate entries.
package audio
