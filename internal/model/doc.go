// Package model defines the core data structures used throughout
// spotify-status.
//
// # Track
//
// Track is the "now playing" metadata returned by a metadata source:
//
//	track := &model.Track{Title: "1x1", Artists: []string{"Bring Me The Horizon", "Nova Twins"}}
//	if err := track.Validate(); err != nil {
//	    // no title or no artist: nothing is displayed
//	}
//	fmt.Println(track.DisplayText(track.Title)) // "1x1 (by Bring Me The Horizon)"
package model
