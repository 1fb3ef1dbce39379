package model

import (
	"errors"
	"testing"
)

func TestTrack_Validate(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		want  error
	}{
		{"valid", Track{Title: "Song", Artists: []string{"A"}}, nil},
		{"multiple artists", Track{Title: "Song", Artists: []string{"A", "B"}}, nil},
		{"no title", Track{Artists: []string{"A"}}, ErrNoTitle},
		{"nil artists", Track{Title: "Song"}, ErrNoArtist},
		{"empty artists", Track{Title: "Song", Artists: []string{}}, ErrNoArtist},
		{"blank primary artist", Track{Title: "Song", Artists: []string{""}}, ErrNoArtist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.Validate(); !errors.Is(got, tt.want) {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrack_DisplayText(t *testing.T) {
	tests := []struct {
		title   string
		artists []string
		want    string
	}{
		{"1x1", []string{"Tame Impala"}, "1x1 (by Tame Impala)"},
		{"Song Title (feat. Someone)", []string{"ArtistA"}, "Song Title (feat. Someone) (by ArtistA)"},
		{"Duet", []string{"First", "Second"}, "Duet (by First)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			track := &Track{Title: tt.title, Artists: tt.artists}
			if got := track.DisplayText(tt.title); got != tt.want {
				t.Errorf("DisplayText(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestTrack_DisplayTextUsesGivenTitle(t *testing.T) {
	track := &Track{Title: "1x1 (feat. Nova Twins)", Artists: []string{"Bring Me The Horizon"}}

	got := track.DisplayText("1x1")
	want := "1x1 (by Bring Me The Horizon)"
	if got != want {
		t.Errorf("DisplayText() = %q, want %q", got, want)
	}
}
