package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMP3(t *testing.T, dir, title, artist string) string {
	t.Helper()

	path := filepath.Join(dir, "track.mp3")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	tag := id3v2.NewEmptyTag()
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(title)
	tag.SetArtist(artist)
	_, err = tag.WriteTo(f)
	require.NoError(t, err)

	return path
}

func TestRun_FromFile(t *testing.T) {
	dir := t.TempDir()
	mp3 := writeMP3(t, dir, "1x1 (feat. Nova Twins)", "Tame Impala")
	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("remove_feat = true\ncolor = \"#1db954\"\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", cfg, "--file", mp3}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, `<span color="#1db954">&#xf1bc; 1x1 (by Tame Impala)</span>`, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_MissingConfigUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	mp3 := writeMP3(t, dir, "Song Title (feat. Someone)", "ArtistA")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-c", filepath.Join(dir, "absent"), "-f", mp3}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, `<span color="white">&#xf1bc; Song Title (feat. Someone) (by ArtistA)</span>`, stdout.String())
}

func TestRun_TermFormat(t *testing.T) {
	dir := t.TempDir()
	mp3 := writeMP3(t, dir, "Song", "A")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-c", filepath.Join(dir, "absent"), "-f", mp3, "--format", "term"}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Song (by A)")
	assert.NotContains(t, stdout.String(), "<span")
}

func TestRun_ConfigErrorPrintsNothing(t *testing.T) {
	dir := t.TempDir()
	mp3 := writeMP3(t, dir, "Song", "A")
	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("max_length = "), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-c", cfg, "-f", mp3}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Error: config "+cfg)
}

func TestRun_MissingTrackFile(t *testing.T) {
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := run([]string{"-c", filepath.Join(dir, "absent"), "-f", filepath.Join(dir, "nope.mp3")}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Error: get current track")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--nope"}},
		{"unknown format", []string{"--format", "html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, 2, run(tt.args, &stdout, &stderr))
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"--help"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage: spotify-status")
}
