package display

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/spotify-status/internal/config"
)

// ansiColors maps the basic Pango color names to ANSI color codes.
var ansiColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"purple":  "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
}

// Terminal formats text for a terminal, colored with s.Color.
//
// Entities in the icon are decoded so the glyph itself is printed.
func Terminal(s *config.Settings, text string) string {
	style := lipgloss.NewStyle().Foreground(terminalColor(s.Color))
	icon := html.UnescapeString(s.Icon)
	return style.Render(icon + " " + Truncate(text, s.MaxLength))
}

func terminalColor(name string) lipgloss.Color {
	if code, ok := ansiColors[strings.ToLower(name)]; ok {
		return lipgloss.Color(code)
	}
	return lipgloss.Color(name)
}
