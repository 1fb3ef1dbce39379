package display

import (
	"fmt"
	"html"

	"github.com/handiism/spotify-status/internal/config"
)

// Markup formats text as a Pango span for the status bar:
//
//	<span color="{color}">{icon} {text}</span>
//
// The text is truncated to s.MaxLength and then escaped. Color and icon are
// inserted verbatim so the icon may be a Pango entity.
func Markup(s *config.Settings, text string) string {
	escaped := html.EscapeString(Truncate(text, s.MaxLength))
	return fmt.Sprintf(`<span color="%s">%s %s</span>`, s.Color, s.Icon, escaped)
}
