package display

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Ellipsis marks the elided middle of a truncated string.
const Ellipsis = "..."

// Truncate shortens s to maxLength characters by replacing the middle with
// Ellipsis, keeping both ends legible.
//
// Characters are grapheme clusters, so multi-byte runes and combining
// sequences are never split. Strings that already fit are returned as is.
// When diff is odd the extra character comes off the end half, so the
// result is always exactly maxLength characters long.
//
// Budgets below len(Ellipsis) leave no room for the marker; the string is
// cut to its first maxLength characters instead.
//
// Example:
//
//	Truncate("abcdefghijklmnopqrstuvwxyz", 10) // Returns "abcd...xyz"
func Truncate(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}

	clusters := graphemes(s)
	n := len(clusters)
	if n <= maxLength {
		return s
	}

	if maxLength < len(Ellipsis) {
		if maxLength <= 0 {
			return ""
		}
		return strings.Join(clusters[:maxLength], "")
	}

	diff := n - maxLength + len(Ellipsis)
	mid := n / 2
	pre := mid - diff/2
	post := mid + diff/2 + diff%2

	var b strings.Builder
	b.Grow(len(s))
	for _, c := range clusters[:pre] {
		b.WriteString(c)
	}
	b.WriteString(Ellipsis)
	for _, c := range clusters[post:] {
		b.WriteString(c)
	}
	return b.String()
}

// Length returns the number of characters in s as Truncate counts them.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

func graphemes(s string) []string {
	clusters := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}
