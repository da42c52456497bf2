package engine

import (
	"strings"
	"unicode"

	"github.com/anatolykoptev/go-kit/strutil"
	"golang.org/x/net/html"
)

// CleanHTML strips tags and entities from upstream text (article descriptions,
// caption lines) and collapses runs of whitespace to single spaces.
func CleanHTML(s string) string {
	if s == "" {
		return ""
	}
	var sb strings.Builder
	tok := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.Write(tok.Text())
		}
	}
	return CollapseSpaces(sb.String())
}

// CollapseSpaces reduces all whitespace runs to single spaces and trims ends.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8.
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// TitleCase uppercases the first letter of each space-separated word.
// Used for the resolver's fallback candidate term ("red sox" → "Red Sox").
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
