package slug

import (
	"strings"
	"unicode"
)

// Make creates a URL-safe slug from the input string. Letters and digits are
// lowercased and pass through unchanged; every run of other characters is
// collapsed into a single hyphen. Leading and trailing hyphens are trimmed,
// so inputs without any alphanumeric content produce an empty string.
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastWasHyphen := true // true to suppress a leading hyphen
	for _, r := range s {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasHyphen = false
			continue
		}
		if !lastWasHyphen {
			b.WriteByte('-')
			lastWasHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
