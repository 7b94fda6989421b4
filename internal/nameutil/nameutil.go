package nameutil

import (
	"strings"
	"unicode"
)

// Generational suffixes skipped when picking the surname token of a key.
var nameSuffixes = map[string]bool{
	"jr":  true,
	"sr":  true,
	"ii":  true,
	"iii": true,
	"iv":  true,
	"v":   true,
}

// Normalize lowercases text, collapses every run of characters outside
// [a-z0-9] to a single space, and trims the result. Two names that differ
// only in case or punctuation normalize to the same string.
func Normalize(text string) string {
	return collapse(text, ' ')
}

// NameKey reduces a free-text name to a normalized "first last" matching
// key. The first letter-token is the given name; the surname is the last
// token that is not a generational suffix, scanning from the end. Names
// with fewer than two letter-tokens have no key.
func NameKey(name string) (string, bool) {
	tokens := strings.FieldsFunc(name, func(r rune) bool {
		return !isASCIILetter(r)
	})
	if len(tokens) < 2 {
		return "", false
	}

	first := strings.ToLower(tokens[0])
	last := ""
	for i := len(tokens) - 1; i >= 1; i-- {
		lower := strings.ToLower(tokens[i])
		if nameSuffixes[lower] {
			continue
		}
		last = lower
		break
	}
	if last == "" {
		last = strings.ToLower(tokens[len(tokens)-1])
	}
	return first + " " + last, true
}

// Slugify derives a path-safe page name from a display name: lowercase,
// non-alphanumeric runs become single hyphens, outer hyphens trimmed. The
// bare record ID is always appended so two people sharing a display name
// still get distinct slugs; it is also the fallback when the name reduces
// to nothing.
func Slugify(name, id string) string {
	bare := strings.Trim(id, "@")
	base := collapse(name, '-')
	if base == "" {
		base = bare
	}
	return base + "-" + bare
}

// collapse lowercases text and replaces every run of characters outside
// [a-z0-9] with a single separator, trimming leading separators.
func collapse(text string, sep byte) string {
	var b strings.Builder
	pending := false
	for _, r := range text {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte(sep)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
