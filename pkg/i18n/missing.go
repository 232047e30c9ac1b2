package i18n

import (
	"strings"
	"unicode"
)

const missingTranslationFormat = "[missing %q translation]"

// MissingBehavior selects how an unresolved key is rendered.
type MissingBehavior int

const (
	// MissingMessage renders `[missing "en.some.key" translation]`.
	MissingMessage MissingBehavior = iota
	// MissingGuess renders a humanized last key segment
	// ("user_name" -> "user name").
	MissingGuess
)

// MissingPlaceholderFunc renders a token that has no value. token is the
// literal token as written ("{{name}}" or "%{name}").
type MissingPlaceholderFunc func(token, name string) string

// DefaultMissingPlaceholder renders "[missing {{name}} value]".
func DefaultMissingPlaceholder(token, _ string) string {
	return "[missing " + token + " value]"
}

// humanize turns a key segment into words: underscores become spaces and
// camelCase boundaries are split and lowercased.
func humanize(segment string) string {
	var b strings.Builder
	b.Grow(len(segment) + 4)

	prevLower := false
	for _, r := range segment {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			prevLower = false
		case unicode.IsUpper(r) && prevLower:
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r)
		}
	}
	return b.String()
}
