package i18n

import (
	"fmt"
	"strings"
)

// Interpolate replaces {{name}} and %{name} tokens in message with values.
// Tokens without a value render as the default missing placeholder.
//
// Substitution is a single left-to-right pass: inserted values are written
// verbatim and never rescanned, so "$1", "$&" or a value that itself looks
// like a token come out literally.
//
// Example:
//
//	i18n.Interpolate("Hello, {{name}}! You owe %{amount}.", i18n.M{"name": "Ann", "amount": "$5"})
//	// "Hello, Ann! You owe $5."
func Interpolate(message string, values M) string {
	return interpolate(message, values, DefaultMissingPlaceholder, nil)
}

func (i *I18n) interpolate(message string, values M, esc func(string) string) string {
	return interpolate(message, values, i.missingPlaceholder, esc)
}

func interpolate(message string, values M, missing MissingPlaceholderFunc, esc func(string) string) string {
	if !strings.Contains(message, "{{") && !strings.Contains(message, "%{") {
		return message
	}

	var b strings.Builder
	b.Grow(len(message))

	for pos := 0; pos < len(message); {
		closer, ok := tokenOpen(message[pos:])
		if !ok {
			b.WriteByte(message[pos])
			pos++
			continue
		}

		bodyStart := pos + 2
		end := strings.Index(message[bodyStart:], closer)
		if end < 0 {
			b.WriteString(message[pos:])
			break
		}

		name := strings.TrimSpace(message[bodyStart : bodyStart+end])
		if name == "" || strings.ContainsAny(name, "{}") {
			// Not a token: emit the opener and rescan from the next byte.
			b.WriteByte(message[pos])
			pos++
			continue
		}

		next := bodyStart + end + len(closer)
		token := message[pos:next]
		pos = next

		value, found := values[name]
		if !found || value == nil {
			placeholder := missing(token, name)
			if esc != nil {
				placeholder = esc(placeholder)
			}
			b.WriteString(placeholder)
			continue
		}

		s := stringify(value)
		if esc != nil {
			s = esc(s)
		}
		b.WriteString(s)
	}

	return b.String()
}

// tokenOpen reports whether s starts with a token opener and returns the
// matching closer.
func tokenOpen(s string) (string, bool) {
	switch {
	case strings.HasPrefix(s, "{{"):
		return "}}", true
	case strings.HasPrefix(s, "%{"):
		return "}", true
	}
	return "", false
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case error:
		return s.Error()
	default:
		return fmt.Sprint(v)
	}
}
