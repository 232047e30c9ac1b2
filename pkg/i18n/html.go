package i18n

import (
	"bytes"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Key suffixes that mark a message as markup.
const (
	htmlSuffix     = "_html"
	markdownSuffix = "_md"
)

var (
	htmlPolicy *bluemonday.Policy
	markdown   goldmark.Markdown
	htmlOnce   sync.Once
)

func initHTML() {
	htmlOnce.Do(func() {
		htmlPolicy = bluemonday.NewPolicy()
		htmlPolicy.AllowStandardURLs()
		htmlPolicy.AllowElements(
			"p", "br", "span",
			"strong", "b", "em", "i", "u", "small", "sup", "sub",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		htmlPolicy.AllowAttrs("href", "title").OnElements("a")
		htmlPolicy.RequireNoFollowOnLinks(true)

		markdown = goldmark.New()
	})
}

// TranslateHTML resolves key like Translate and returns markup that is
// safe to embed in a page:
//
//   - keys ending in "_html" keep their markup after sanitizing;
//   - keys ending in "_md" are rendered from Markdown, then sanitized;
//   - any other key is HTML-escaped.
//
// Interpolated values are always escaped, so user input cannot inject tags.
func (i *I18n) TranslateHTML(locale, key string, opts ...CallOption) string {
	o := newCallOptions(opts...)
	fullKey := o.path(key)

	switch {
	case strings.HasSuffix(fullKey, htmlSuffix):
		initHTML()
		return htmlPolicy.Sanitize(i.translate(locale, fullKey, o, html.EscapeString))
	case strings.HasSuffix(fullKey, markdownSuffix):
		initHTML()
		src := i.translate(locale, fullKey, o, escapeMarkdown)
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(src), &buf); err != nil {
			return html.EscapeString(src)
		}
		return strings.TrimSpace(htmlPolicy.Sanitize(buf.String()))
	default:
		return html.EscapeString(i.translate(locale, fullKey, o, nil))
	}
}

// escapeMarkdown neutralizes raw HTML and Markdown control characters in an
// interpolated value.
func escapeMarkdown(s string) string {
	s = html.EscapeString(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', '`', '*', '_', '[', ']', '#', '!', '|':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
