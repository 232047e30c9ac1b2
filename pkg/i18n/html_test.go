package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

func TestTranslateHTML(t *testing.T) {
	t.Parallel()

	inst, err := i18n.New(i18n.WithTranslations("en", i18n.Translations{
		"plain":       "a < b, {{name}}",
		"banner_html": "<strong>Hi</strong> {{name}}<script>alert(1)</script>",
		"intro_md":    "**{{name}}** read the [docs](https://example.com)",
	}))
	require.NoError(t, err)

	t.Run("plain keys are escaped", func(t *testing.T) {
		t.Parallel()
		got := inst.TranslateHTML("en", "plain", i18n.WithValues(i18n.M{"name": "<i>x</i>"}))
		assert.Equal(t, "a &lt; b, &lt;i&gt;x&lt;/i&gt;", got)
	})

	t.Run("html keys keep safe markup", func(t *testing.T) {
		t.Parallel()
		got := inst.TranslateHTML("en", "banner_html", i18n.WithValues(i18n.M{"name": "<b>Ann</b>"}))
		assert.Contains(t, got, "<strong>Hi</strong>")
		assert.Contains(t, got, "&lt;b&gt;Ann&lt;/b&gt;")
		assert.NotContains(t, got, "<script")
		assert.NotContains(t, got, "<b>")
	})

	t.Run("markdown keys render and sanitize", func(t *testing.T) {
		t.Parallel()
		got := inst.TranslateHTML("en", "intro_md", i18n.WithValues(i18n.M{"name": "*x*"}))
		assert.Contains(t, got, "<strong>*x*</strong>")
		assert.Contains(t, got, `href="https://example.com"`)
		assert.Contains(t, got, "nofollow")
		assert.NotContains(t, got, "<em>")
	})

	t.Run("missing html key renders diagnostic", func(t *testing.T) {
		t.Parallel()
		got := inst.TranslateHTML("en", "absent_html")
		assert.Contains(t, got, "missing")
		assert.Contains(t, got, "en.absent_html")
	})
}
