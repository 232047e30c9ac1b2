package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   []string
	}{
		{"empty", "", []string{}},
		{"single", "fr", []string{"fr"}},
		{"ordered by quality", "de-CH, en;q=0.8, de;q=0.9", []string{"de-CH", "de", "en"}},
		{"stable for equal quality", "es, it, pt", []string{"es", "it", "pt"}},
		{"normalizes case", "EN-gb", []string{"en-GB"}},
		{"skips wildcard and zero quality", "*, ru;q=0, uk;q=0.5", []string{"uk"}},
		{"skips invalid entries", "en;q=abc, a b c, pl", []string{"pl"}},
		{"deduplicates", "en, en;q=0.5", []string{"en"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header))
		})
	}
}

func TestParseAcceptLanguageOversized(t *testing.T) {
	t.Parallel()

	header := "en," + strings.Repeat("x", 10000)
	assert.Equal(t, []string{"en"}, i18n.ParseAcceptLanguage(header))
}

func TestMatchLocale(t *testing.T) {
	t.Parallel()

	available := []string{"en", "de", "pt-BR"}

	assert.Equal(t, "de", i18n.MatchLocale("de-AT,en;q=0.5", available))
	assert.Equal(t, "pt-BR", i18n.MatchLocale("pt-BR", available))
	assert.Equal(t, "en", i18n.MatchLocale("", available))
	assert.Equal(t, "en", i18n.MatchLocale("ja", available))
	assert.Equal(t, "", i18n.MatchLocale("de", nil))
}
