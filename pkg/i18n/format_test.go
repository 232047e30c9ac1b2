package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

func TestLocaleFormat(t *testing.T) {
	t.Parallel()

	t.Run("us english", func(t *testing.T) {
		t.Parallel()
		f := i18n.FormatEnUS()
		assert.Equal(t, "en-US", f.Locale())
		assert.Equal(t, "1,234.5", f.FormatNumber(1234.5))
		assert.Equal(t, "1,234,567.891", f.FormatNumber(1234567.891))
		assert.Equal(t, "-12", f.FormatNumber(-12))
		assert.Equal(t, "0", f.FormatNumber(0))
		assert.Equal(t, "$1,234.50", f.FormatCurrency(1234.5))
		assert.Equal(t, "-$5.00", f.FormatCurrency(-5))
		assert.Equal(t, "50%", f.FormatPercent(0.5))
	})

	t.Run("german", func(t *testing.T) {
		t.Parallel()
		f := i18n.FormatDeDE()
		assert.Equal(t, "1.234,5", f.FormatNumber(1234.5))
		assert.Equal(t, "1.234,50 €", f.FormatCurrency(1234.5))
		assert.Equal(t, "12,5 %", f.FormatPercent(0.125))
	})

	t.Run("french groups with non-breaking space", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1\u00a0000\u00a0000", i18n.FormatFrFR().FormatNumber(1e6))
	})

	t.Run("precision and zeros", func(t *testing.T) {
		t.Parallel()
		f := i18n.NewLocaleFormat(i18n.WithPrecision(1), i18n.WithStripInsignificantZeros(false))
		assert.Equal(t, "2.0", f.FormatNumber(2))
		assert.Equal(t, "2.3", f.FormatNumber(2.25))
	})

	t.Run("patterns without number are ignored", func(t *testing.T) {
		t.Parallel()
		f := i18n.NewLocaleFormat(i18n.WithCurrency("€", "bogus"), i18n.WithPercentPattern("%"))
		assert.Equal(t, "€3.00", f.FormatCurrency(3))
		assert.Equal(t, "10%", f.FormatPercent(0.1))
	})
}

func TestFormatHumanSize(t *testing.T) {
	t.Parallel()

	f := i18n.FormatEnUS()
	assert.Equal(t, "0 Bytes", f.FormatHumanSize(0))
	assert.Equal(t, "1 Byte", f.FormatHumanSize(1))
	assert.Equal(t, "512 Bytes", f.FormatHumanSize(512))
	assert.Equal(t, "1.5 KB", f.FormatHumanSize(1536))
	assert.Equal(t, "1 MB", f.FormatHumanSize(1<<20))
	assert.Equal(t, "2 GB", f.FormatHumanSize(2<<30))

	assert.Equal(t, "1,5 KB", i18n.FormatDeDE().FormatHumanSize(1536))
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "de-DE", i18n.FormatFor("de-AT").Locale())
	assert.Equal(t, "pt-BR", i18n.FormatFor("pt_br").Locale())
	assert.Equal(t, "en-GB", i18n.FormatFor("en-GB").Locale())
	assert.Equal(t, "en-US", i18n.FormatFor("xx").Locale())
}
