package i18n

// Non-breaking space used as a group delimiter by several locales.
const nbsp = "\u00a0"

var predefinedFormats = map[string]func() *LocaleFormat{
	"en":    FormatEnUS,
	"en-US": FormatEnUS,
	"en-GB": FormatEnGB,
	"de":    FormatDeDE,
	"de-DE": FormatDeDE,
	"fr":    FormatFrFR,
	"fr-FR": FormatFrFR,
	"es":    FormatEsES,
	"es-ES": FormatEsES,
	"pt":    FormatPtBR,
	"pt-BR": FormatPtBR,
	"ja":    FormatJaJP,
	"ja-JP": FormatJaJP,
	"zh":    FormatZhCN,
	"zh-CN": FormatZhCN,
	"ko":    FormatKoKR,
	"ko-KR": FormatKoKR,
	"pl":    FormatPlPL,
	"pl-PL": FormatPlPL,
	"ru":    FormatRuRU,
	"ru-RU": FormatRuRU,
	"ar":    FormatArSA,
	"ar-SA": FormatArSA,
}

// FormatFor returns the predefined format for a locale, trying the exact
// code, then its base language, then US English.
func FormatFor(locale string) *LocaleFormat {
	locale = NormalizeLocale(locale)
	if fn, ok := predefinedFormats[locale]; ok {
		return fn()
	}
	if fn, ok := predefinedFormats[baseLanguage(locale)]; ok {
		return fn()
	}
	return FormatEnUS()
}

// FormatEnUS returns the format for US English (en-US).
func FormatEnUS() *LocaleFormat {
	return NewLocaleFormat()
}

// FormatEnGB returns the format for British English (en-GB).
func FormatEnGB() *LocaleFormat {
	return NewLocaleFormat(
		WithFormatLocale("en-GB"),
		WithCurrency("£", "%u%n"),
	)
}

// FormatDeDE returns the format for German (de-DE).
func FormatDeDE() *LocaleFormat {
	return NewLocaleFormat(
		WithFormatLocale("de-DE"),
		WithDecimalSeparator(","),
		WithThousandSeparator("."),
		WithCurrency("€", "%n %u"),
		WithPercentPattern("%n %"),
	)
}

// FormatFrFR returns the format for French (fr-FR).
func FormatFrFR() *LocaleFormat {
	return NewLocaleFormat(
		WithFormatLocale("fr-FR"),
		WithDecimalSeparator(","),
		WithThousandSeparator(nbsp),
		WithCurrency("€", "%n %u"),
		WithPercentPattern("%n %"),
	)
}

// FormatEsES returns the format for Spanish (es-ES).
func FormatEsES() *LocaleFormat {
	return NewLocaleFormat(
		WithFormatLocale("es-ES"),
		WithDecimalSeparator(","),
		WithThousandSeparator("."),
		WithCurrency("€", "%n %u"),
		WithPercentPattern("%n %"),
	)
}

// FormatPtBR returns the format for Brazilian Portuguese (pt-BR).
func FormatPtBR() *LocaleFormat {
	return NewLocaleFormat(
		WithFormatLocale("pt-BR"),
		WithDecimalSeparator(","),
		WithThousandSeparator("."),
		WithCurrency("R$", "%u %n"),
	)
}

// FormatJaJP returns the format for Japanese (ja-JP).
func FormatJaJP() *LocaleFormat {
	return NewLocaleFormat(
		WithFormatLocale("ja-JP"),
		WithCurrency("¥", "%u%n"),
	)
}

// FormatZhCN returns the format for Simplified Chinese (zh-CN).
func FormatZhCN() *LocaleFormat {
	return NewLocaleFormat(
		WithFormatLocale("zh-CN"),
		WithCurrency("¥", "%u%n"),
	)
}

// FormatKoKR returns the format for Korean (ko-KR).
func FormatKoKR() *LocaleFormat {
	return NewLocaleFormat(
		WithFormatLocale("ko-KR"),
		WithCurrency("₩", "%u%n"),
	)
}

// FormatPlPL returns the format for Polish (pl-PL).
func FormatPlPL() *LocaleFormat {
	return NewLocaleFormat(
		WithFormatLocale("pl-PL"),
		WithDecimalSeparator(","),
		WithThousandSeparator(nbsp),
		WithCurrency("zł", "%n %u"),
	)
}

// FormatRuRU returns the format for Russian (ru-RU).
func FormatRuRU() *LocaleFormat {
	return NewLocaleFormat(
		WithFormatLocale("ru-RU"),
		WithDecimalSeparator(","),
		WithThousandSeparator(nbsp),
		WithCurrency("₽", "%n %u"),
		WithPercentPattern("%n %"),
	)
}

// FormatArSA returns the format for Arabic (ar-SA).
func FormatArSA() *LocaleFormat {
	return NewLocaleFormat(
		WithFormatLocale("ar-SA"),
		WithCurrency("SAR", "%n %u"),
	)
}
