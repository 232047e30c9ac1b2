package i18n

// Translator binds an I18n instance to one locale and an optional scope so
// call sites only pass keys.
type Translator struct {
	i18n   *I18n
	format *LocaleFormat
	locale string
	scope  string
}

// NewTranslator creates a Translator. An empty locale selects the default
// locale; a nil format selects FormatFor(locale).
func NewTranslator(i18n *I18n, locale, scope string, format *LocaleFormat) *Translator {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	if locale == "" {
		locale = i18n.DefaultLocale()
	}
	locale = NormalizeLocale(locale)
	if format == nil {
		format = FormatFor(locale)
	}
	return &Translator{
		i18n:   i18n,
		locale: locale,
		scope:  scope,
		format: format,
	}
}

func (t *Translator) opts(extra []CallOption) []CallOption {
	if t.scope == "" {
		return extra
	}
	return append([]CallOption{WithScope(t.scope)}, extra...)
}

// T translates key with the bound locale and scope.
func (t *Translator) T(key string, values ...M) string {
	return t.i18n.Translate(t.locale, key, t.opts([]CallOption{WithValues(mergeValues(values...))})...)
}

// Tn translates a plural key for count n.
func (t *Translator) Tn(key string, n int, values ...M) string {
	return t.i18n.Translate(t.locale, key, t.opts([]CallOption{WithCount(n), WithValues(mergeValues(values...))})...)
}

// Translate is the full-option form of T.
func (t *Translator) Translate(key string, opts ...CallOption) string {
	return t.i18n.Translate(t.locale, key, t.opts(opts)...)
}

// HTML renders key as sanitized HTML. See I18n.TranslateHTML.
func (t *Translator) HTML(key string, opts ...CallOption) string {
	return t.i18n.TranslateHTML(t.locale, key, t.opts(opts)...)
}

// TranslateMessage matches the func(key, values) shape expected by
// validation libraries.
func (t *Translator) TranslateMessage(key string, values map[string]any) string {
	return t.T(key, values)
}

// FormatNumber formats a number with locale-specific separators.
func (t *Translator) FormatNumber(n float64) string {
	return t.format.FormatNumber(n)
}

// FormatCurrency formats a currency amount with locale-specific formatting.
func (t *Translator) FormatCurrency(amount float64) string {
	return t.format.FormatCurrency(amount)
}

// FormatPercent formats a ratio as a percentage (0.5 for 50%).
func (t *Translator) FormatPercent(ratio float64) string {
	return t.format.FormatPercent(ratio)
}

// FormatHumanSize formats a byte count.
func (t *Translator) FormatHumanSize(size int64) string {
	return t.format.FormatHumanSize(size)
}

// Locale returns the translator's locale.
func (t *Translator) Locale() string {
	return t.locale
}

// Scope returns the translator's key scope.
func (t *Translator) Scope() string {
	return t.scope
}

// Format returns the LocaleFormat used by this translator.
func (t *Translator) Format() *LocaleFormat {
	return t.format
}

// I18n returns the underlying store.
func (t *Translator) I18n() *I18n {
	return t.i18n
}
