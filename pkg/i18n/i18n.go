package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/babel/pkg/plural"
)

// DefaultLocale is the locale used when none is configured. It is also the
// last entry of every fallback chain.
const DefaultLocale = "en"

// Separator joins the segments of a key path.
const Separator = "."

// I18n resolves dotted key paths against nested per-locale catalogs.
// It is immutable after creation, making it safe for concurrent use.
type I18n struct {
	// Nested catalog per normalized locale.
	translations map[string]Translations

	// Plural rules per normalized locale.
	pluralRules map[string]plural.Rule

	// Explicit fallback locale per normalized locale.
	fallbacks map[string]string

	// Optional handler called when a key does not resolve in any locale
	// of the fallback chain.
	missingKeyHandler func(locale, key string)

	// Renders a token whose value was not supplied.
	missingPlaceholder MissingPlaceholderFunc

	defaultLocale   string
	missingBehavior MissingBehavior
	locales         []string
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
// All configuration happens during construction, making the instance
// immutable and thread-safe from creation.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations:       make(map[string]Translations),
		pluralRules:        make(map[string]plural.Rule),
		fallbacks:          make(map[string]string),
		defaultLocale:      DefaultLocale,
		missingPlaceholder: DefaultMissingPlaceholder,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLocale == "" {
		return nil, ErrEmptyLocale
	}

	i.locales = i.buildLocaleList()

	return i, nil
}

// WithDefaultLocale sets the locale tried after the requested locale and its
// fallback.
func WithDefaultLocale(locale string) Option {
	return func(i *I18n) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		i.defaultLocale = NormalizeLocale(locale)
		return nil
	}
}

// WithFallback configures the locale tried right after locale.
// Without an explicit fallback the base language is used ("pt-BR" -> "pt").
func WithFallback(locale, fallback string) Option {
	return func(i *I18n) error {
		if locale == "" || fallback == "" {
			return ErrEmptyLocale
		}
		i.fallbacks[NormalizeLocale(locale)] = NormalizeLocale(fallback)
		return nil
	}
}

// WithTranslations deep-merges a nested catalog into the given locale.
// Options are applied in order, so later calls override earlier keys.
func WithTranslations(locale string, translations Translations) Option {
	return func(i *I18n) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if len(translations) == 0 {
			return nil
		}
		i.merge(NormalizeLocale(locale), translations)
		return nil
	}
}

// WithCatalogs merges several locales at once, keyed by locale. Keys
// that normalize to the same locale ("pt_BR", "pt-BR") are merged in
// sorted key order, so the result does not depend on map iteration.
func WithCatalogs(catalogs map[string]Translations) Option {
	return func(i *I18n) error {
		for _, locale := range slices.Sorted(maps.Keys(catalogs)) {
			if locale == "" {
				return ErrEmptyLocale
			}
			i.merge(NormalizeLocale(locale), catalogs[locale])
		}
		return nil
	}
}

// WithPluralRule registers a plural rule for a locale.
func WithPluralRule(locale string, rule plural.Rule) Option {
	return func(i *I18n) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		i.pluralRules[NormalizeLocale(locale)] = rule
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when a key resolves in none of
// the locales of the fallback chain and no caller default is given.
// Useful for detecting untranslated keys during development.
func WithMissingKeyHandler(handler func(locale, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithMissingBehavior selects what an unresolved key renders as.
func WithMissingBehavior(b MissingBehavior) Option {
	return func(i *I18n) error {
		i.missingBehavior = b
		return nil
	}
}

// WithMissingPlaceholder overrides how a token without a value is rendered.
func WithMissingPlaceholder(fn MissingPlaceholderFunc) Option {
	return func(i *I18n) error {
		if fn == nil {
			return ErrNilPlaceholderFunc
		}
		i.missingPlaceholder = fn
		return nil
	}
}

// T translates key for locale, interpolating the merged values.
func (i *I18n) T(locale, key string, values ...M) string {
	return i.Translate(locale, key, WithValues(mergeValues(values...)))
}

// Tn translates a plural key for count n. The count is available to the
// message as {{count}}.
func (i *I18n) Tn(locale, key string, n int, values ...M) string {
	return i.Translate(locale, key, WithCount(n), WithValues(mergeValues(values...)))
}

// Translate resolves key for locale, walking the fallback chain, and
// renders the result. It never returns an empty string for a missing key:
// the caller default is used if set, otherwise a bracketed diagnostic.
func (i *I18n) Translate(locale, key string, opts ...CallOption) string {
	o := newCallOptions(opts...)
	return i.translate(locale, o.path(key), o, nil)
}

// TranslateFound is Translate that also reports whether the message was
// resolved from the catalog. It is false when the caller default or the
// missing-translation diagnostic was rendered, including for a plural
// mapping requested without a count.
func (i *I18n) TranslateFound(locale, key string, opts ...CallOption) (string, bool) {
	o := newCallOptions(opts...)
	return i.render(locale, o.path(key), o, nil)
}

// TranslatePath is Translate for a key given as separate segments.
func (i *I18n) TranslatePath(locale string, segments []string, opts ...CallOption) string {
	return i.Translate(locale, strings.Join(segments, Separator), opts...)
}

// Pluralize is shorthand for Translate with a count.
func (i *I18n) Pluralize(locale, key string, count int, opts ...CallOption) string {
	return i.Translate(locale, key, append(opts, WithCount(count))...)
}

// translate is shared by the plain and HTML renderers. esc, when non-nil,
// is applied to interpolated values.
func (i *I18n) translate(locale, fullKey string, o *callOptions, esc func(string) string) string {
	msg, _ := i.render(locale, fullKey, o, esc)
	return msg
}

// render reports true when the message came from the catalog.
func (i *I18n) render(locale, fullKey string, o *callOptions, esc func(string) string) (string, bool) {
	locale = NormalizeLocale(locale)
	if locale == "" {
		locale = i.defaultLocale
	}

	values := o.values
	if o.count != nil {
		values = withCount(values, *o.count)
	}

	if msg, ok := i.resolve(locale, fullKey, o); ok {
		return i.interpolate(msg, values, esc), true
	}

	// Alternative keys are tried through the whole chain before giving up.
	for _, alt := range o.defaultKeys {
		if msg, ok := i.resolve(locale, o.path(alt), o); ok {
			return i.interpolate(msg, values, esc), true
		}
	}

	if o.defaultValue != nil {
		return i.interpolate(*o.defaultValue, values, esc), false
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(locale, fullKey)
	}

	msg := i.missingTranslation(locale, fullKey, o)
	if esc != nil {
		return esc(msg), false
	}
	return msg, false
}

// resolve walks the fallback chain and returns the first message found.
func (i *I18n) resolve(locale, fullKey string, o *callOptions) (string, bool) {
	segments := splitKey(fullKey)
	if len(segments) == 0 {
		return "", false
	}

	for _, candidate := range i.Chain(locale) {
		node, ok := lookupPath(i.translations[candidate], segments)
		if !ok {
			continue
		}
		if msg, ok := i.leaf(candidate, node, o); ok {
			return msg, true
		}
	}
	return "", false
}

// leaf turns a resolved node into a message. Mappings only resolve when a
// count selects one of their plural sub-keys.
func (i *I18n) leaf(locale string, node any, o *callOptions) (string, bool) {
	switch v := node.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case Translations:
		if o.count == nil {
			return "", false
		}
		for _, k := range plural.Keys(i.PluralRule(locale), *o.count) {
			if s, ok := v[k]; ok && s != nil {
				if msg, ok := i.leaf(locale, s, &callOptions{}); ok {
					return msg, true
				}
			}
		}
		return "", false
	case []any:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}

// missingTranslation renders an unresolved key.
func (i *I18n) missingTranslation(locale, fullKey string, o *callOptions) string {
	if i.missingBehavior == MissingGuess {
		segments := splitKey(fullKey)
		if len(segments) > 0 {
			return humanize(segments[len(segments)-1])
		}
	}

	key := fullKey
	if o.count != nil {
		// Point the diagnostic at the sub-key the rule asked for.
		if node, ok := lookupPath(i.translations[locale], splitKey(fullKey)); ok {
			if _, isMap := node.(Translations); isMap {
				key += Separator + i.PluralRule(locale)(*o.count)
			}
		}
	}
	return fmt.Sprintf(missingTranslationFormat, locale+Separator+key)
}

// Chain returns the locales tried for a lookup, in order: the requested
// locale, its configured fallback (or base language), the default locale,
// and "en". Duplicates are removed.
func (i *I18n) Chain(locale string) []string {
	locale = NormalizeLocale(locale)

	chain := make([]string, 0, 4)
	add := func(l string) {
		if l != "" && !slices.Contains(chain, l) {
			chain = append(chain, l)
		}
	}

	add(locale)
	if fb, ok := i.fallbacks[locale]; ok {
		add(fb)
	} else {
		add(baseLanguage(locale))
	}
	add(i.defaultLocale)
	add(DefaultLocale)

	return chain
}

// PluralRule returns the rule for a locale, trying the locale itself, its
// base language, then the CLDR table.
func (i *I18n) PluralRule(locale string) plural.Rule {
	locale = NormalizeLocale(locale)
	if rule, ok := i.pluralRules[locale]; ok {
		return rule
	}
	if rule, ok := i.pluralRules[baseLanguage(locale)]; ok {
		return rule
	}
	return plural.ForLanguage(locale)
}

// Lookup returns the raw catalog node for key, following the fallback chain.
// The node is either a string, a scalar, or a nested Translations mapping.
func (i *I18n) Lookup(locale, key string) (any, bool) {
	segments := splitKey(key)
	if len(segments) == 0 {
		return nil, false
	}
	for _, candidate := range i.Chain(locale) {
		if node, ok := lookupPath(i.translations[candidate], segments); ok && node != nil {
			return node, true
		}
	}
	return nil, false
}

// Has reports whether key resolves for locale without falling back.
func (i *I18n) Has(locale, key string) bool {
	node, ok := lookupPath(i.translations[NormalizeLocale(locale)], splitKey(key))
	return ok && node != nil
}

// Flatten returns the catalog of a single locale as dotted keys.
// Fallback locales are not merged in.
func (i *I18n) Flatten(locale string) map[string]string {
	return flatten(i.translations[NormalizeLocale(locale)], "")
}

// Keys returns the sorted dotted keys defined for locale.
func (i *I18n) Keys(locale string) []string {
	flat := i.Flatten(locale)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Locales returns the loaded locales with the default locale first.
func (i *I18n) Locales() []string {
	return slices.Clone(i.locales)
}

// DefaultLocale returns the configured default locale.
func (i *I18n) DefaultLocale() string {
	return i.defaultLocale
}

func (i *I18n) merge(locale string, src Translations) {
	dst, ok := i.translations[locale]
	if !ok {
		dst = make(Translations)
		i.translations[locale] = dst
	}
	deepMerge(dst, normalizeTree(src))
}

func (i *I18n) buildLocaleList() []string {
	others := make([]string, 0, len(i.translations))
	for l := range i.translations {
		if l != i.defaultLocale {
			others = append(others, l)
		}
	}
	slices.Sort(others)
	return append([]string{i.defaultLocale}, others...)
}

// baseLanguage strips the region from a locale ("en-US" -> "en").
// Returns the input unchanged if there is no region.
func baseLanguage(locale string) string {
	if i := strings.IndexByte(locale, '-'); i > 0 {
		return locale[:i]
	}
	return locale
}

func splitKey(key string) []string {
	key = strings.Trim(key, Separator)
	if key == "" {
		return nil
	}
	parts := strings.Split(key, Separator)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
