package middlewares

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/locale"
	"github.com/dmitrymomot/babel/pkg/logger"
)

// Catalog yields the translation store to use for one request.
// *catalog.Manager satisfies it, so requests pick up hot reloads.
type Catalog interface {
	Current() *i18n.I18n
}

type staticCatalog struct{ svc *i18n.I18n }

func (s staticCatalog) Current() *i18n.I18n { return s.svc }

// StaticCatalog wraps a store that never changes.
func StaticCatalog(svc *i18n.I18n) Catalog {
	return staticCatalog{svc: svc}
}

// Default sources of the requested locale.
const (
	LocaleQueryParam = "locale"
	LocaleHeader     = "X-Locale"
	LocaleCookie     = "locale"
)

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	Formats         map[string]*i18n.LocaleFormat
	Scope           string
	Extractor       internal.Extractor
	extractorSet    bool
	ContentLanguage bool
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nScope prefixes every key looked up through the request translator.
func WithI18nScope(scope string) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Scope = scope
	}
}

// WithI18nExtractor replaces the locale sources.
func WithI18nExtractor(ext internal.Extractor) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// WithI18nFormats overrides number formats per locale. Locales without an
// entry use i18n.FormatFor.
func WithI18nFormats(m map[string]*i18n.LocaleFormat) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Formats = m
	}
}

// WithoutContentLanguage stops the middleware from setting the
// Content-Language response header.
func WithoutContentLanguage() I18nOption {
	return func(cfg *I18nConfig) {
		cfg.ContentLanguage = false
	}
}

// FromAcceptLanguage returns a source that reads the raw Accept-Language
// header. Matching against the loaded locales happens in I18n.
func FromAcceptLanguage() internal.ExtractorSource {
	return internal.FromHeader("Accept-Language")
}

// I18n negotiates the request locale and stores a Translator, the locale
// code and the matching *locale.Locale in the context.
//
// The requested locale is read, in order, from the "locale" query
// parameter, the X-Locale header, the "locale" cookie and Accept-Language.
// It is then matched against the locales of the current catalog with the
// CLDR matcher, so "de-AT" resolves to "de"; an unknown locale resolves
// to the default one.
func I18n(src Catalog, opts ...I18nOption) internal.Middleware {
	cfg := &I18nConfig{ContentLanguage: true}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(
			internal.FromQuery(LocaleQueryParam),
			internal.FromHeader(LocaleHeader),
			internal.FromCookie(LocaleCookie),
			FromAcceptLanguage(),
		)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			svc := src.Current()

			code := svc.DefaultLocale()
			if requested, ok := cfg.Extractor.Extract(c); ok {
				code = i18n.MatchLocale(i18n.NormalizeLocale(requested), svc.Locales())
			}

			format := cfg.Formats[code]
			if format == nil {
				format = i18n.FormatFor(code)
			}

			c.Set(internal.TranslatorKey{}, i18n.NewTranslator(svc, code, cfg.Scope, format))
			c.Set(internal.LocaleKey{}, code)
			c.Set(internal.LocaleInfoKey{}, locale.Match(code))
			if cfg.ContentLanguage {
				c.SetHeader("Content-Language", code)
			}

			return next(c)
		}
	}
}

// GetTranslator extracts the Translator from the context.
// Returns nil if the I18n middleware is not used.
func GetTranslator(c internal.Context) *i18n.Translator {
	return internal.ContextValue[*i18n.Translator](c, internal.TranslatorKey{})
}

// GetLocale extracts the negotiated locale from the context.
// Returns an empty string if the I18n middleware is not used.
func GetLocale(c internal.Context) string {
	return internal.ContextValue[string](c, internal.LocaleKey{})
}

// LocaleExtractor adds "locale" to log entries of requests that went
// through I18n.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(internal.LocaleKey{}).(string); ok && v != "" {
			return slog.String("locale", v), true
		}
		return slog.Attr{}, false
	}
}
