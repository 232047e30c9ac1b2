// Package i18n resolves translated messages from nested per-locale catalogs.
//
// A catalog is a tree of string keys. Leaves are messages; inner nodes are
// either scopes or plural mappings keyed by CLDR category. Keys are
// addressed with dotted paths ("users.form.title") and resolved one segment
// at a time. All configuration happens at construction, so an *I18n is
// immutable and safe for concurrent use.
//
// # Basic Usage
//
//	store, err := i18n.New(
//		i18n.WithDefaultLocale("en"),
//		i18n.WithTranslations("en", i18n.Translations{
//			"greeting": "Hello, {{name}}!",
//			"inbox": i18n.Translations{
//				"zero":  "No messages",
//				"one":   "One message",
//				"other": "%{count} messages",
//			},
//		}),
//		i18n.WithTranslations("de", i18n.Translations{
//			"greeting": "Hallo, {{name}}!",
//		}),
//	)
//
//	store.T("de", "greeting", i18n.M{"name": "Jan"}) // "Hallo, Jan!"
//	store.Tn("de", "inbox", 3)                       // "3 messages" (from "en")
//
// # Fallback Chain
//
// A key is looked up in the requested locale, then its fallback (set with
// [WithFallback], otherwise the base language: "pt-BR" falls back to "pt"),
// then the default locale, and finally "en". The first locale that resolves
// wins. [I18n.Chain] returns the exact order for a locale.
//
// When nothing resolves, alternative keys from [WithDefaultKeys] are tried,
// then the [WithDefault] message. Without a default the result is a
// diagnostic that names the missing key:
//
//	[missing "de.checkout.title" translation]
//
// [WithMissingBehavior] with [MissingGuess] renders the humanized last
// segment instead ("checkout.page_title" becomes "page title"), and [WithMissingKeyHandler]
// reports every miss, which is handy for logging untranslated keys.
//
// # Interpolation
//
// Both {{name}} and %{name} tokens are supported. Substitution happens in a
// single pass, so inserted values are never interpreted again: a value of
// "$1" or "{{other}}" appears literally. A token with no value renders as
// "[missing {{name}} value]"; use [WithMissingPlaceholder] to change it.
//
// # Pluralization
//
// With a count, a mapping node is resolved through the locale plural rule
// (see package plural). An explicit "zero" entry wins for 0, then the rule
// category, then "other". Rules come from [WithPluralRule] or from the CLDR
// table by language.
//
// # Catalog Files
//
// [WithJSONDir], [WithYAMLDir] and [WithTOMLDir] load files from an fs.FS:
//
//	en.json          {"greeting": "Hello"}
//	de.yaml          de: {greeting: Hallo}
//	fr/errors.toml   not_found = "Introuvable"   -> "errors.not_found"
//	bundle.json      {"en": {...}, "fr": {...}}
//
// Later sources deep-merge over earlier ones. [LoadFS] and [DecodeFile]
// expose the same decoding for callers that assemble catalogs themselves.
//
// # HTML
//
// [I18n.TranslateHTML] renders keys ending in "_html" as sanitized markup
// and keys ending in "_md" from Markdown. Interpolated values are escaped.
//
// # Number Formatting
//
// [LocaleFormat] formats numbers, currency, percentages and byte sizes
// with locale separators. [FormatFor] picks a predefined format.
package i18n
