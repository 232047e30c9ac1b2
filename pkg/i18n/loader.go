package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Format identifies a catalog file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromExt maps a file extension (with or without the dot) to a Format.
func FormatFromExt(ext string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	case "toml":
		return FormatTOML, true
	}
	return "", false
}

// Unmarshal decodes a catalog document in the given format.
func Unmarshal(format Format, data []byte) (Translations, error) {
	var tree Translations
	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &tree)
	case FormatYAML:
		err = yaml.Unmarshal(data, &tree)
	case FormatTOML:
		err = toml.Unmarshal(data, &tree)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return normalizeTree(tree), nil
}

// DecodeFile decodes one catalog file and returns its trees keyed by
// locale. The file name decides the layout:
//
//	en.json            {"greeting": "Hello"} or {"en": {"greeting": "Hello"}}
//	translations.json  {"en": {...}, "de": {...}}
//	en/errors.yaml     {"not_found": "..."} lands under "errors.not_found"
func DecodeFile(filePath string, data []byte) (map[string]Translations, error) {
	format, ok := FormatFromExt(path.Ext(filePath))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filePath)
	}

	tree, err := Unmarshal(format, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", filePath, err)
	}

	name := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	dir := path.Base(path.Dir(filePath))

	// {locale}/{namespace}.ext
	if dir != "." && dir != "/" && isLocale(dir) {
		return map[string]Translations{
			NormalizeLocale(dir): {name: tree},
		}, nil
	}

	// {locale}.ext, optionally wrapped in a single root key for the locale.
	if isLocale(name) {
		locale := NormalizeLocale(name)
		if len(tree) == 1 {
			for k, v := range tree {
				if inner, ok := v.(Translations); ok && NormalizeLocale(k) == locale {
					tree = inner
				}
			}
		}
		return map[string]Translations{locale: tree}, nil
	}

	// Multi-locale document keyed by locale.
	out := make(map[string]Translations, len(tree))
	for k, v := range tree {
		inner, ok := v.(Translations)
		if !ok {
			return nil, fmt.Errorf("%w: %q: top-level key %q is not a locale mapping", ErrInvalidFile, filePath, k)
		}
		out[NormalizeLocale(k)] = inner
	}
	return out, nil
}

// LoadFS walks fsys and decodes every catalog file it supports.
// Files are merged in walk order (lexical), so later files win on conflicts.
func LoadFS(fsys fs.FS) (map[string]Translations, error) {
	out := make(map[string]Translations)

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := FormatFromExt(path.Ext(filePath)); !ok {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		catalogs, err := DecodeFile(filePath, data)
		if err != nil {
			return err
		}
		MergeCatalogs(out, catalogs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// MergeCatalogs deep-merges src into dst, locale by locale. Locale keys
// are normalized; keys of src that normalize to the same locale are
// merged in sorted order. Empty locales are skipped.
func MergeCatalogs(dst, src map[string]Translations) {
	for _, key := range slices.Sorted(maps.Keys(src)) {
		locale, tree := NormalizeLocale(key), src[key]
		if locale == "" {
			continue
		}
		existing, ok := dst[locale]
		if !ok {
			existing = make(Translations)
			dst[locale] = existing
		}
		deepMerge(existing, tree)
	}
}

// WithJSONDir loads every *.json catalog in fsys.
func WithJSONDir(fsys fs.FS) Option {
	return withDir(fsys, FormatJSON)
}

// WithYAMLDir loads every *.yaml and *.yml catalog in fsys.
func WithYAMLDir(fsys fs.FS) Option {
	return withDir(fsys, FormatYAML)
}

// WithTOMLDir loads every *.toml catalog in fsys.
func WithTOMLDir(fsys fs.FS) Option {
	return withDir(fsys, FormatTOML)
}

func withDir(fsys fs.FS, format Format) Option {
	return func(i *I18n) error {
		return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if f, ok := FormatFromExt(path.Ext(filePath)); !ok || f != format {
				return nil
			}

			data, err := fs.ReadFile(fsys, filePath)
			if err != nil {
				return fmt.Errorf("reading %q: %w", filePath, err)
			}

			catalogs, err := DecodeFile(filePath, data)
			if err != nil {
				return err
			}
			for locale, tree := range catalogs {
				i.merge(locale, tree)
			}
			return nil
		})
	}
}

// isLocale reports whether s looks like a locale code rather than a
// namespace or bundle name. Only two- and three-letter languages with an
// optional region or script are accepted, so "errors" or "common" are not
// mistaken for locales.
func isLocale(s string) bool {
	s = strings.ReplaceAll(s, "_", "-")
	base, rest, _ := strings.Cut(s, "-")
	if len(base) < 2 || len(base) > 3 {
		return false
	}
	for _, r := range base {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	if rest != "" && (len(rest) < 2 || len(rest) > 4) {
		return false
	}
	_, err := language.Parse(s)
	return err == nil
}
