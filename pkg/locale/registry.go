package locale

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Fallback is the locale returned when nothing else matches.
const Fallback = "en"

// Registry is a concurrency-safe set of locales keyed by lowercase code
// ("en", "pt-br").
type Registry struct {
	mu      sync.RWMutex
	locales map[string]*Locale
}

// NewRegistry creates a registry with the given locales. Invalid locales
// are reported as an error.
func NewRegistry(locales ...*Locale) (*Registry, error) {
	r := &Registry{locales: make(map[string]*Locale, len(locales))}
	for _, l := range locales {
		if err := r.Register(l); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register validates and adds a locale, replacing any locale with the same
// code. The registry keeps its own copy.
func (r *Registry) Register(l *Locale) error {
	if l == nil {
		return ErrInvalidLocale
	}
	c := l.Clone()
	c.Code = Normalize(c.Code)
	if err := c.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.locales[c.Code] = c
	return nil
}

// Update applies fn to a copy of a registered locale and stores the result.
func (r *Registry) Update(code string, fn func(*Locale)) error {
	code = Normalize(code)

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.locales[code]
	if !ok {
		return fmt.Errorf("%w: %q", ErrLocaleNotFound, code)
	}

	c := existing.Clone()
	fn(c)
	c.Code = code
	if err := c.validate(); err != nil {
		return err
	}
	r.locales[code] = c
	return nil
}

// Lookup returns the locale registered under the exact code.
func (r *Registry) Lookup(code string) (*Locale, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.locales[Normalize(code)]
	return l, ok
}

// Get returns the locale for code, trying the exact code, its base
// language, then "en". It returns nil only when even "en" is missing.
func (r *Registry) Get(code string) *Locale {
	code = Normalize(code)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.locales[code]; ok {
		return l
	}
	if base, _, found := strings.Cut(code, "-"); found {
		if l, ok := r.locales[base]; ok {
			return l
		}
	}
	return r.locales[Fallback]
}

// Match returns the registered locale that best fits the given language
// tags, in order of preference, using the CLDR matcher. Unparsable tags
// are ignored.
func (r *Registry) Match(tags ...string) *Locale {
	codes := r.Codes()
	if len(codes) == 0 {
		return nil
	}

	supported := make([]language.Tag, 0, len(codes))
	supportedCodes := make([]string, 0, len(codes))
	for _, c := range codes {
		tag, err := language.Parse(c)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		supportedCodes = append(supportedCodes, c)
	}

	desired := make([]language.Tag, 0, len(tags))
	for _, t := range tags {
		tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(t), "_", "-"))
		if err != nil {
			continue
		}
		desired = append(desired, tag)
	}
	if len(desired) == 0 || len(supported) == 0 {
		return r.Get(Fallback)
	}

	_, idx, conf := language.NewMatcher(supported).Match(desired...)
	if conf == language.No {
		return r.Get(Fallback)
	}
	return r.Get(supportedCodes[idx])
}

// Codes returns the sorted codes of all registered locales.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.locales))
	for c := range r.locales {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// Normalize lowercases a code and uses "-" as the separator ("pt_BR" -> "pt-br").
func Normalize(code string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
}

var defaultRegistry = mustBuiltins()

func mustBuiltins() *Registry {
	r, err := NewRegistry(Builtins()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the process-wide registry preloaded with the built-in
// locales.
func Default() *Registry { return defaultRegistry }

// Register adds a locale to the default registry.
func Register(l *Locale) error { return defaultRegistry.Register(l) }

// Update modifies a locale of the default registry.
func Update(code string, fn func(*Locale)) error { return defaultRegistry.Update(code, fn) }

// Get returns a locale from the default registry. See Registry.Get.
func Get(code string) *Locale { return defaultRegistry.Get(code) }

// Match picks a locale from the default registry. See Registry.Match.
func Match(tags ...string) *Locale { return defaultRegistry.Match(tags...) }

// Codes lists the codes of the default registry.
func Codes() []string { return defaultRegistry.Codes() }
