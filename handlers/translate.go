package handlers

import (
	"net/http"
	"slices"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/i18n"
)

// Catalog yields the current translation store.
// *catalog.Manager satisfies it.
type Catalog interface {
	Current() *i18n.I18n
}

// revisioner is implemented by catalogs that version their stores.
type revisioner interface {
	Revision() string
}

// Query parameters of GET /v1/translate/{key} that are not interpolation
// values.
var reservedTranslateParams = map[string]bool{
	"locale":  true,
	"count":   true,
	"default": true,
	"scope":   true,
}

// TranslateResponse is the body of GET /v1/translate/{key}.
type TranslateResponse struct {
	Locale string `json:"locale"`
	Key    string `json:"key"`
	Value  string `json:"value"`
	Found  bool   `json:"found"`
}

// CatalogResponse is the body of GET /v1/catalog/{locale}.
type CatalogResponse struct {
	Locale   string            `json:"locale"`
	Revision string            `json:"revision,omitempty"`
	Keys     map[string]string `json:"keys"`
}

// Translate serves lookups against the current catalog.
type Translate struct {
	catalog Catalog
}

func NewTranslate(c Catalog) *Translate {
	return &Translate{catalog: c}
}

func (h *Translate) Routes(r internal.Router) {
	r.GET("/v1/translate/{key}", h.translate)
	r.GET("/v1/catalog/{locale}", h.flatten)
}

// translate resolves one key. Query values other than locale, count,
// default and scope are interpolated into the message.
func (h *Translate) translate(c internal.Context) error {
	svc := h.catalog.Current()
	loc := requestLocale(c, svc)
	key := c.Param("key")

	var opts []i18n.CallOption
	n, ok, err := internal.QueryValue[int](c, "count", internal.WithErrorCode(CodeInvalidCount))
	if err != nil {
		return err
	}
	if ok {
		opts = append(opts, i18n.WithCount(n))
	}
	if v := internal.Query[string](c, "default"); v != "" {
		opts = append(opts, i18n.WithDefault(v))
	}
	full := key
	if scope := internal.Query[string](c, "scope"); scope != "" {
		opts = append(opts, i18n.WithScope(scope))
		full = scope + i18n.Separator + key
	}

	values := i18n.M{}
	for name, vs := range c.QueryValues() {
		if !reservedTranslateParams[name] && len(vs) > 0 {
			values[name] = vs[0]
		}
	}
	if len(values) > 0 {
		opts = append(opts, i18n.WithValues(values))
	}

	value, found := svc.TranslateFound(loc, key, opts...)
	return c.JSON(http.StatusOK, TranslateResponse{
		Locale: loc,
		Key:    full,
		Value:  value,
		Found:  found,
	})
}

// flatten returns the catalog of one locale as dotted keys. The revision
// doubles as an ETag.
func (h *Translate) flatten(c internal.Context) error {
	svc := h.catalog.Current()
	loc := i18n.NormalizeLocale(c.Param("locale"))
	if !slices.Contains(svc.Locales(), loc) {
		return internal.ErrNotFound("locale not found", internal.WithErrorCode(CodeLocaleNotFound))
	}

	var revision string
	if rv, ok := h.catalog.(revisioner); ok {
		revision = rv.Revision()
	}
	if revision != "" {
		etag := `"` + revision + `"`
		c.SetHeader("ETag", etag)
		c.SetHeader("X-Catalog-Revision", revision)
		if c.Header("If-None-Match") == etag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.JSON(http.StatusOK, CatalogResponse{
		Locale:   loc,
		Revision: revision,
		Keys:     svc.Flatten(loc),
	})
}

// requestLocale prefers the locale negotiated by the I18n middleware,
// then the locale query parameter, then the store default.
func requestLocale(c internal.Context, svc *i18n.I18n) string {
	if loc := c.Locale(); loc != "" {
		return loc
	}
	if loc := i18n.NormalizeLocale(c.Query("locale")); loc != "" {
		return loc
	}
	return svc.DefaultLocale()
}
