package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/handlers"
	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/middlewares"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	catalogs := newCatalog(t)
	app := internal.New(
		internal.WithMiddleware(middlewares.I18n(catalogs)),
		internal.WithHandlers(handlers.NewTranslate(catalogs)),
	)

	tests := []struct {
		name   string
		target string
		header []string
		want   handlers.TranslateResponse
	}{
		{
			name:   "interpolates extra query values",
			target: "/v1/translate/greeting?name=Ada",
			want:   handlers.TranslateResponse{Locale: "en", Key: "greeting", Value: "Hello, Ada!", Found: true},
		},
		{
			name:   "negotiates Accept-Language",
			target: "/v1/translate/greeting?name=Ada",
			header: []string{"Accept-Language", "de-AT,de;q=0.9,en;q=0.5"},
			want:   handlers.TranslateResponse{Locale: "de", Key: "greeting", Value: "Hallo, Ada!", Found: true},
		},
		{
			name:   "locale query wins",
			target: "/v1/translate/greeting?name=Ada&locale=de",
			header: []string{"Accept-Language", "en"},
			want:   handlers.TranslateResponse{Locale: "de", Key: "greeting", Value: "Hallo, Ada!", Found: true},
		},
		{
			name:   "plural count",
			target: "/v1/translate/items?count=3",
			want:   handlers.TranslateResponse{Locale: "en", Key: "items", Value: "3 items", Found: true},
		},
		{
			name:   "scope",
			target: "/v1/translate/title?scope=home&locale=de",
			want:   handlers.TranslateResponse{Locale: "de", Key: "home.title", Value: "Startseite", Found: true},
		},
		{
			name:   "plural mapping without count",
			target: "/v1/translate/items",
			want:   handlers.TranslateResponse{Locale: "en", Key: "items", Value: `[missing "en.items" translation]`, Found: false},
		},
		{
			name:   "missing key with default",
			target: "/v1/translate/nope?default=Fallback",
			want:   handlers.TranslateResponse{Locale: "en", Key: "nope", Value: "Fallback", Found: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := do(t, app, http.MethodGet, tt.target, "", tt.header...)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.want, decode[handlers.TranslateResponse](t, w))
			assert.Equal(t, tt.want.Locale, w.Header().Get("Content-Language"))
		})
	}
}

func TestTranslateInvalidCount(t *testing.T) {
	t.Parallel()

	catalogs := newCatalog(t)
	app := internal.New(internal.WithHandlers(handlers.NewTranslate(catalogs)))

	w := do(t, app, http.MethodGet, "/v1/translate/items?count=many", "")
	requireError(t, w, http.StatusBadRequest, handlers.CodeInvalidCount)
}

func TestTranslateWithoutMiddlewareUsesQueryLocale(t *testing.T) {
	t.Parallel()

	catalogs := newCatalog(t)
	app := internal.New(internal.WithHandlers(handlers.NewTranslate(catalogs)))

	w := do(t, app, http.MethodGet, "/v1/translate/home.title?locale=de", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Startseite", decode[handlers.TranslateResponse](t, w).Value)

	w = do(t, app, http.MethodGet, "/v1/translate/home.title", "")
	assert.Equal(t, "Home", decode[handlers.TranslateResponse](t, w).Value)
}

func TestCatalogFlatten(t *testing.T) {
	t.Parallel()

	catalogs := newCatalog(t)
	app := internal.New(
		internal.WithMiddleware(middlewares.I18n(catalogs)),
		internal.WithHandlers(handlers.NewTranslate(catalogs)),
	)

	w := do(t, app, http.MethodGet, "/v1/catalog/de", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode[handlers.CatalogResponse](t, w)
	assert.Equal(t, "de", body.Locale)
	assert.Equal(t, catalogs.Revision(), body.Revision)
	assert.Equal(t, "Startseite", body.Keys["home.title"])
	assert.Equal(t, "{{count}} Artikel", body.Keys["items.other"])

	etag := w.Header().Get("ETag")
	assert.Equal(t, `"`+catalogs.Revision()+`"`, etag)
	assert.Equal(t, catalogs.Revision(), w.Header().Get("X-Catalog-Revision"))

	t.Run("not modified", func(t *testing.T) {
		t.Parallel()

		w := do(t, app, http.MethodGet, "/v1/catalog/de", "", "If-None-Match", etag)
		assert.Equal(t, http.StatusNotModified, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unknown locale is localized", func(t *testing.T) {
		t.Parallel()

		w := do(t, app, http.MethodGet, "/v1/catalog/fr", "", "Accept-Language", "de")
		body := requireError(t, w, http.StatusNotFound, handlers.CodeLocaleNotFound)
		assert.Equal(t, "Sprache nicht gefunden", body.Error.Message)
	})
}
