package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/catalog"
	"github.com/dmitrymomot/babel/pkg/i18n"
)

func newCatalog(t *testing.T) *catalog.Manager {
	t.Helper()

	m, err := catalog.NewManager(
		catalog.WithSource(catalog.NewStaticSource("test", map[string]i18n.Translations{
			"en": {
				"greeting": "Hello, {{name}}!",
				"items":    i18n.Translations{"one": "{{count}} item", "other": "{{count}} items"},
				"home":     i18n.Translations{"title": "Home"},
			},
			"de": {
				"greeting": "Hallo, {{name}}!",
				"items":    i18n.Translations{"one": "{{count}} Artikel", "other": "{{count}} Artikel"},
				"home":     i18n.Translations{"title": "Startseite"},
				"errors":   i18n.Translations{"locale_not_found": "Sprache nicht gefunden"},
			},
		})),
		catalog.WithI18nOptions(i18n.WithDefaultLocale("en")),
	)
	require.NoError(t, err)
	require.NoError(t, m.Reload(context.Background()))
	return m
}

func do(t *testing.T, app *internal.App, method, target, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type errorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func requireError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) errorBody {
	t.Helper()

	require.Equal(t, status, w.Code, w.Body.String())
	body := decode[errorBody](t, w)
	require.Equal(t, code, body.Error.Code)
	return body
}
