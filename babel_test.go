package babel_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel"
	"github.com/dmitrymomot/babel/middlewares"
	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/logger"
)

type greeting struct{}

func (h *greeting) Routes(r babel.Router) {
	r.GET("/hello", h.hello)
	r.GET("/items/{n}", h.items)
	r.GET("/fail", h.fail)
}

func (h *greeting) hello(c babel.Context) error {
	name := babel.QueryDefault(c, "name", "stranger")
	return c.String(http.StatusOK, c.T("greeting", babel.M{"name": name}))
}

func (h *greeting) items(c babel.Context) error {
	n := babel.Param[int](c, "n")
	return c.String(http.StatusOK, c.Tn("items", n))
}

func (h *greeting) fail(c babel.Context) error {
	return babel.ErrNotFound("no such thing", babel.WithErrorCode("missing"))
}

func newApp(t *testing.T, extra ...babel.Option) *babel.App {
	t.Helper()

	svc, err := i18n.New(
		i18n.WithDefaultLocale("en"),
		i18n.WithTranslations("en", i18n.Translations{
			"greeting": "Hello, {{name}}!",
			"items":    i18n.Translations{"one": "{{count}} item", "other": "{{count}} items"},
		}),
		i18n.WithTranslations("de", i18n.Translations{
			"greeting": "Hallo, {{name}}!",
			"items":    i18n.Translations{"one": "{{count}} Artikel", "other": "{{count}} Artikel"},
			"errors":   i18n.Translations{"missing": "Nicht vorhanden"},
		}),
	)
	require.NoError(t, err)

	opts := append([]babel.Option{
		babel.WithMiddleware(
			middlewares.RequestID(),
			middlewares.I18n(middlewares.StaticCatalog(svc)),
		),
		babel.WithHandlers(&greeting{}),
	}, extra...)
	return babel.New(opts...)
}

func get(app *babel.App, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func TestAppTranslatesPerRequest(t *testing.T) {
	t.Parallel()

	app := newApp(t)

	tests := []struct {
		name   string
		target string
		header []string
		want   string
	}{
		{"default locale", "/hello?name=Ada", nil, "Hello, Ada!"},
		{"query default", "/hello", nil, "Hello, stranger!"},
		{"accept-language", "/hello?name=Ada", []string{"Accept-Language", "de-CH, en;q=0.5"}, "Hallo, Ada!"},
		{"x-locale header", "/hello?name=Ada", []string{"X-Locale", "de"}, "Hallo, Ada!"},
		{"plural", "/items/1", nil, "1 item"},
		{"plural de", "/items/5", []string{"X-Locale", "de"}, "5 Artikel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := get(app, tt.target, tt.header...)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestAppLocalizedErrors(t *testing.T) {
	t.Parallel()

	app := newApp(t)

	w := get(app, "/fail", "X-Locale", "de", "X-Request-ID", "req-42")
	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope struct {
		Error struct {
			Message   string `json:"message"`
			Code      string `json:"code"`
			RequestID string `json:"request_id"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Nicht vorhanden", envelope.Error.Message)
	assert.Equal(t, "missing", envelope.Error.Code)
	assert.Equal(t, "req-42", envelope.Error.RequestID)
	assert.Nil(t, babel.AsHTTPError(nil))
}

func TestAppLogsWithRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logger.Config{Format: "json"}, middlewares.RequestIDExtractor())
	app := newApp(t,
		babel.WithCustomLogger(log),
		babel.WithErrorHandler(func(c babel.Context, err error) error {
			c.LogWarn("handler failed", "error", err)
			return babel.DefaultErrorHandler(c, err)
		}),
	)

	w := get(app, "/fail", "X-Request-ID", "req-7")
	require.Equal(t, http.StatusNotFound, w.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "handler failed", entry["msg"])
	assert.Equal(t, "req-7", entry["request_id"])
}

func TestAppHealth(t *testing.T) {
	t.Parallel()

	app := newApp(t, babel.WithHealthChecks(
		babel.WithReadinessCheck("catalog", func(context.Context) error { return nil }),
	))

	w := get(app, "/health/live")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(app, "/health/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"catalog"`)
}

func TestExtractor(t *testing.T) {
	t.Parallel()

	ext := babel.NewExtractor(babel.FromQuery("tenant"), babel.FromHeader("X-Tenant"))
	app := babel.New(babel.WithHandlers(routes(func(r babel.Router) {
		r.GET("/tenant", func(c babel.Context) error {
			v, _ := ext.Extract(c)
			return c.String(http.StatusOK, v)
		})
	})))

	assert.Equal(t, "acme", get(app, "/tenant", "X-Tenant", "acme").Body.String())
	assert.Equal(t, "beta", get(app, "/tenant?tenant=beta", "X-Tenant", "acme").Body.String())
}

type routes func(r babel.Router)

func (f routes) Routes(r babel.Router) { f(r) }
