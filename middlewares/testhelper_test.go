package middlewares_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/job"
	"github.com/dmitrymomot/babel/pkg/locale"
)

// testContext is a minimal internal.Context backed by an httptest recorder.
type testContext struct {
	response http.ResponseWriter
	request  *http.Request
	values   map[any]any
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		response: w,
		request:  r,
		values:   make(map[any]any),
	}
}

func (c *testContext) Request() *http.Request        { return c.request }
func (c *testContext) Response() http.ResponseWriter { return c.response }
func (c *testContext) Context() context.Context      { return c.request.Context() }
func (c *testContext) Param(string) string           { return "" }

func (c *testContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *testContext) QueryDefault(name, defaultValue string) string {
	v := c.request.URL.Query().Get(name)
	if v == "" {
		return defaultValue
	}
	return v
}

func (c *testContext) QueryValues() url.Values                  { return c.request.URL.Query() }
func (c *testContext) Header(name string) string                { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string)             { c.response.Header().Set(name, value) }
func (c *testContext) JSON(code int, _ any) error               { c.response.WriteHeader(code); return nil }
func (c *testContext) NoContent(code int) error                 { c.response.WriteHeader(code); return nil }
func (c *testContext) BindJSON(any) error                       { return nil }
func (c *testContext) Written() bool                            { return false }
func (c *testContext) Logger() *slog.Logger                     { return slog.Default() }
func (c *testContext) LogDebug(string, ...any)                  {}
func (c *testContext) LogInfo(string, ...any)                   {}
func (c *testContext) LogWarn(string, ...any)                   {}
func (c *testContext) LogError(string, ...any)                  {}
func (c *testContext) ResponseWriter() *internal.ResponseWriter { return nil }

func (c *testContext) String(code int, s string) error {
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	err := internal.NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (c *testContext) Set(key, value any) {
	c.values[key] = value
	// Also store in request context for context extractors
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *testContext) Get(key any) any {
	return c.values[key]
}

func (c *testContext) Cookie(name string) (string, error) {
	cookie, err := c.request.Cookie(name)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

func (c *testContext) RequestID() string {
	id, _ := c.values[internal.RequestIDKey{}].(string)
	return id
}

func (c *testContext) Enqueue(string, any, ...job.EnqueueOption) error { return job.ErrNotConfigured }
func (c *testContext) EnqueueTx(pgx.Tx, string, any, ...job.EnqueueOption) error {
	return job.ErrNotConfigured
}

func (c *testContext) Translator() *i18n.Translator {
	tr, _ := c.values[internal.TranslatorKey{}].(*i18n.Translator)
	return tr
}

func (c *testContext) T(key string, values ...i18n.M) string {
	if tr := c.Translator(); tr != nil {
		return tr.T(key, values...)
	}
	return key
}

func (c *testContext) Tn(key string, n int, values ...i18n.M) string {
	if tr := c.Translator(); tr != nil {
		return tr.Tn(key, n, values...)
	}
	return key
}

func (c *testContext) Locale() string {
	l, _ := c.values[internal.LocaleKey{}].(string)
	return l
}

func (c *testContext) LocaleInfo() *locale.Locale {
	if l, ok := c.values[internal.LocaleInfoKey{}].(*locale.Locale); ok {
		return l
	}
	return locale.Get(c.Locale())
}

func (c *testContext) FormatNumber(n float64) string   { return fmt.Sprint(n) }
func (c *testContext) FormatCurrency(n float64) string { return fmt.Sprint(n) }
func (c *testContext) FormatPercent(n float64) string  { return fmt.Sprint(n) }
func (c *testContext) FormatDate(t time.Time) string   { return t.Format(time.DateOnly) }
func (c *testContext) FormatDateTime(t time.Time) string {
	return t.Format(time.DateTime)
}

func (c *testContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}       { return c.request.Context().Done() }
func (c *testContext) Err() error                  { return c.request.Context().Err() }
func (c *testContext) Value(key any) any           { return c.request.Context().Value(key) }

var _ internal.Context = (*testContext)(nil)
