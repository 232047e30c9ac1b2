package internal_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/pkg/i18n"
	"github.com/dmitrymomot/babel/pkg/job"
	"github.com/dmitrymomot/babel/pkg/locale"
)

func TestContextImplementsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	requestVia(t, req, nil, func(c internal.Context) {
		var std context.Context = c
		_, ok := std.Deadline()
		assert.True(t, ok)
		assert.NoError(t, std.Err())
		assert.NotNil(t, std.Done())

		c.Set(ctxKey{}, "v")
		assert.Equal(t, "v", std.Value(ctxKey{}))
		assert.Equal(t, "v", c.Request().Context().Value(ctxKey{}))
	})
}

func TestContextRequestAccessors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/items/7?a=1&b=2&b=3", nil)
	req.Header.Set("X-Test", "yes")

	w := requestVia(t, req, nil, func(c internal.Context) {
		assert.Equal(t, "7", c.Param("id"))
		assert.Equal(t, "1", c.Query("a"))
		assert.Equal(t, "fallback", c.QueryDefault("missing", "fallback"))
		assert.Equal(t, []string{"2", "3"}, c.QueryValues()["b"])
		assert.Equal(t, "yes", c.Header("X-Test"))
		_, err := c.Cookie("none")
		assert.Error(t, err)

		c.SetHeader("X-Out", "ok")
		assert.False(t, c.Written())
		require.NoError(t, c.JSON(http.StatusCreated, map[string]string{"hello": "world"}))
		assert.True(t, c.Written())
		assert.Equal(t, http.StatusCreated, c.ResponseWriter().Status())
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ok", w.Header().Get("X-Out"))
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, w.Body.String())
}

func TestContextStringAndNoContent(t *testing.T) {
	t.Parallel()

	w := requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) {
		require.NoError(t, c.String(http.StatusAccepted, "queued"))
	})
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "queued", w.Body.String())

	w = requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) {
		require.NoError(t, c.NoContent(http.StatusNoContent))
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestContextBindJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Value string `json:"value"`
	}

	tests := []struct {
		name string
		body string
		code string
	}{
		{"valid", `{"value":"Hallo"}`, ""},
		{"empty", ``, "empty_body"},
		{"malformed", `{"value":`, "invalid_json"},
		{"unknown field", `{"value":"x","extra":1}`, "invalid_json"},
		{"trailing data", `{"value":"x"} {}`, "invalid_json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", strings.NewReader(tt.body))
			requestVia(t, req, nil, func(c internal.Context) {
				var p payload
				err := c.BindJSON(&p)
				if tt.code == "" {
					require.NoError(t, err)
					assert.Equal(t, "Hallo", p.Value)
					return
				}
				httpErr := internal.AsHTTPError(err)
				require.NotNil(t, httpErr)
				assert.Equal(t, http.StatusBadRequest, httpErr.Code)
				assert.Equal(t, tt.code, httpErr.ErrorCode)
			})
		})
	}
}

type recordingEnqueuer struct {
	mu    sync.Mutex
	names []string
}

func (e *recordingEnqueuer) Enqueue(_ context.Context, name string, _ any, _ ...job.EnqueueOption) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.names = append(e.names, name)
	return nil
}

func (e *recordingEnqueuer) EnqueueTx(ctx context.Context, _ pgx.Tx, name string, payload any, opts ...job.EnqueueOption) error {
	return e.Enqueue(ctx, name+":tx", payload, opts...)
}

func TestContextEnqueue(t *testing.T) {
	t.Parallel()

	requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) {
		assert.ErrorIs(t, c.Enqueue("catalog.reload", nil), job.ErrNotConfigured)
		assert.ErrorIs(t, c.EnqueueTx(nil, "catalog.reload", nil), job.ErrNotConfigured)
	})

	rec := &recordingEnqueuer{}
	requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), []internal.Option{internal.WithJobEnqueuer(rec)}, func(c internal.Context) {
		require.NoError(t, c.Enqueue("catalog.reload", nil))
		require.NoError(t, c.EnqueueTx(nil, "catalog.reload", nil))
	})
	assert.Equal(t, []string{"catalog.reload", "catalog.reload:tx"}, rec.names)
}

func TestContextWithoutTranslator(t *testing.T) {
	t.Parallel()

	requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) {
		assert.Nil(t, c.Translator())
		assert.Equal(t, "greeting", c.T("greeting"))
		assert.Equal(t, "items", c.Tn("items", 2))
		assert.Empty(t, c.Locale())
		assert.Equal(t, "en", c.LocaleInfo().Code)
		assert.Equal(t, "1234.5", c.FormatNumber(1234.5))
		assert.Equal(t, "3.50", c.FormatCurrency(3.5))
		assert.Equal(t, "25%", c.FormatPercent(0.25))
		assert.Empty(t, c.RequestID())
	})
}

func TestContextWithTranslator(t *testing.T) {
	t.Parallel()

	store, err := i18n.New(i18n.WithTranslations("de", i18n.Translations{
		"greeting": "Hallo {{name}}",
		"items":    i18n.Translations{"one": "ein Artikel", "other": "{{count}} Artikel"},
	}))
	require.NoError(t, err)

	day := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

	requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) {
		c.Set(internal.TranslatorKey{}, i18n.NewTranslator(store, "de", "", i18n.FormatFor("de")))
		c.Set(internal.LocaleInfoKey{}, locale.Get("de"))
		c.Set(internal.RequestIDKey{}, "req-1")

		assert.Equal(t, "Hallo Ada", c.T("greeting", i18n.M{"name": "Ada"}))
		assert.Equal(t, "ein Artikel", c.Tn("items", 1))
		assert.Equal(t, "5 Artikel", c.Tn("items", 5))
		assert.Equal(t, "de", c.Locale())
		assert.Equal(t, "1.234,5", c.FormatNumber(1234.5))
		assert.Equal(t, "1.234,50 €", c.FormatCurrency(1234.5))
		assert.Equal(t, "10.03.2024", c.FormatDate(day))
		assert.Equal(t, "10. März 2024 09:30", c.FormatDateTime(day))
		assert.Equal(t, "req-1", c.RequestID())
	})
}

func TestContextError(t *testing.T) {
	t.Parallel()

	requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) {
		err := c.Error(http.StatusConflict, "taken", internal.WithErrorCode("taken"), internal.WithError(errors.New("dup")))
		assert.Equal(t, http.StatusConflict, err.StatusCode())
		assert.Equal(t, "taken", err.Error())
		assert.Equal(t, "taken", err.ErrorCode)
		assert.EqualError(t, err.Unwrap(), "dup")
	})
}
