package internal_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/internal"
)

type ctxKey struct{}

type localeCode string

type count int

func TestTypedQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?count=3&ratio=0.5&strict=true&name=x&bad=abc", nil)
	requestVia(t, req, nil, func(c internal.Context) {
		assert.Equal(t, 3, internal.Query[int](c, "count"))
		assert.Equal(t, int64(3), internal.Query[int64](c, "count"))
		assert.InDelta(t, 0.5, internal.Query[float64](c, "ratio"), 1e-9)
		assert.True(t, internal.Query[bool](c, "strict"))
		assert.Equal(t, "x", internal.Query[string](c, "name"))
		assert.Equal(t, 0, internal.Query[int](c, "bad"))

		assert.Equal(t, 7, internal.QueryDefault(c, "missing", 7))
		assert.Equal(t, 7, internal.QueryDefault(c, "bad", 7))
		assert.Equal(t, 3, internal.QueryDefault(c, "count", 7))
	})
}

func TestTypedQueryNamedTypes(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?locale=de&count=4", nil)
	requestVia(t, req, nil, func(c internal.Context) {
		assert.Equal(t, localeCode("de"), internal.Query[localeCode](c, "locale"))
		assert.Equal(t, count(4), internal.Query[count](c, "count"))
		assert.Equal(t, localeCode("en"), internal.QueryDefault(c, "missing", localeCode("en")))
	})
}

func TestQueryValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?count=3&without_suffix=maybe&short=true", nil)
	requestVia(t, req, nil, func(c internal.Context) {
		n, ok, err := internal.QueryValue[int](c, "count")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 3, n)

		n, ok, err = internal.QueryValue[int](c, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, n)

		short, ok, err := internal.QueryValue[bool](c, "short")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, short)

		_, ok, err = internal.QueryValue[bool](c, "without_suffix", internal.WithErrorCode("invalid_param"))
		assert.True(t, ok)
		httpErr := internal.AsHTTPError(err)
		require.NotNil(t, httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Equal(t, "invalid_param", httpErr.ErrorCode)
		assert.Equal(t, "without_suffix must be a boolean", httpErr.Message)
		assert.Error(t, httpErr.Err)
	})
}

func TestTypedParam(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	requestVia(t, req, nil, func(c internal.Context) {
		assert.Equal(t, 42, internal.Param[int](c, "id"))
		assert.Equal(t, "42", internal.Param[string](c, "id"))
		assert.False(t, internal.Param[bool](c, "id"))
	})
}

func TestContextValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	requestVia(t, req, nil, func(c internal.Context) {
		assert.Empty(t, internal.ContextValue[string](c, ctxKey{}))
		c.Set(ctxKey{}, "value")
		assert.Equal(t, "value", internal.ContextValue[string](c, ctxKey{}))
		assert.Equal(t, 0, internal.ContextValue[int](c, ctxKey{}))
	})
}
