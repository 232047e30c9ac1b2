package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/babel/internal"
	"github.com/dmitrymomot/babel/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	tests := []struct {
		name  string
		value any
	}{
		{"string", "catalog exploded"},
		{"error", errBoom},
		{"int", 42},
		{"struct", struct{ Key string }{"greeting"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
			err := middlewares.Recover()(func(internal.Context) error { panic(tt.value) })(c)

			pe, ok := middlewares.AsPanicError(err)
			require.True(t, ok)
			assert.Equal(t, tt.value, pe.Value)
			assert.NotEmpty(t, pe.Stack)
			assert.Equal(t, http.StatusInternalServerError, pe.StatusCode())
		})
	}
}

func TestRecoverPassThrough(t *testing.T) {
	t.Parallel()

	errHandler := errors.New("handler failed")
	c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.NoError(t, middlewares.Recover()(func(internal.Context) error { return nil })(c))

	err := middlewares.Recover()(func(internal.Context) error { return errHandler })(c)
	require.ErrorIs(t, err, errHandler)
	assert.False(t, middlewares.IsPanicError(err))
}

func TestRecoverOptions(t *testing.T) {
	t.Parallel()

	c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	boom := func(internal.Context) error { panic("boom") }

	pe, ok := middlewares.AsPanicError(middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(boom)(c))
	require.True(t, ok)
	assert.Nil(t, pe.Stack)

	pe, ok = middlewares.AsPanicError(middlewares.Recover(middlewares.WithRecoverStackSize(64))(boom)(c))
	require.True(t, ok)
	assert.LessOrEqual(t, len(pe.Stack), 64)
	assert.NotEmpty(t, pe.Stack)
}

func TestRecoverPanicNil(t *testing.T) {
	t.Parallel()

	c := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	err := middlewares.Recover()(func(internal.Context) error { panic(nil) })(c)

	pe, ok := middlewares.AsPanicError(err)
	require.True(t, ok)
	var pne *runtime.PanicNilError
	assert.ErrorAs(t, pe.Value.(error), &pne)
}

func TestRecoverRendersInternalError(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithMiddleware(middlewares.Recover()),
		internal.WithHandlers(funcHandler(func(r internal.Router) {
			r.GET("/", func(internal.Context) error { panic("secret detail") })
		})),
	)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"status":500,"message":"Internal Server Error"}}`, rec.Body.String())
}
