package internal_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/babel/internal"
)

type funcHandler func(r internal.Router)

func (f funcHandler) Routes(r internal.Router) { f(r) }

// requestVia serves req through an App whose only route runs fn for any
// path, and returns the recorded response.
func requestVia(t *testing.T, req *http.Request, opts []internal.Option, fn func(c internal.Context)) *httptest.ResponseRecorder {
	t.Helper()

	h := funcHandler(func(r internal.Router) {
		r.GET("/*", func(c internal.Context) error {
			fn(c)
			return nil
		})
		r.GET("/items/{id}", func(c internal.Context) error {
			fn(c)
			return nil
		})
	})
	app := internal.New(append(opts, internal.WithHandlers(h))...)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}
