package internal

// Handler declares routes on a router.
//
// Example:
//
//	type TranslateHandler struct {
//	    catalogs *catalog.Manager
//	}
//
//	func (h *TranslateHandler) Routes(r babel.Router) {
//	    r.GET("/v1/translate/{key}", h.translate)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
//
// Example:
//
//	func RequireLocale(next babel.HandlerFunc) babel.HandlerFunc {
//	    return func(c babel.Context) error {
//	        if c.Locale() == "" {
//	            return c.Error(http.StatusBadRequest, "locale required")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
