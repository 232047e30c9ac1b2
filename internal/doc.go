// Package internal holds the HTTP core of babeld.
//
// Import "github.com/dmitrymomot/babel" instead; it re-exports the
// public API.
//
// # Core Types
//
//   - App: routing, middleware, health checks, workers and graceful shutdown
//   - Context: request and response access, JSON binding, logging, jobs and
//     the negotiated locale
//   - Router: the interface handlers use to declare routes
//   - Handler: a type that declares routes on a Router
//   - HandlerFunc: a route handler that returns an error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: renders errors returned by handlers
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed to the catalog store,
// pgx or any other API that takes a context:
//
//	func (h *Catalog) put(c internal.Context) error {
//	    if err := h.store.Put(c, c.Param("locale"), c.Param("*"), value); err != nil {
//	        return err
//	    }
//	    return c.NoContent(http.StatusNoContent)
//	}
//
// # Locale
//
// The I18n middleware negotiates one locale per request and stores a
// Translator. Context then exposes T, Tn, the number formatters and
// FormatDate/FormatDateTime in that locale. Without the middleware, T and
// Tn return the key.
//
// # Errors
//
// DefaultErrorHandler renders every error as
//
//	{"error":{"status":404,"message":"...","code":"key_not_found","request_id":"..."}}
//
// HTTPError values keep their status. An ErrorCode doubles as the i18n
// key "errors.<code>", so messages come back in the caller's language
// when the catalog has them.
//
// # Server Runtime
//
//	err := app.Run(":8080",
//	    internal.Logger(log),
//	    internal.StartupHook(catalogs.Reload),
//	    internal.ShutdownHook(db.Shutdown(pool)),
//	)
//
// Job workers registered with WithJobs start before the startup hooks and
// stop after the HTTP server drains.
package internal
