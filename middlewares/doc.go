// Package middlewares provides the HTTP middleware of babeld.
//
// # Request ID
//
// RequestID reuses X-Request-ID or X-Correlation-ID from upstream and
// otherwise generates a UUID. Pair it with RequestIDExtractor so every log
// line carries the ID:
//
//	app := babel.New(
//	    babel.WithLogger("babeld", middlewares.RequestIDExtractor()),
//	    babel.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover and Timeout
//
// Recover turns panics into *PanicError (500); Timeout returns
// *TimeoutError (503). Both implement StatusCode, so DefaultErrorHandler
// renders them without a custom error handler.
//
// # I18n
//
// I18n negotiates the request locale from the locale query parameter,
// the X-Locale header, the locale cookie and Accept-Language, in that
// order, against the locales the catalog currently holds:
//
//	babel.WithMiddleware(middlewares.I18n(catalogs))
//
// Any value with a Current() *i18n.I18n method works as the catalog;
// StaticCatalog wraps a fixed store.
//
// # CORS
//
// CORS allows browser clients to fetch catalogs directly. The defaults
// accept any origin and expose Content-Language and X-Catalog-Revision.
//
// # Recommended Order
//
//	babel.WithMiddleware(
//	    middlewares.CORS(),
//	    middlewares.RequestID(),
//	    middlewares.Recover(),
//	    middlewares.Timeout(10*time.Second),
//	    middlewares.I18n(catalogs),
//	)
package middlewares
