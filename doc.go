// Package babel is a localization service: it loads translation catalogs
// from files, object storage and Postgres, serves them over a JSON API,
// and formats dates, relative times and time zones in the caller's
// language.
//
// The building blocks live in pkg/:
//
//   - i18n: nested catalogs, fallback chains, plural rules and
//     interpolation
//   - catalog: sources, hot reloads and database overrides
//   - moment: parsing, formatting and manipulating dates with locales
//   - locale: calendar vocabulary (month names, ordinals, relative time)
//   - tz: IANA zone histories in the packed format
//
// This package wires them into an HTTP app. The babeld command is the
// complete server.
//
// # Quick Start
//
//	catalogs, _ := catalog.NewManager(
//	    catalog.WithSource(catalog.NewFSSource("files", os.DirFS("locales"))),
//	    catalog.WithI18nOptions(i18n.WithDefaultLocale("en")),
//	)
//
//	app := babel.New(
//	    babel.WithLogger("babeld", middlewares.RequestIDExtractor()),
//	    babel.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.I18n(catalogs),
//	    ),
//	    babel.WithHandlers(
//	        handlers.NewTranslate(catalogs),
//	        handlers.NewCatalogAdmin(catalogs),
//	    ),
//	    babel.WithHealthChecks(),
//	)
//
//	if err := app.Run(":8080", babel.StartupHook(catalogs.Reload)); err != nil {
//	    log.Fatal(err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	type Greeting struct{}
//
//	func (h *Greeting) Routes(r babel.Router) {
//	    r.GET("/hello", h.hello)
//	}
//
//	func (h *Greeting) hello(c babel.Context) error {
//	    return c.String(http.StatusOK, c.T("greeting", babel.M{"name": "Ada"}))
//	}
//
// # Errors
//
// Return an [HTTPError] with an error code; [DefaultErrorHandler] renders
// it as JSON and translates the message from "errors.<code>":
//
//	return babel.ErrNotFound("locale not found", babel.WithErrorCode("locale_not_found"))
//
// # Shutdown
//
// Run handles SIGINT/SIGTERM. Job workers stop after the HTTP server
// drains, then shutdown hooks run in order:
//
//	app.Run(":8080", babel.ShutdownHook(db.Shutdown(pool)))
package babel
