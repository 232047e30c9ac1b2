// Package handlers holds the JSON endpoints of babeld.
//
// Each handler takes its dependencies in the constructor and declares its
// routes in Routes:
//
//	app := babel.New(
//	    babel.WithMiddleware(middlewares.I18n(catalogs)),
//	    babel.WithHandlers(
//	        handlers.NewTranslate(catalogs),
//	        handlers.NewCatalogAdmin(catalogs, handlers.WithOverrides(store)),
//	        handlers.NewMoment(zones),
//	        handlers.NewZones(zones),
//	        handlers.NewLocales(nil),
//	    ),
//	)
//
// Errors are returned as *babel.HTTPError values with an error code, so
// DefaultErrorHandler can localize them from "errors.<code>".
package handlers
