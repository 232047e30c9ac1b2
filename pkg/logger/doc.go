// Package logger builds the slog loggers of babeld.
//
// Records are JSON by default and carry request scoped attributes pulled
// from the context at log time:
//
//	log := logger.New(cfg.Log, logger.FromContext("request_id"), logger.FromContext("locale"))
//	ctx = logger.WithAttr(ctx, "locale", "de")
//	log.InfoContext(ctx, "catalog reloaded") // {"msg":"catalog reloaded","locale":"de",...}
//
// NewWithSentry also reports warnings and errors to Sentry when a DSN is
// configured.
package logger
