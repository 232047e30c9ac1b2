// Package health serves the liveness and readiness endpoints of babeld.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"postgres": db.Healthcheck(pool),
//		"redis":    redis.Healthcheck(client),
//	}, health.WithInfo(func(context.Context) map[string]any {
//		return map[string]any{"catalog_revision": catalogs.Revision()}
//	})))
package health
