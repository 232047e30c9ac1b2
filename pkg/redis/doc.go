// Package redis opens the go-redis client behind the shared catalog
// payload cache.
//
//	client, err := redis.Open(ctx, cfg.RedisURL, redis.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	app := babel.New(
//		babel.WithHealthChecks(babel.WithReadinessCheck("redis", redis.Healthcheck(client))),
//	)
//	err = app.Run(addr, babel.ShutdownHook(redis.Shutdown(client)))
package redis
