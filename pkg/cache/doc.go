// Package cache holds fetched catalog payloads between reloads.
//
// Two backends implement [Cache]: [Memory] for a single process and
// [Redis] when several replicas should share one copy. Object storage
// payloads are cached as raw bytes with the [Raw] codec:
//
//	c := cache.NewRedis[[]byte](client, cache.Raw{}, cache.WithPrefix("babel:bundles"))
//	data, err := cache.GetOrSet(ctx, c, "locales/de.yaml", func(ctx context.Context) ([]byte, time.Duration, error) {
//		b, err := fetch(ctx)
//		return b, 10 * time.Minute, err
//	})
//
// Lookups of absent or expired keys return [ErrNotFound].
package cache
