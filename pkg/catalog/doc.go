// Package catalog assembles the live translation store from several
// sources and swaps it atomically on reload.
//
// Sources are merged in registration order. A typical service registers
// the bundled files first, then bundles uploaded to object storage, then
// per-key overrides kept in Postgres:
//
//	m, err := catalog.NewManager(
//		catalog.WithSource(catalog.NewFSSource("files", os.DirFS("locales"))),
//		catalog.WithSource(catalog.NewStorageSource(s3, "catalogs")),
//		catalog.WithSource(catalog.NewPostgresSource(pool)),
//		catalog.WithI18nOptions(i18n.WithDefaultLocale("en")),
//	)
//	if err := m.Reload(ctx); err != nil { ... }
//	m.Current().T("de", "greeting")
//
// A failed reload keeps serving the previous store. Status reports the
// live revision and the last failure.
//
// Store writes overrides; its OnChange hook runs in the same transaction,
// which is where EnqueueReload queues a reload job. ReloadTask runs Reload
// on a cron schedule through package job. With BroadcastTo it announces
// the reload with pg_notify instead, and a Listener in every replica
// reloads that replica's Manager.
package catalog
