// Package db opens the PostgreSQL pool used for translation overrides
// and the job queue, applies embedded goose migrations and runs
// transactions.
//
//	pool, err := db.Connect(ctx, cfg.DB, log)
//	if err != nil {
//		return err
//	}
//	if err := db.Migrate(ctx, pool, catalog.Migrations, cfg.DB.MigrationsTable, log); err != nil {
//		return err
//	}
//	err = db.WithTx(ctx, pool, func(tx pgx.Tx) error {
//		_, err := tx.Exec(ctx, "DELETE FROM translation_overrides WHERE locale = $1", "de")
//		return err
//	})
//
// Configuration comes from DATABASE_* environment variables, see Config.
package db
