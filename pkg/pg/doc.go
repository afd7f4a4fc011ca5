// Package pg opens the PostgreSQL pool used by session.PGStore and applies
// the goose migrations that create the sessions table.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	cfg.MigrationsPath = "."
//	if err := pg.Migrate(ctx, pool, cfg, log, pg.WithMigrationsFS(migrations.FS)); err != nil {
//		return err
//	}
//
// Connect retries with a growing delay while the database is starting.
// Healthcheck adapts the pool to a readiness check. IsNotFoundError and
// IsUndefinedTableError classify driver errors.
package pg
