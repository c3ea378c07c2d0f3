// Package pg opens pgx connection pools and applies goose migrations.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, customrole.Migrations, log); err != nil {
//	    return err
//	}
//
// Migrations are read from an fs.FS, usually an embed.FS owned by the
// package whose tables they create. Healthcheck adapts the pool to a
// readiness check, and the Is*Error helpers classify pgx errors.
package pg
