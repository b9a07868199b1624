// Package pg wires the notification store to PostgreSQL: a pgx/v5 connection
// pool with startup retry, goose schema migrations, a health check closure
// and the error classification helpers the storage adapter relies on.
//
// The pieces are deliberately decoupled. Connect opens the pool, Migrate
// brings the schema up to date before anything queries it, and the Is*Error
// helpers translate driver errors into the domain's "not found" and conflict
// semantics.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//	storage := notifications.NewPGStorage(pool)
package pg
