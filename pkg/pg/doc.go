// Package pg provides PostgreSQL helpers built on github.com/jackc/pgx/v5.
//
// Connect opens a pgxpool with linear retry backoff, Healthcheck wraps Ping,
// and Migrate applies the embedded goose migrations that create the
// token_secrets table:
//
//	CREATE TABLE token_secrets (name TEXT PRIMARY KEY, value BYTEA NOT NULL, ...)
//
// secretsource.Postgres reads the signing secret from that table.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    log.Fatal(err)
//	}
//
//	src, err := secretsource.NewPostgres(pool, "signing")
package pg
