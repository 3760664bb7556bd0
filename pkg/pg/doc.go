// Package pg provides utilities for interacting with PostgreSQL using the
// pgx/v5 driver. It offers a thin layer over connection pooling, goose schema
// migrations, health checks and common error helpers so the application can
// bootstrap its database with a few lines of code.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//	    // handle error
//	}
//
// The helpers are intentionally decoupled: Connect only needs the connection
// settings, Migrate only the migrations path, and Healthcheck returns a
// func(context.Context) error closure suitable for health endpoints.
package pg
