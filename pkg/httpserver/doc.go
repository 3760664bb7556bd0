// Package httpserver wraps net/http with graceful shutdown, env-driven
// timeouts, and a readiness handler.
//
// The server does not install its own signal handlers; lifecycle is driven
// entirely by the context passed to Run, so the binary decides which signals
// end the process. When the context is canceled, Run drains in-flight
// requests within the configured shutdown timeout and then returns.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", slog.Any("error", err))
//	}
//
// Run wraps listen errors with ErrStart and shutdown errors with
// ErrShutdown; use errors.Is to distinguish them.
package httpserver
