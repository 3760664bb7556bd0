// Package logger builds configured *slog.Logger instances.
//
// It is a thin factory over log/slog: pick an output format (JSON for
// production aggregation, text for local development), a level, an output
// writer and optional static attributes, and get back a ready-to-use logger.
//
// Usage:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelInfo),
//	    logger.WithAttr(slog.String("service", "inkwell")),
//	)
//	log.Info("server starting", "port", 8080)
package logger
