// Package logger builds *slog.Logger instances with functional options,
// consistent attribute helpers and transparent injection of values stored in
// context.Context.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler from the configured
// Format and wraps it with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.EnvProduction, "token-api"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "token issued", logger.Operation("issue"))
//
// Configuration can also come from the environment:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log, err := logger.NewFromConfig(cfg)
//
// Attribute helpers (Error, Component, Operation, Source, Reason, Size...)
// keep key names consistent. Secrets and raw tokens are never passed to them;
// log sizes and failure reasons instead.
package logger
