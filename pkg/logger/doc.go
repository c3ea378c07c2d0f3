// Package logger builds *slog.Logger values for the access service.
//
// New takes functional options that choose the output format and level, add
// static attributes, and register ContextExtractor callbacks. Extractors run
// on every record, so request-scoped values such as the request id or the
// acting principal show up without being passed to each log call.
//
// Attribute helpers (Error, UserID, Role, Permission, RequestID, Component)
// keep key names consistent across packages.
//
// Usage:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "accessd"),
//	    logger.WithContextExtractors(requestIDExtractor),
//	)
//	log.InfoContext(ctx, "catalog loaded", logger.Component("rbac"))
package logger
