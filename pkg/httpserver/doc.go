// Package httpserver runs the access service HTTP listener.
//
// Server binds the listener eagerly, serves a handler until the context is
// cancelled or SIGINT/SIGTERM arrives, then drains in-flight requests within
// the configured shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Liveness and Readiness build the probe handlers mounted at /healthz and
// /readyz. Readiness runs its named checks concurrently.
package httpserver
