package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tillpoint/posaccess/pkg/logger"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// Liveness answers 200 "ALIVE" for as long as the process can serve.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// Readiness runs every check concurrently with timeout applied to the
// request context. It answers 200 "READY" when all pass and
// 503 "NOT_READY" otherwise. Failures are logged by check name.
func Readiness(log *slog.Logger, timeout time.Duration, checks map[string]Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		var g errgroup.Group
		for name, check := range checks {
			g.Go(func() error {
				if err := check(ctx); err != nil {
					log.ErrorContext(ctx, "readiness check failed", slog.String("check", name), logger.Error(err))
					return err
				}
				return nil
			})
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := g.Wait(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
