package access

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/tillpoint/posaccess/pkg/logger"
)

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}

// RequestIDExtractor adds the chi request id to log records written with a
// request context. Pass it to logger.WithContextExtractors.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id := middleware.GetReqID(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return logger.RequestID(id), true
}
