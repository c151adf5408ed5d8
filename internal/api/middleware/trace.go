// Package middleware contains HTTP middleware for the inspection server.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/api/shared"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/platform/logger"
)

// NewTraceMiddleware adds a trace ID to the request context and stores a
// logger carrying it, so handlers using logger.FromContextOrDefault log
// with the trace ID attached. Apply it early in the chain.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			reqLog := log.With(slog.String("trace_id", shared.GetTraceID(ctx)))

			reqLog.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(logger.WithLogger(ctx, reqLog)))
		})
	}
}
