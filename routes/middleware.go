package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// requestLogger tags each request with an id and logs method, path and timing
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestId := uuid.NewString()
		w.Header().Set("X-Request-Id", requestId)
		next.ServeHTTP(w, r)
		slog.Info("Request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", requestId),
			slog.String("duration", time.Since(start).String()),
		)
	})
}
