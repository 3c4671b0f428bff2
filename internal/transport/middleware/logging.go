package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/frahmantamala/expense-tracker/pkg/logger"
)

// redactedParams are query parameters whose values are replaced before logging.
var redactedParams = []string{
	"search",
}

// LoggingMiddleware logs one line per request with status, size and latency.
// It reads the request-scoped logger so the trace id set by RequestID is kept.
func LoggingMiddleware(fallback *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lg := fallback
			if logger.TraceID(r.Context()) != "" {
				lg = logger.From(r.Context())
			}

			ww := &responseWriter{ResponseWriter: w}
			next.ServeHTTP(ww, r)

			logResponse(lg, r, ww, time.Since(start))
		})
	}
}

// responseWriter records the status code and byte count of a response.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if rw.statusCode == 0 {
		rw.statusCode = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

func logResponse(lg *slog.Logger, r *http.Request, rw *responseWriter, duration time.Duration) {
	statusCode := rw.statusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	logLevel := slog.LevelInfo
	if statusCode >= 400 && statusCode < 500 {
		logLevel = slog.LevelWarn
	} else if statusCode >= 500 {
		logLevel = slog.LevelError
	}

	lg.Log(r.Context(), logLevel, "http request",
		"method", r.Method,
		"path", r.URL.Path,
		"query", redactQuery(r.URL.Query()),
		"remote_addr", r.RemoteAddr,
		"status_code", statusCode,
		"duration_ms", duration.Milliseconds(),
		"response_size", rw.size,
	)
}

// redactQuery masks free-text parameters, which may carry personal notes.
func redactQuery(values url.Values) string {
	if len(values) == 0 {
		return ""
	}
	for _, name := range redactedParams {
		if values.Has(name) {
			values.Set(name, "redacted")
		}
	}
	return values.Encode()
}
