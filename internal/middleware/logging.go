package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Logger attaches a request scoped logger to the context and logs every
// request once it completes
func Logger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lctx := logger.With().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote_ip", r.RemoteAddr)
			if id := chimw.GetReqID(r.Context()); id != "" {
				lctx = lctx.Str("request_id", id)
			}
			reqLogger := lctx.Logger()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r.WithContext(reqLogger.WithContext(r.Context())))

			ev := reqLogger.Info()
			if wrapped.statusCode >= http.StatusInternalServerError {
				ev = reqLogger.Error()
			}
			ev.Int("status", wrapped.statusCode).
				Dur("duration", time.Since(start)).
				Int64("bytes", wrapped.written).
				Str("user_agent", r.UserAgent()).
				Msg("request")
		})
	}
}
