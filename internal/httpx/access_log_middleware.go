package httpx

import (
	"net/http"
	"strconv"
	"time"

	"bookcatalog/internal/observability"

	"go.uber.org/zap"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	bytesWritten  int64
	headerWritten bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.headerWritten {
		rw.statusCode = code
		rw.headerWritten = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.headerWritten {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += int64(n)
	return n, err
}

func (rw *responseWriter) wroteHeader() bool {
	return rw.headerWritten
}

// AccessLogMiddleware logs one line per request and records the request
// metrics under the matched route pattern. It must wrap the ServeMux
// directly: the mux sets r.Pattern only on the request it is handed.
// A request that panics is logged as a 500 and the panic keeps unwinding
// to RecoveryMiddleware.
func AccessLogMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			completed := false
			defer func() {
				status := rw.statusCode
				if !completed && !rw.headerWritten {
					status = http.StatusInternalServerError
				}

				duration := time.Since(start)
				route := r.Pattern
				if route == "" {
					route = "unmatched"
				}
				observability.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status/100)+"xx").Inc()
				observability.HTTPRequestDuration.WithLabelValues(route).Observe(duration.Seconds())

				logger.Info("access",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("route", route),
					zap.Int("status", status),
					zap.Int64("bytes", rw.bytesWritten),
					zap.Duration("duration", duration),
					zap.String("request_id", RequestIDFrom(r)),
					zap.Bool("panicked", !completed),
				)
			}()

			next.ServeHTTP(rw, r)
			completed = true
		})
	}
}
