package httpx

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"cafedeslettres/internal/platform/logging"
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

// AccessLogMiddleware logs one line per request. The member id is only known
// after authentication runs deeper in the chain, so it is read back from the
// context the handler saw.
func AccessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		var userID string
		captured := r.WithContext(withUserSink(r.Context(), &userID))
		next.ServeHTTP(rw, captured)

		entry := logging.FromContext(r.Context()).WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"bytes":       rw.bytesWritten,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if userID != "" {
			entry = entry.WithField("user_id", userID)
		}

		switch {
		case rw.statusCode >= http.StatusInternalServerError:
			entry.Error("access")
		case rw.statusCode >= http.StatusBadRequest:
			entry.Warn("access")
		default:
			entry.Info("access")
		}
	})
}
