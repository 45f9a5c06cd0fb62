package httpx

import (
	"net/http"
	"runtime/debug"

	"cafedeslettres/internal/platform/logging"
)

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*responseWriter)
		if !ok {
			rw = &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		}
		defer func() {
			if err := recover(); err != nil {
				logging.FromContext(r.Context()).
					WithField("panic", err).
					WithField("stack", string(debug.Stack())).
					Error("panic recovered")

				if !rw.wroteHeader() {
					InternalError(rw, r)
				}
			}
		}()
		next.ServeHTTP(rw, r)
	})
}
