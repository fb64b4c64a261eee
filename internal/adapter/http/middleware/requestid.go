package middleware

import (
	"net/http"

	"github.com/google/uuid"

	wrap "github.com/voo-mobility/fare-service/pkg/logger/wrapper"
)

const requestIDHeader = "X-Request-Id"

// RequestID attaches an identifier to every request. An incoming header is
// reused so callers can correlate their own traces.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := wrap.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
