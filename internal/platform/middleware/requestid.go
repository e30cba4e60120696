package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"authgate/pkg/requestcontext"
)

// RequestID attaches a correlation ID to every request, reusing the upstream
// X-Request-Id when present. This middleware should be applied early in the chain.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
