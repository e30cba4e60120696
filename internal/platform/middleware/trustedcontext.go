package middleware

import (
	"net/http"

	"authgate/pkg/requestcontext"
)

// TrustedContext records the platform-injected caller identity for the invocation.
//
// The fronting identity platform authenticates callers over its own transport and
// forwards the resulting subject in a header it strips from all external traffic.
// That binding is what makes the value trustworthy; this middleware must only be
// mounted behind such a platform, with headerName matching its configuration. With an
// empty headerName the trusted-context path is disabled and resolution always goes
// through bearer verification.
func TrustedContext(headerName, issuer string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if headerName != "" {
				if subject := r.Header.Get(headerName); subject != "" {
					ctx := requestcontext.WithTrustedSubject(r.Context(), subject, issuer)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
