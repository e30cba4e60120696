package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"authgate/internal/gate"
	"authgate/pkg/requestcontext"
)

// Authorizer produces a verdict for an inbound request.
type Authorizer interface {
	Authorize(ctx context.Context, headers map[string][]string) gate.Verdict
}

// RequireAuthorization gates every wrapped handler behind an authorization verdict.
// Denied requests get a 401 JSON body carrying the verdict reason and the handler is
// never invoked; allowed requests proceed with the caller identity in the context for
// display and logging.
func RequireAuthorization(authorizer Authorizer, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			verdict := authorizer.Authorize(ctx, r.Header)
			if !verdict.Allowed {
				writeDenied(ctx, w, logger, verdict.Reason)
				return
			}

			ctx = requestcontext.WithSubject(ctx, verdict.Identity.SubjectID, verdict.Identity.DisplayKey)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeDenied(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	err := json.NewEncoder(w).Encode(map[string]string{
		"error":             "unauthorized",
		"error_description": reason,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to write unauthorized response",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}
