// Package http exposes the demo protected endpoints. Everything here is glue: the
// handlers consume the gate's verdict through the middleware and contain no identity
// or permission logic of their own.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"authgate/pkg/requestcontext"
)

// Handler wires protected endpoints to their dependencies.
type Handler struct {
	logger *slog.Logger
}

// NewHandler constructs the transport handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleData serves the protected business data. By the time this runs the gate has
// allowed the request; the identity in context is informational only.
func (h *Handler) handleData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	writeJSON(w, http.StatusOK, map[string]string{
		"subject": requestcontext.SubjectID(ctx),
		"display": requestcontext.DisplayKey(ctx),
		"message": "authorized content",
	})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
