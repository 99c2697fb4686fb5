package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"skyward/qualmatrix/internal/auth"
)

// GetWingReadiness handles GET /api/v1/wings/{wing_id}/readiness
func (h *Handlers) GetWingReadiness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		wingID := chi.URLParam(r, "wing_id")

		if !auth.CanViewWing(claims, wingID) {
			respondWithError(w, http.StatusForbidden, "Forbidden: not a member of this wing")
			return
		}

		report, err := h.deps.Services.Readiness.WingReadiness(r.Context(), wingID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, report)
	}
}

// GetGlobalReadiness handles GET /api/v1/readiness (admin only, gated by route group)
func (h *Handlers) GetGlobalReadiness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := h.deps.Services.Readiness.GlobalReadiness(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, report)
	}
}
