package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skyward/qualmatrix/internal/auth"
	"skyward/qualmatrix/internal/models/dtos"
)

// SetQualification handles PUT /api/v1/pilots/{pilot_id}/skills/{skill_id}
func (h *Handlers) SetQualification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		var req dtos.SetQualificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		err := h.deps.Services.Qualifications.SetQualification(
			r.Context(),
			claims,
			chi.URLParam(r, "pilot_id"),
			chi.URLParam(r, "skill_id"),
			req.Status,
		)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		h.deps.Metrics.QualificationUpserts.Inc()
		status := req.Status
		respondWithSuccess(w, http.StatusOK, &status)
	}
}

// RemoveQualification handles DELETE /api/v1/pilots/{pilot_id}/skills/{skill_id}.
// The pair reverts to implicit NMQ.
func (h *Handlers) RemoveQualification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		err := h.deps.Services.Qualifications.RemoveQualification(
			r.Context(),
			claims,
			chi.URLParam(r, "pilot_id"),
			chi.URLParam(r, "skill_id"),
		)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
