package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"skyward/qualmatrix/internal/models/dtos"
	"skyward/qualmatrix/internal/models/entities"
)

// ListWings handles GET /api/v1/wings
func (h *Handlers) ListWings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wings, err := h.deps.Repo.Wings.ListWings(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &wings)
	}
}

// GetWing handles GET /api/v1/wings/{wing_id}
func (h *Handlers) GetWing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wing, err := h.deps.Repo.Wings.FindWingByID(r.Context(), chi.URLParam(r, "wing_id"))
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, wing)
	}
}

// CreateWing handles POST /api/v1/wings (admin). Duplicate names surface as 409.
func (h *Handlers) CreateWing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateWingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		name := strings.TrimSpace(req.Name)
		if name == "" {
			respondWithError(w, http.StatusBadRequest, "wing name is required")
			return
		}

		wing, err := h.deps.Repo.Wings.InsertWing(r.Context(), name)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, wing)
	}
}

// RenameWing handles PUT /api/v1/wings/{wing_id} (admin)
func (h *Handlers) RenameWing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.RenameWingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		name := strings.TrimSpace(req.Name)
		if name == "" {
			respondWithError(w, http.StatusBadRequest, "wing name is required")
			return
		}

		wingID := chi.URLParam(r, "wing_id")
		if err := h.deps.Repo.Wings.RenameWing(r.Context(), wingID, name); err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &entities.Wing{ID: wingID, Name: name})
	}
}

// DeleteWing handles DELETE /api/v1/wings/{wing_id} (admin). Cascades to
// pilots, skills, qualifications and linked users in one transaction.
func (h *Handlers) DeleteWing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.deps.Repo.Wings.DeleteWingCascade(r.Context(), chi.URLParam(r, "wing_id")); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
