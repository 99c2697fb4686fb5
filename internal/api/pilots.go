package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"skyward/qualmatrix/internal/auth"
	"skyward/qualmatrix/internal/constants"
	"skyward/qualmatrix/internal/models/dtos"
)

// ListWingPilots handles GET /api/v1/wings/{wing_id}/pilots
func (h *Handlers) ListWingPilots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		wingID := chi.URLParam(r, "wing_id")

		if !auth.CanViewWing(claims, wingID) {
			respondWithError(w, http.StatusForbidden, "Forbidden: not a member of this wing")
			return
		}

		pilots, err := h.deps.Repo.Pilots.ListPilotsByWing(r.Context(), wingID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &pilots)
	}
}

// GetWingMatrix handles GET /api/v1/wings/{wing_id}/matrix
func (h *Handlers) GetWingMatrix() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		wingID := chi.URLParam(r, "wing_id")

		if !auth.CanViewWing(claims, wingID) {
			respondWithError(w, http.StatusForbidden, "Forbidden: not a member of this wing")
			return
		}

		matrix, err := h.deps.Services.Qualifications.WingMatrix(r.Context(), wingID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, matrix)
	}
}

// CreatePilot handles POST /api/v1/wings/{wing_id}/pilots. When a username
// is supplied the linked login record is created in the same transaction.
func (h *Handlers) CreatePilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		wingID := chi.URLParam(r, "wing_id")

		if !auth.CanActOnWing(claims, wingID) {
			respondWithError(w, http.StatusForbidden, "Forbidden: wing mismatch")
			return
		}

		var req dtos.CreatePilotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		callsign := strings.TrimSpace(req.Callsign)
		if callsign == "" {
			respondWithError(w, http.StatusBadRequest, "callsign is required")
			return
		}

		role := constants.Role(strings.ToLower(strings.TrimSpace(req.Role)))
		switch role {
		case "":
			role = constants.RolePilot
		case constants.RolePilot, constants.RoleInstructor, constants.RoleAdmin:
		default:
			respondWithError(w, http.StatusBadRequest, "invalid role")
			return
		}
		// Only admins may mint other admins.
		if role == constants.RoleAdmin && constants.Role(claims.Role()) != constants.RoleAdmin {
			respondWithError(w, http.StatusForbidden, "Forbidden: need admin perms to create an admin")
			return
		}

		pilot, err := h.deps.Repo.Pilots.InsertPilotWithUser(r.Context(), wingID, callsign, role, strings.TrimSpace(req.Username))
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, pilot)
	}
}

// RenamePilot handles PUT /api/v1/pilots/{pilot_id}
func (h *Handlers) RenamePilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		pilotID := chi.URLParam(r, "pilot_id")

		pilot, err := h.deps.Repo.Pilots.FindPilotByID(r.Context(), pilotID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		if !auth.CanActOnWing(claims, pilot.WingID) {
			respondWithError(w, http.StatusForbidden, "Forbidden: wing mismatch")
			return
		}

		var req dtos.RenamePilotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		callsign := strings.TrimSpace(req.Callsign)
		if callsign == "" {
			respondWithError(w, http.StatusBadRequest, "callsign is required")
			return
		}

		if err := h.deps.Repo.Pilots.RenamePilot(r.Context(), pilotID, callsign); err != nil {
			respondServiceError(w, err)
			return
		}
		pilot.Callsign = callsign
		respondWithSuccess(w, http.StatusOK, pilot)
	}
}

// DeletePilot handles DELETE /api/v1/pilots/{pilot_id}. Qualifications and
// any linked user go with the pilot, in one transaction.
func (h *Handlers) DeletePilot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		pilotID := chi.URLParam(r, "pilot_id")

		pilot, err := h.deps.Repo.Pilots.FindPilotByID(r.Context(), pilotID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		if !auth.CanActOnWing(claims, pilot.WingID) {
			respondWithError(w, http.StatusForbidden, "Forbidden: wing mismatch")
			return
		}

		if err := h.deps.Repo.Pilots.DeletePilotCascade(r.Context(), pilotID); err != nil {
			respondServiceError(w, err)
			return
		}
		h.deps.Services.Cache.Delete(constants.WingReadinessKey(pilot.WingID))
		w.WriteHeader(http.StatusNoContent)
	}
}
