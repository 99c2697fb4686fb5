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

// ListWingSkills handles GET /api/v1/wings/{wing_id}/skills
func (h *Handlers) ListWingSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		wingID := chi.URLParam(r, "wing_id")

		if !auth.CanViewWing(claims, wingID) {
			respondWithError(w, http.StatusForbidden, "Forbidden: not a member of this wing")
			return
		}

		skills, err := h.deps.Repo.Skills.ListSkillsByWing(r.Context(), wingID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &skills)
	}
}

// CreateSkill handles POST /api/v1/wings/{wing_id}/skills
func (h *Handlers) CreateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		wingID := chi.URLParam(r, "wing_id")

		if !auth.CanActOnWing(claims, wingID) {
			respondWithError(w, http.StatusForbidden, "Forbidden: wing mismatch")
			return
		}

		var req dtos.CreateSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		name := strings.TrimSpace(req.Name)
		if name == "" {
			respondWithError(w, http.StatusBadRequest, "skill name is required")
			return
		}

		skill, err := h.deps.Repo.Skills.InsertSkill(r.Context(), wingID, name, strings.TrimSpace(req.Category), req.SortOrder)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, skill)
	}
}

// UpdateSkill handles PUT /api/v1/skills/{skill_id}
func (h *Handlers) UpdateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		skillID := chi.URLParam(r, "skill_id")

		skill, err := h.deps.Repo.Skills.FindSkillByID(r.Context(), skillID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		if !auth.CanActOnWing(claims, skill.WingID) {
			respondWithError(w, http.StatusForbidden, "Forbidden: wing mismatch")
			return
		}

		var req dtos.UpdateSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		name := strings.TrimSpace(req.Name)
		if name == "" {
			respondWithError(w, http.StatusBadRequest, "skill name is required")
			return
		}

		if err := h.deps.Repo.Skills.UpdateSkill(r.Context(), skillID, name, strings.TrimSpace(req.Category), req.SortOrder); err != nil {
			respondServiceError(w, err)
			return
		}
		skill.Name = name
		skill.Category = strings.TrimSpace(req.Category)
		skill.SortOrder = req.SortOrder
		respondWithSuccess(w, http.StatusOK, skill)
	}
}

// DeleteSkill handles DELETE /api/v1/skills/{skill_id}
func (h *Handlers) DeleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		skillID := chi.URLParam(r, "skill_id")

		skill, err := h.deps.Repo.Skills.FindSkillByID(r.Context(), skillID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		if !auth.CanActOnWing(claims, skill.WingID) {
			respondWithError(w, http.StatusForbidden, "Forbidden: wing mismatch")
			return
		}

		if err := h.deps.Repo.Skills.DeleteSkill(r.Context(), skillID); err != nil {
			respondServiceError(w, err)
			return
		}
		h.deps.Services.Cache.Delete(constants.WingReadinessKey(skill.WingID))
		w.WriteHeader(http.StatusNoContent)
	}
}
