package api

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"skyward/qualmatrix/internal/auth"
	"skyward/qualmatrix/internal/models/dtos"
	gormModels "skyward/qualmatrix/internal/models/gorm"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// GetCategoryColors handles GET /api/v1/wings/{wing_id}/colors
func (h *Handlers) GetCategoryColors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		wingID := chi.URLParam(r, "wing_id")

		if !auth.CanViewWing(claims, wingID) {
			respondWithError(w, http.StatusForbidden, "Forbidden: not a member of this wing")
			return
		}

		colors, err := h.deps.Repo.CategoryColors.ListByWing(r.Context(), wingID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		entries := make([]dtos.CategoryColorEntry, 0, len(colors))
		for _, c := range colors {
			entries = append(entries, dtos.CategoryColorEntry{
				Category:  c.Category,
				Color:     c.Color,
				SortOrder: c.SortOrder,
			})
		}
		respondWithSuccess(w, http.StatusOK, &entries)
	}
}

// SetCategoryColors handles PUT /api/v1/wings/{wing_id}/colors, upserting
// per (wing, category).
func (h *Handlers) SetCategoryColors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		wingID := chi.URLParam(r, "wing_id")

		if !auth.CanActOnWing(claims, wingID) {
			respondWithError(w, http.StatusForbidden, "Forbidden: wing mismatch")
			return
		}

		var req dtos.SetCategoryColorsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		colors := make([]gormModels.CategoryColor, 0, len(req.Colors))
		for _, entry := range req.Colors {
			if entry.Category == "" || !hexColorPattern.MatchString(entry.Color) {
				respondWithError(w, http.StatusBadRequest, "category and hex color are required")
				return
			}
			colors = append(colors, gormModels.CategoryColor{
				WingID:    wingID,
				Category:  entry.Category,
				Color:     entry.Color,
				SortOrder: entry.SortOrder,
			})
		}

		if err := h.deps.Repo.CategoryColors.UpsertColors(r.Context(), colors); err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &req.Colors)
	}
}
