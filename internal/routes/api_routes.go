package routes

import (
	"github.com/go-chi/chi/v5"

	"skyward/qualmatrix/internal/api"
	"skyward/qualmatrix/internal/middleware"
)

// RegisterAPIRoutes mounts the versioned API. Everything under /api/v1
// requires an authenticated caller; mutations additionally require the
// instructor role and destructive wing operations the admin role.
func RegisterAPIRoutes(r chi.Router, jwtSecret []byte, h *api.Handlers, deps *api.Dependencies) {

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(jwtSecret, deps.Repo.UserGorm, deps.Repo.Keys))

		// read surface, any authenticated role
		r.Get("/wings", h.ListWings())
		r.Get("/wings/{wing_id}", h.GetWing())
		r.Get("/wings/{wing_id}/pilots", h.ListWingPilots())
		r.Get("/wings/{wing_id}/skills", h.ListWingSkills())
		r.Get("/wings/{wing_id}/matrix", h.GetWingMatrix())
		r.Get("/wings/{wing_id}/colors", h.GetCategoryColors())
		r.Get("/wings/{wing_id}/readiness", h.GetWingReadiness())

		// instructor and admin writes
		r.Group(func(r chi.Router) {
			r.Use(middleware.IsInstructorMiddleware())
			r.Use(middleware.RateLimitMiddleware)

			r.Post("/qualifications/import", h.ImportQualifications())

			r.Put("/pilots/{pilot_id}/skills/{skill_id}", h.SetQualification())
			r.Delete("/pilots/{pilot_id}/skills/{skill_id}", h.RemoveQualification())

			r.Post("/wings/{wing_id}/pilots", h.CreatePilot())
			r.Put("/pilots/{pilot_id}", h.RenamePilot())
			r.Delete("/pilots/{pilot_id}", h.DeletePilot())

			r.Post("/wings/{wing_id}/skills", h.CreateSkill())
			r.Put("/skills/{skill_id}", h.UpdateSkill())
			r.Delete("/skills/{skill_id}", h.DeleteSkill())

			r.Put("/wings/{wing_id}/colors", h.SetCategoryColors())

			// admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.IsAdminMiddleware())

				r.Post("/wings", h.CreateWing())
				r.Put("/wings/{wing_id}", h.RenameWing())
				r.Delete("/wings/{wing_id}", h.DeleteWing())

				r.Post("/qualifications/backfill", h.BackfillQualifications())
				r.Get("/readiness", h.GetGlobalReadiness())
			})
		})
	})
}
