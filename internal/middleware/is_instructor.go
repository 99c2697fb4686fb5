package middleware

import (
	"net/http"

	"skyward/qualmatrix/internal/auth"
	"skyward/qualmatrix/internal/constants"
)

// IsInstructorMiddleware admits instructors and admins. Wing scoping of the
// actual write happens below, in auth.CanActOnWing.
func IsInstructorMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())

			if claims != nil && constants.Role(claims.Role()).CanWrite() {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "Forbidden. Need instructor perms", http.StatusForbidden)
		})
	}
}
