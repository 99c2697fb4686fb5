package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"skyward/qualmatrix/internal/auth"
	"skyward/qualmatrix/internal/constants"
	"skyward/qualmatrix/internal/db/repositories"
)

// AuthMiddleware authenticates every request from either a bearer JWT
// (issued by the external token service; verified HS256 only) or an API key
// paired with an X-User-Id header for service callers.
func AuthMiddleware(jwtSecret []byte, userRepo *repositories.UserRepositoryGORM, keysRepo *repositories.KeysRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			var claims auth.UserClaims

			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				tokenString := strings.TrimPrefix(authHeader, "Bearer ")
				parsed, err := parseBearerToken(tokenString, jwtSecret)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
					return
				}
				claims = parsed

			case apiKey != "":
				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
					return
				}

				if !keyRes.Status {
					http.Error(w, "Unauthorized. Inactive API Key", http.StatusUnauthorized)
					return
				}

				userID := r.Header.Get("X-User-Id")
				user, err := userRepo.GetUserByID(r.Context(), userID)
				if err != nil || !user.IsActive {
					http.Error(w, "Unauthorized. Unknown user", http.StatusUnauthorized)
					return
				}

				wingID := ""
				if user.WingID != nil {
					wingID = *user.WingID
				}
				claims = &auth.APIKeyClaims{
					UserUUID:  user.ID,
					RoleValue: user.Role,
					WingUUID:  wingID,
					KeyID:     keyRes.ID,
				}

			default:
				http.Error(w, "Unauthorized. Missing credentials", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// parseBearerToken verifies the HS256 signature and lifts the identity
// claims. Issuance is the token service's problem; content is trusted once
// the signature checks out.
func parseBearerToken(tokenString string, secret []byte) (*auth.JWTClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	sub, _ := mapClaims["sub"].(string)
	role, _ := mapClaims["role"].(string)
	wingID, _ := mapClaims["wing_id"].(string)
	if sub == "" || role == "" {
		return nil, fmt.Errorf("missing identity claims")
	}

	return &auth.JWTClaims{
		UserUUID:  sub,
		RoleValue: constants.Role(role),
		WingUUID:  wingID,
	}, nil
}
