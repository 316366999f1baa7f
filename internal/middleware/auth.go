package middleware

import (
	"net/http"

	"github.com/AnshRaj112/profile-api/internal/services"
	"github.com/AnshRaj112/profile-api/pkg/utils"
)

// RequireToken rejects requests whose Authorization header does not carry
// the shared API token. With no token configured every request passes.
func RequireToken(v *services.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := v.Verify(r.Header.Get("Authorization")); err != nil {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
