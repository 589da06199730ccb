package httpapi

import (
	"context"
	"net/http"
	"strings"

	"catacuti-backend-go/internal/services"
)

const ctxClaims contextKey = "claims"

// WithAuth requires a valid bearer access token.
func WithAuth(tokens services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "Authentication failed", "")
				return
			}
			claims, err := tokens.ParseAccessToken(strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")))
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "Authentication failed", "")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxClaims, claims)))
		})
	}
}

func CurrentClaims(r *http.Request) (services.AccessClaims, bool) {
	claims, ok := r.Context().Value(ctxClaims).(services.AccessClaims)
	return claims, ok
}

func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := CurrentClaims(r)
			if !ok || !strings.EqualFold(claims.Role, role) {
				WriteError(w, http.StatusForbidden, "Not allowed", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
