package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ampta/resumecraft-backend/internal/auth"
	"github.com/ampta/resumecraft-backend/internal/services"
)

type contextKey string

const principalKey contextKey = "principal"

// Auth resolves the Bearer token into a typed principal and stores it in the
// request context. Requests with a missing, malformed, tampered or expired
// token get 401 before reaching a handler.
func Auth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				unauthorized(w)
				return
			}

			accountID, err := tokens.Validate(strings.TrimSpace(token))
			if err != nil {
				unauthorized(w)
				return
			}

			p := services.Principal{AccountID: accountID}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey, p)))
		})
	}
}

// PrincipalFrom returns the principal resolved by the Auth middleware.
func PrincipalFrom(ctx context.Context) (services.Principal, bool) {
	p, ok := ctx.Value(principalKey).(services.Principal)
	return p, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized","message":"missing or invalid session token"}`))
}
