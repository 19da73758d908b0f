package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sandeepkv93/notes-ai-backend/internal/http/response"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
	"github.com/sandeepkv93/notes-ai-backend/internal/security"
)

type contextKey string

const (
	ClaimsContextKey contextKey = "claims"
)

type TokenVerifier interface {
	VerifyToken(token string) (*security.Claims, error)
}

// AuthMiddleware reads the session cookie first and falls back to a bearer
// header. Verification is stateless; nothing is cached between requests.
func AuthMiddleware(verifier TokenVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, source := extractToken(r, cookieName)
			if raw == "" {
				observability.RecordTokenValidation(r.Context(), "missing", "none")
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Token is missing", nil)
				return
			}
			claims, err := verifier.VerifyToken(raw)
			if err != nil {
				observability.RecordTokenValidation(r.Context(), "invalid", source)
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Token is invalid", nil)
				return
			}
			observability.RecordTokenValidation(r.Context(), "valid", source)
			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth attaches claims when a valid credential is present and lets
// the request through either way.
func OptionalAuth(verifier TokenVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw, _ := extractToken(r, cookieName); raw != "" {
				if claims, err := verifier.VerifyToken(raw); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), ClaimsContextKey, claims))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractToken(r *http.Request, cookieName string) (string, string) {
	if raw := security.GetCookie(r, cookieName); raw != "" {
		return raw, "cookie"
	}
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		if raw := strings.TrimSpace(auth[7:]); raw != "" {
			return raw, "bearer"
		}
	}
	return "", "none"
}

func ClaimsFromContext(ctx context.Context) (*security.Claims, bool) {
	c, ok := ctx.Value(ClaimsContextKey).(*security.Claims)
	return c, ok
}
