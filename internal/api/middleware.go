package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/openhire/go-jobboard/apperrors"
	"github.com/openhire/go-jobboard/internal/auth"
)

type contextKey struct{ name string }

var claimsKey = &contextKey{"claims"}

// claimsFrom returns the verified token claims, if any.
func claimsFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// RequestLogger logs one line per request.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start),
			)
		})
	}
}

// Authenticate verifies a bearer token when one is supplied and stores its
// claims in the request context. Requests without a token pass through
// anonymous; the Require* middlewares decide what needs credentials.
func Authenticate(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				respondError(w, fmt.Errorf("%w: malformed authorization header", apperrors.ErrUnauthorized))
				return
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				respondError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// RequireAdmin rejects requests without an admin token.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r.Context())
		if claims == nil {
			respondError(w, apperrors.ErrUnauthorized)
			return
		}
		if !claims.IsAdmin {
			respondError(w, apperrors.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdminOrSelf rejects requests unless the token belongs to an admin
// or to the user named in the route.
func RequireAdminOrSelf(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r.Context())
		if claims == nil {
			respondError(w, apperrors.ErrUnauthorized)
			return
		}
		if !claims.IsAdmin && claims.Subject != chi.URLParam(r, "username") {
			respondError(w, apperrors.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
