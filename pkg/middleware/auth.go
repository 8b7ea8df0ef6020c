package middleware

import (
	"net/http"
	"strings"

	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

const RoleAdmin = "admin"

// TokenParser verifies an access token and returns its claims
type TokenParser interface {
	Parse(token string) (*utils.Claims, error)
}

// Auth rejects requests without a valid bearer token and puts the token
// identity into the request context
func Auth(tokens TokenParser, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			token, ok := bearerToken(authHeader)
			if !ok {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				logger.Warn("Rejected access token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetIdentityContext(r.Context(), claims)))
		})
	}
}

// OptionalAuth attaches the identity when a valid token is present and lets
// anonymous requests through untouched
func OptionalAuth(tokens TokenParser, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				logger.Debug("Ignoring invalid optional token", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetIdentityContext(r.Context(), claims)))
		})
	}
}

// Admin requires the role claim set by Auth to be admin
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != RoleAdmin {
				email, _ := utils.GetEmailFromContext(r.Context())
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("email", email),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
