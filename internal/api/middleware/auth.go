package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/redact"
	"github.com/taskwell/taskwell-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// UnauthorizedMessage is the single body for every authentication
// failure. A missing header, a malformed header, a bad signature and an
// expired token all read the same; the cause only reaches the logs.
const UnauthorizedMessage = "Authentication required"

// Authenticate validates the bearer token from the Authorization header
// and adds the user ID to the request context for authorized requests.
// Verification is stateless: no store lookup happens here. Every
// failure mode is a 401; there is nothing to forbid until the caller
// is known.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			slog.Debug("authentication failed", "cause", "missing authorization header")
			shared.RespondWithError(w, r, http.StatusUnauthorized, UnauthorizedMessage)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			slog.Debug("authentication failed", "cause", "malformed authorization header")
			shared.RespondWithError(w, r, http.StatusUnauthorized, UnauthorizedMessage)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch err {
			case auth.ErrExpiredToken, auth.ErrInvalidToken, auth.ErrTokenNotYetValid, auth.ErrMissingToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, UnauthorizedMessage)
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := shared.WithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
