package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ritik360/aspireit-backend/internal/jwt"
	"github.com/ritik360/aspireit-backend/internal/logger"
	"github.com/ritik360/aspireit-backend/internal/models"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter resolves a token subject to a live user record.
type UserGetter interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

type contextKey struct{}

var userKey = contextKey{}

// GetUserFromContext returns the authenticated user stored by AuthMiddleware,
// or nil if the request did not pass through it.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

type authErrorResponse struct {
	Message string `json:"message"`
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	json.NewEncoder(w).Encode(authErrorResponse{Message: message})
}

// AuthMiddleware validates the bearer token and resolves its subject to a
// user record, which is stored in the request context. A missing header is
// the only failure reported distinctly; bad signature, expiry and unknown
// subject all collapse into the same "Token is invalid!" response.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				if errors.Is(err, jwt.ErrNoAuthHeader) {
					writeAuthError(w, "Token is missing!")
				} else {
					writeAuthError(w, "Token is invalid!")
				}
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w, "Token is invalid!")
				return
			}

			user, err := users.GetByUsername(ctx, claims.Username)
			if err != nil || user == nil {
				logger.Log.Errorw("token subject not resolvable", "username", claims.Username, "err", err)
				writeAuthError(w, "Token is invalid!")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}
