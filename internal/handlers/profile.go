package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ritik360/aspireit-backend/internal/logger"
	"github.com/ritik360/aspireit-backend/internal/middlewares"
	"github.com/ritik360/aspireit-backend/internal/services"
)

// ProfileGetter defines the profile read interface.
type ProfileGetter interface {
	Get(ctx context.Context, username string) (*services.Profile, error)
}

// ProfileUpdater defines the profile patch interface.
type ProfileUpdater interface {
	Update(ctx context.Context, username string, email, password *string) error
}

// ProfileResponse wraps the profile view
// swagger:model ProfileResponse
type ProfileResponse struct {
	UserProfile services.Profile `json:"user_profile"`
}

// ProfileUpdateRequest represents the JSON body for a profile patch.
// Absent fields are left untouched.
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	// New email
	// example: new@x.com
	Email *string `json:"email,omitempty"`

	// New password, re-hashed before storage
	Password *string `json:"password,omitempty"`
}

// ProfileUpdateResponse represents a successful profile patch response
// swagger:model ProfileUpdateResponse
type ProfileUpdateResponse struct {
	// Success message
	// example: User profile updated successfully
	Message string `json:"message"`
}

// ProfileErrorResponse represents an error response for profile operations
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// example: User not found
	Message string `json:"message"`
}

// NewGetProfileHandler returns an HTTP handler serving the authenticated
// user's profile.
// @Summary Get user profile
// @Description Returns the authenticated user's username, email and stored-image URL.
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "User profile"
// @Failure 403 {object} handlers.ProfileErrorResponse "Token missing or invalid"
// @Failure 404 {object} handlers.ProfileErrorResponse "User not found"
// @Security BearerAuth
// @Router /user/profile [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Message: "Token is invalid!"})
			return
		}

		profile, err := svc.Get(r.Context(), user.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Message: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{UserProfile: *profile})
	}
}

// NewUpdateProfileHandler returns an HTTP handler applying a partial profile
// patch for the authenticated user.
// @Summary Update user profile
// @Description Applies a partial patch: only provided fields change; a provided password is re-hashed.
// @Tags profile
// @Accept json
// @Produce json
// @Param profileUpdateRequest body handlers.ProfileUpdateRequest true "Fields to update"
// @Success 200 {object} handlers.ProfileUpdateResponse "Profile updated"
// @Failure 400 {object} handlers.ProfileErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.ProfileErrorResponse "Token missing or invalid"
// @Failure 404 {object} handlers.ProfileErrorResponse "User not found"
// @Security BearerAuth
// @Router /user/profile [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Message: "Token is invalid!"})
			return
		}

		var req ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Message: "invalid request body"})
			return
		}

		if err := svc.Update(r.Context(), user.Username, req.Email, req.Password); err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Message: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Message: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileUpdateResponse{
			Message: "User profile updated successfully",
		})
	}
}
