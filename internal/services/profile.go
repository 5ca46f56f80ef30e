package services

import (
	"context"

	"github.com/ritik360/aspireit-backend/internal/logger"
	"github.com/ritik360/aspireit-backend/internal/models"
	"github.com/ritik360/aspireit-backend/internal/password"
)

// Profile is the client-visible view of a user.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// ProfileService handles profile reads and partial updates.
type ProfileService struct {
	userReader UserReader
	userWriter UserWriter
	fileReader FileReader
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(userReader UserReader, userWriter UserWriter, fileReader FileReader) *ProfileService {
	return &ProfileService{
		userReader: userReader,
		userWriter: userWriter,
		fileReader: fileReader,
	}
}

// Get returns the profile for the given username. ImageURL points at the
// download route when an image is stored for the user.
func (svc *ProfileService) Get(ctx context.Context, username string) (*Profile, error) {
	user, err := svc.userReader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	profile := &Profile{
		Username: user.Username,
		Email:    user.Email,
	}

	hasImage, err := svc.fileReader.Exists(ctx, user.UserID, models.CategoryImage)
	if err != nil {
		logger.Log.Errorw("failed to check stored image", "username", username, "err", err)
		return nil, err
	}
	if hasImage {
		profile.ImageURL = "/file/image"
	}

	return profile, nil
}

// Update applies a partial profile patch. Nil fields are left untouched; a
// new password is re-hashed before persisting.
func (svc *ProfileService) Update(ctx context.Context, username string, email, plainPassword *string) error {
	user, err := svc.userReader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}

	var passwordHash *string
	if plainPassword != nil {
		digest, err := password.Hash(*plainPassword)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return err
		}
		passwordHash = &digest
	}

	if email == nil && passwordHash == nil {
		return nil
	}

	if err := svc.userWriter.UpdateProfile(ctx, user.UserID, email, passwordHash); err != nil {
		logger.Log.Errorw("failed to update profile", "username", username, "err", err)
		return err
	}

	return nil
}
