package services

import (
	"context"
	"errors"
	"net/mail"

	"github.com/google/uuid"

	"github.com/ritik360/aspireit-backend/internal/logger"
	"github.com/ritik360/aspireit-backend/internal/models"
	"github.com/ritik360/aspireit-backend/internal/password"
	"github.com/ritik360/aspireit-backend/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports per-field input problems.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, email, passwordHash *string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
	}
}

// validateRegistration checks required fields and email shape.
func validateRegistration(username, plainPassword, email string) *ValidationError {
	fields := make(map[string]string)
	if username == "" {
		fields["username"] = "Username is required"
	}
	if plainPassword == "" {
		fields["password"] = "Password is required"
	}
	if email == "" {
		fields["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "Not a valid email address"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Register validates input, hashes the password and persists a new user.
// Returns the store-assigned user id.
func (svc *AuthService) Register(ctx context.Context, username, plainPassword, email string) (uuid.UUID, error) {
	if verr := validateRegistration(username, plainPassword, email); verr != nil {
		logger.Log.Infow("registration rejected", "username", username, "fields", verr.Fields)
		return uuid.Nil, verr
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return uuid.Nil, ErrUserAlreadyExists
	}

	digest, err := password.Hash(plainPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, username, email, digest)
	if err != nil {
		// The unique constraint backstops the pre-check under concurrent
		// registration of the same username.
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return uuid.Nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, userID.String(), "user_registered", username)

	return userID, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, plainPassword string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if !password.Verify(plainPassword, user.PasswordHash) {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
