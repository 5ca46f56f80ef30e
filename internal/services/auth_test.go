package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/ritik360/aspireit-backend/internal/models"
	"github.com/ritik360/aspireit-backend/internal/repositories"
	"github.com/ritik360/aspireit-backend/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		username     string
		password     string
		email        string
		mockSetup    func(reader *services.MockUserReader, writer *services.MockUserWriter)
		wantErr      error
		wantFieldErr string
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pw123",
			email:    "a@x.com",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				writer.EXPECT().Save(gomock.Any(), "alice", "a@x.com", gomock.Any()).Return(uuid.New(), nil)
			},
		},
		{
			name:         "missing username",
			username:     "",
			password:     "pw123",
			email:        "a@x.com",
			mockSetup:    func(*services.MockUserReader, *services.MockUserWriter) {},
			wantFieldErr: "username",
		},
		{
			name:         "missing password",
			username:     "alice",
			password:     "",
			email:        "a@x.com",
			mockSetup:    func(*services.MockUserReader, *services.MockUserWriter) {},
			wantFieldErr: "password",
		},
		{
			name:         "malformed email",
			username:     "alice",
			password:     "pw123",
			email:        "not-an-email",
			mockSetup:    func(*services.MockUserReader, *services.MockUserWriter) {},
			wantFieldErr: "email",
		},
		{
			name:     "user already exists",
			username: "bob",
			password: "pw123",
			email:    "b@x.com",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().GetByUsername(gomock.Any(), "bob").
					Return(&models.UserDB{UserID: uuid.New(), Username: "bob"}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "concurrent duplicate caught by unique constraint",
			username: "carol",
			password: "pw123",
			email:    "c@x.com",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().GetByUsername(gomock.Any(), "carol").Return(nil, nil)
				writer.EXPECT().Save(gomock.Any(), "carol", "c@x.com", gomock.Any()).
					Return(uuid.Nil, repositories.ErrUniqueViolation)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "reader error",
			username: "eve",
			password: "pw123",
			email:    "e@x.com",
			mockSetup: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().GetByUsername(gomock.Any(), "eve").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			tt.mockSetup(mockReader, mockWriter)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			userID, err := svc.Register(context.Background(), tt.username, tt.password, tt.email)

			switch {
			case tt.wantFieldErr != "":
				var verr *services.ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, tt.wantFieldErr)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
			default:
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, userID)
			}
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), "alice", "a@x.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, digest string) (uuid.UUID, error) {
			assert.NotEqual(t, "pw123", digest, "plaintext must never be persisted")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(digest), []byte("pw123")))
			return uuid.New(), nil
		})

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)
	_, err := svc.Register(context.Background(), "alice", "pw123", "a@x.com")
	assert.NoError(t, err)
}

func TestAuthService_Register_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	mockWriter.EXPECT().Save(gomock.Any(), "alice", "a@x.com", gomock.Any()).Return(uuid.New(), nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockKafka)
	_, err := svc.Register(context.Background(), "alice", "pw123", "a@x.com")
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	digest, err := bcrypt.GenerateFromPassword([]byte("pw123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: string(digest),
	}

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func(reader *services.MockUserReader, jwt *services.MockJWTGenerator)
		wantToken string
		wantErr   error
	}{
		{
			name:     "success",
			username: "alice",
			password: "pw123",
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				jwt.EXPECT().Generate(gomock.Any(), "alice").Return("JWT_TOKEN", nil)
			},
			wantToken: "JWT_TOKEN",
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "pw123",
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "reader error",
			username: "alice",
			password: "pw123",
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockJWTGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			tt.mockSetup(mockReader, mockJWT)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			token, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
