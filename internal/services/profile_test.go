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
	"github.com/ritik360/aspireit-backend/internal/services"
)

func TestProfileService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice", Email: "a@x.com"}

	tests := []struct {
		name      string
		mockSetup func(users *services.MockUserReader, files *services.MockFileReader)
		want      *services.Profile
		wantErr   error
	}{
		{
			name: "with stored image",
			mockSetup: func(users *services.MockUserReader, files *services.MockFileReader) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				files.EXPECT().Exists(gomock.Any(), userID, "image").Return(true, nil)
			},
			want: &services.Profile{Username: "alice", Email: "a@x.com", ImageURL: "/file/image"},
		},
		{
			name: "without stored image",
			mockSetup: func(users *services.MockUserReader, files *services.MockFileReader) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				files.EXPECT().Exists(gomock.Any(), userID, "image").Return(false, nil)
			},
			want: &services.Profile{Username: "alice", Email: "a@x.com"},
		},
		{
			name: "user vanished",
			mockSetup: func(users *services.MockUserReader, files *services.MockFileReader) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
			},
			wantErr: services.ErrUserDoesNotExist,
		},
		{
			name: "reader error",
			mockSetup: func(users *services.MockUserReader, files *services.MockFileReader) {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockFiles := services.NewMockFileReader(ctrl)
			tt.mockSetup(mockUsers, mockFiles)

			svc := services.NewProfileService(mockUsers, mockWriter, mockFiles)

			profile, err := svc.Get(context.Background(), "alice")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, profile)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, profile)
			}
		})
	}
}

func TestProfileService_Update_EmailOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice", Email: "a@x.com"}

	mockUsers := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockFiles := services.NewMockFileReader(ctrl)

	newEmail := "new@x.com"
	mockUsers.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
	mockWriter.EXPECT().
		UpdateProfile(gomock.Any(), userID, &newEmail, gomock.Nil()).
		Return(nil)

	svc := services.NewProfileService(mockUsers, mockWriter, mockFiles)
	err := svc.Update(context.Background(), "alice", &newEmail, nil)
	assert.NoError(t, err)
}

func TestProfileService_Update_PasswordRehashed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice", Email: "a@x.com"}

	mockUsers := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockFiles := services.NewMockFileReader(ctrl)

	mockUsers.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
	mockWriter.EXPECT().
		UpdateProfile(gomock.Any(), userID, gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, email, digest *string) error {
			assert.Nil(t, email)
			assert.NotNil(t, digest)
			assert.NotEqual(t, "newpw", *digest)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*digest), []byte("newpw")))
			return nil
		})

	newPassword := "newpw"
	svc := services.NewProfileService(mockUsers, mockWriter, mockFiles)
	err := svc.Update(context.Background(), "alice", nil, &newPassword)
	assert.NoError(t, err)
}

func TestProfileService_Update_EmptyPatchIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{UserID: uuid.New(), Username: "alice"}

	mockUsers := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockFiles := services.NewMockFileReader(ctrl)

	mockUsers.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
	// No UpdateProfile call expected.

	svc := services.NewProfileService(mockUsers, mockWriter, mockFiles)
	err := svc.Update(context.Background(), "alice", nil, nil)
	assert.NoError(t, err)
}

func TestProfileService_Update_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockFiles := services.NewMockFileReader(ctrl)

	mockUsers.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

	email := "x@x.com"
	svc := services.NewProfileService(mockUsers, mockWriter, mockFiles)
	err := svc.Update(context.Background(), "ghost", &email, nil)
	assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
}
