package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ritik360/aspireit-backend/internal/models"
	"github.com/ritik360/aspireit-backend/internal/services"
)

func TestFileService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name      string
		fileType  string
		mockSetup func(writer *services.MockFileWriter, kafka *services.MockKafkaWriter)
		wantErr   error
	}{
		{
			name:     "pdf upload",
			fileType: "pdf",
			mockSetup: func(writer *services.MockFileWriter, kafka *services.MockKafkaWriter) {
				writer.EXPECT().
					Save(gomock.Any(), userID, "pdf", "application/pdf", "doc.pdf", []byte("bytes")).
					Return(uuid.New(), nil)
				kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "video upload",
			fileType: "video",
			mockSetup: func(writer *services.MockFileWriter, kafka *services.MockKafkaWriter) {
				writer.EXPECT().
					Save(gomock.Any(), userID, "video", "video/mp4", "doc.pdf", []byte("bytes")).
					Return(uuid.New(), nil)
				kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "invalid category",
			fileType:  "audio",
			mockSetup: func(*services.MockFileWriter, *services.MockKafkaWriter) {},
			wantErr:   services.ErrInvalidCategory,
		},
		{
			name:     "store failure",
			fileType: "image",
			mockSetup: func(writer *services.MockFileWriter, kafka *services.MockKafkaWriter) {
				writer.EXPECT().
					Save(gomock.Any(), userID, "image", "image/jpeg", "doc.pdf", []byte("bytes")).
					Return(uuid.Nil, errors.New("store failure"))
			},
			wantErr: errors.New("store failure"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockFileWriter(ctrl)
			mockReader := services.NewMockFileReader(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)
			tt.mockSetup(mockWriter, mockKafka)

			svc := services.NewFileService(mockWriter, mockReader, mockKafka)

			fileID, err := svc.Upload(context.Background(), userID, tt.fileType, "doc.pdf", []byte("bytes"))
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, uuid.Nil, fileID)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, fileID)
			}
		})
	}
}

func TestFileService_Download(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	stored := &models.FileDB{
		FileID:      uuid.New(),
		UserID:      userID,
		Category:    "pdf",
		ContentType: "application/pdf",
		Filename:    "doc.pdf",
		Data:        []byte("bytes"),
		Size:        5,
	}

	tests := []struct {
		name      string
		fileType  string
		mockSetup func(reader *services.MockFileReader)
		want      *models.FileDB
		wantErr   error
	}{
		{
			name:     "found",
			fileType: "pdf",
			mockSetup: func(reader *services.MockFileReader) {
				reader.EXPECT().GetByUserAndCategory(gomock.Any(), userID, "pdf").Return(stored, nil)
			},
			want: stored,
		},
		{
			name:     "nothing stored",
			fileType: "image",
			mockSetup: func(reader *services.MockFileReader) {
				reader.EXPECT().GetByUserAndCategory(gomock.Any(), userID, "image").Return(nil, nil)
			},
			wantErr: services.ErrFileNotFound,
		},
		{
			name:      "invalid category",
			fileType:  "exe",
			mockSetup: func(*services.MockFileReader) {},
			wantErr:   services.ErrInvalidCategory,
		},
		{
			name:     "store failure",
			fileType: "pdf",
			mockSetup: func(reader *services.MockFileReader) {
				reader.EXPECT().GetByUserAndCategory(gomock.Any(), userID, "pdf").Return(nil, errors.New("store failure"))
			},
			wantErr: errors.New("store failure"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockFileWriter(ctrl)
			mockReader := services.NewMockFileReader(ctrl)
			tt.mockSetup(mockReader)

			svc := services.NewFileService(mockWriter, mockReader, nil)

			file, err := svc.Download(context.Background(), userID, tt.fileType)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, file)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, file)
			}
		})
	}
}
