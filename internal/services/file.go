package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ritik360/aspireit-backend/internal/logger"
	"github.com/ritik360/aspireit-backend/internal/models"
)

// Error variables
var (
	ErrInvalidCategory = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)

// FileWriter defines write operations for stored files.
type FileWriter interface {
	Save(ctx context.Context, userID uuid.UUID, category, contentType, filename string, data []byte) (uuid.UUID, error)
}

// FileReader defines read operations for stored files.
type FileReader interface {
	GetByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*models.FileDB, error)
	Exists(ctx context.Context, userID uuid.UUID, category string) (bool, error)
}

// FileService handles single-slot file storage per (user, category).
type FileService struct {
	writer      FileWriter
	reader      FileReader
	kafkaWriter KafkaWriter
}

// NewFileService creates a new FileService instance.
func NewFileService(writer FileWriter, reader FileReader, kafkaWriter KafkaWriter) *FileService {
	return &FileService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// Upload stores a file under the given category token, replacing any file
// previously stored for the same (user, category) pair.
func (svc *FileService) Upload(ctx context.Context, userID uuid.UUID, fileType, filename string, data []byte) (uuid.UUID, error) {
	contentType, ok := models.ContentTypeForCategory(fileType)
	if !ok {
		logger.Log.Errorw("invalid file type", "file_type", fileType)
		return uuid.Nil, ErrInvalidCategory
	}

	fileID, err := svc.writer.Save(ctx, userID, fileType, contentType, filename, data)
	if err != nil {
		logger.Log.Errorw("failed to save file", "user_id", userID, "file_type", fileType, "err", err)
		return uuid.Nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, userID.String(), "file_uploaded", fileType)

	return fileID, nil
}

// Download returns the file stored for (user, category).
func (svc *FileService) Download(ctx context.Context, userID uuid.UUID, fileType string) (*models.FileDB, error) {
	if _, ok := models.ContentTypeForCategory(fileType); !ok {
		logger.Log.Errorw("invalid file type", "file_type", fileType)
		return nil, ErrInvalidCategory
	}

	file, err := svc.reader.GetByUserAndCategory(ctx, userID, fileType)
	if err != nil {
		logger.Log.Errorw("failed to read file", "user_id", userID, "file_type", fileType, "err", err)
		return nil, err
	}
	if file == nil {
		return nil, ErrFileNotFound
	}

	return file, nil
}
