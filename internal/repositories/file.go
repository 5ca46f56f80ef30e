package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ritik360/aspireit-backend/internal/logger"
	"github.com/ritik360/aspireit-backend/internal/models"
)

// FileWriteRepository handles file write operations.
type FileWriteRepository struct {
	db *sqlx.DB
}

func NewFileWriteRepository(db *sqlx.DB) *FileWriteRepository {
	return &FileWriteRepository{db: db}
}

// Save stores a file for (user_id, category) as a single conditional
// replace: the unique constraint on (user_id, category) plus the ON CONFLICT
// update keeps at most one row per pair even under concurrent uploads.
// Returns the id of the stored row.
func (r *FileWriteRepository) Save(ctx context.Context, userID uuid.UUID, category, contentType, filename string, data []byte) (uuid.UUID, error) {
	const query = `
		INSERT INTO files (file_id, user_id, category, content_type, filename, data, size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (user_id, category) DO UPDATE
		SET file_id = EXCLUDED.file_id,
		    content_type = EXCLUDED.content_type,
		    filename = EXCLUDED.filename,
		    data = EXCLUDED.data,
		    size = EXCLUDED.size,
		    updated_at = NOW()
		RETURNING file_id
	`
	args := []any{uuid.New(), userID, category, contentType, filename, data, int64(len(data))}

	var fileID uuid.UUID
	err := r.db.GetContext(ctx, &fileID, query, args...)

	logger.Log.Infow("file upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, category, contentType, filename, len(data)},
		"result", fileID,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}

	return fileID, nil
}

// FileReadRepository handles file read operations.
type FileReadRepository struct {
	db *sqlx.DB
}

func NewFileReadRepository(db *sqlx.DB) *FileReadRepository {
	return &FileReadRepository{db: db}
}

// GetByUserAndCategory returns the stored file for (user_id, category), or
// nil if none exists.
func (r *FileReadRepository) GetByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*models.FileDB, error) {
	const query = `
		SELECT file_id, user_id, category, content_type, filename, data, size, created_at, updated_at
		FROM files
		WHERE user_id = $1 AND category = $2
		LIMIT 1
	`

	var file models.FileDB
	err := r.db.GetContext(ctx, &file, query, userID, category)

	logger.Log.Infow("file read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, category},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &file, nil
}

// Exists reports whether a file is stored for (user_id, category) without
// loading the blob.
func (r *FileReadRepository) Exists(ctx context.Context, userID uuid.UUID, category string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM files WHERE user_id = $1 AND category = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, category)

	logger.Log.Infow("file exists",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, category},
		"result", exists,
		"error", err,
	)

	return exists, err
}
