package models

import (
	"time"

	"github.com/google/uuid"
)

// File categories accepted in upload/download URLs.
const (
	CategoryPDF   = "pdf"
	CategoryVideo = "video"
	CategoryImage = "image"
)

// contentTypes maps each accepted category token to its canonical MIME type.
var contentTypes = map[string]string{
	CategoryPDF:   "application/pdf",
	CategoryVideo: "video/mp4",
	CategoryImage: "image/jpeg",
}

// ContentTypeForCategory returns the canonical MIME type for a category
// token, and false for an unrecognized token.
func ContentTypeForCategory(category string) (string, bool) {
	ct, ok := contentTypes[category]
	return ct, ok
}

// FileDB represents a stored file record. At most one row exists per
// (user_id, category), enforced by a unique constraint.
type FileDB struct {
	FileID      uuid.UUID `json:"file_id" db:"file_id"`           // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // Owner
	Category    string    `json:"category" db:"category"`         // pdf, video or image
	ContentType string    `json:"content_type" db:"content_type"` // Canonical MIME type
	Filename    string    `json:"filename" db:"filename"`         // Original filename
	Data        []byte    `json:"-" db:"data"`                    // Raw bytes
	Size        int64     `json:"size" db:"size"`                 // Byte length of Data
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
