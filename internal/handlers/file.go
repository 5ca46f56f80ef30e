package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ritik360/aspireit-backend/internal/logger"
	"github.com/ritik360/aspireit-backend/internal/middlewares"
	"github.com/ritik360/aspireit-backend/internal/models"
	"github.com/ritik360/aspireit-backend/internal/services"
)

// Downloader defines the interface that the file download service must implement.
type Downloader interface {
	Download(ctx context.Context, userID uuid.UUID, fileType string) (*models.FileDB, error)
}

// FileErrorResponse represents an error response for file download
// swagger:model FileErrorResponse
type FileErrorResponse struct {
	// Error message
	// example: No pdf file found for the current user
	Message string `json:"message"`
}

// NewFileHandler returns an HTTP handler serving the file stored for the
// authenticated user under the given category.
// @Summary Download a file
// @Description Returns the raw bytes of the stored file for the given category as an attachment.
// @Tags files
// @Produce octet-stream
// @Param type path string true "File category" Enums(pdf, video, image)
// @Success 200 {file} binary "Stored file bytes"
// @Failure 400 {object} handlers.FileErrorResponse "Invalid category"
// @Failure 403 {object} handlers.FileErrorResponse "Token missing or invalid"
// @Failure 404 {object} handlers.FileErrorResponse "Nothing stored for this category"
// @Security BearerAuth
// @Router /file/{type} [get]
func NewFileHandler(svc Downloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(FileErrorResponse{Message: "Token is invalid!"})
			return
		}

		fileType := chi.URLParam(r, "type")

		file, err := svc.Download(r.Context(), user.UserID, fileType)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			switch {
			case errors.Is(err, services.ErrInvalidCategory):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FileErrorResponse{
					Message: fmt.Sprintf("Invalid file type: %s", fileType),
				})
			case errors.Is(err, services.ErrFileNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FileErrorResponse{
					Message: fmt.Sprintf("No %s file found for the current user", fileType),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FileErrorResponse{Message: "Failed to fetch file"})
			}
			return
		}

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
		w.WriteHeader(http.StatusOK)
		w.Write(file.Data)
	}
}
