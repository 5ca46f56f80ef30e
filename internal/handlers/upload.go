package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ritik360/aspireit-backend/internal/logger"
	"github.com/ritik360/aspireit-backend/internal/middlewares"
	"github.com/ritik360/aspireit-backend/internal/services"
)

// maxUploadBytes caps in-memory multipart parsing.
const maxUploadBytes = 32 << 20

// Uploader defines the interface that the file upload service must implement.
type Uploader interface {
	Upload(ctx context.Context, userID uuid.UUID, fileType, filename string, data []byte) (uuid.UUID, error)
}

// UploadResponse represents a successful upload response
// swagger:model UploadResponse
type UploadResponse struct {
	// Success message
	// example: File uploaded successfully
	Message string `json:"message"`

	// Id of the stored file
	FileID string `json:"file_id"`
}

// UploadErrorResponse represents an error response for upload
// swagger:model UploadErrorResponse
type UploadErrorResponse struct {
	// Error message
	// example: Invalid file type: exe
	Message string `json:"message"`
}

// NewUploadHandler returns an HTTP handler for single-slot file upload.
// Uploading to a category that already holds a file replaces it.
// @Summary Upload a file
// @Description Stores the multipart "file" field under the given category (pdf, video or image), replacing any previously stored file of that category.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param type path string true "File category" Enums(pdf, video, image)
// @Param file formData file true "File to store"
// @Success 201 {object} handlers.UploadResponse "File stored"
// @Failure 400 {object} handlers.UploadErrorResponse "Invalid category or missing file field"
// @Failure 403 {object} handlers.UploadErrorResponse "Token missing or invalid"
// @Failure 500 {object} handlers.UploadErrorResponse "Store failure"
// @Security BearerAuth
// @Router /upload/{type} [post]
func NewUploadHandler(svc Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Token is invalid!"})
			return
		}

		fileType := chi.URLParam(r, "type")

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Failed to parse multipart form"})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "No file provided"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read uploaded file", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Failed to upload file"})
			return
		}

		fileID, err := svc.Upload(r.Context(), user.UserID, fileType, header.Filename, data)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCategory):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UploadErrorResponse{
					Message: fmt.Sprintf("Invalid file type: %s", fileType),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UploadErrorResponse{Message: "Failed to upload file"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadResponse{
			Message: "File uploaded successfully",
			FileID:  fileID.String(),
		})
	}
}
