package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ritik360/aspireit-backend/internal/services"
)

// Analyzer defines the interface that the sentiment service must implement.
type Analyzer interface {
	Analyze(ctx context.Context, text string) services.SentimentResult
}

// AnalyzeRequest represents the JSON body for text analysis
// swagger:model AnalyzeRequest
type AnalyzeRequest struct {
	// Text to analyze
	// required: true
	// example: I love this product
	Text string `json:"text"`
}

// AnalyzeNote explains the two scores.
type AnalyzeNote struct {
	Polarity     string `json:"polarity"`
	Subjectivity string `json:"subjectivity"`
}

// AnalyzeResponse represents a successful analysis response
// swagger:model AnalyzeResponse
type AnalyzeResponse struct {
	Text         string      `json:"text"`
	Polarity     float64     `json:"polarity"`
	Subjectivity float64     `json:"subjectivity"`
	Note         AnalyzeNote `json:"note"`
}

// AnalyzeErrorResponse represents an error response for text analysis
// swagger:model AnalyzeErrorResponse
type AnalyzeErrorResponse struct {
	// Error message
	// example: No text provided
	Error string `json:"error"`
}

// NewAnalyzeHandler returns an HTTP handler for text sentiment analysis.
// @Summary Analyze text sentiment
// @Description Scores the text's polarity (-1..1) and subjectivity (0..1).
// @Tags analysis
// @Accept json
// @Produce json
// @Param analyzeRequest body handlers.AnalyzeRequest true "Text to analyze"
// @Success 200 {object} handlers.AnalyzeResponse "Sentiment scores"
// @Failure 400 {object} handlers.AnalyzeErrorResponse "Missing text"
// @Failure 403 {object} handlers.AnalyzeErrorResponse "Token missing or invalid"
// @Security BearerAuth
// @Router /analyze/text [post]
func NewAnalyzeHandler(svc Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AnalyzeErrorResponse{Error: "Invalid JSON"})
			return
		}

		if req.Text == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AnalyzeErrorResponse{Error: "No text provided"})
			return
		}

		result := svc.Analyze(r.Context(), req.Text)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AnalyzeResponse{
			Text:         req.Text,
			Polarity:     result.Polarity,
			Subjectivity: result.Subjectivity,
			Note: AnalyzeNote{
				Polarity:     "Polarity measures how positive or negative the text is.",
				Subjectivity: "Subjectivity measures how subjective or objective the text is.",
			},
		})
	}
}
