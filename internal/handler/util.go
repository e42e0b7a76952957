package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/postcraft-ai/content-platform/internal/llm"
	"github.com/postcraft-ai/content-platform/internal/model"
	"github.com/postcraft-ai/content-platform/internal/service"
	"github.com/postcraft-ai/content-platform/pkg/logger"
)

// decodeJSON decodes a JSON request body.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeServiceError translates service-layer errors onto the wire.
// Validation failures surface as 400, exhausted retries as 503,
// non-retryable backend rejections keep their original status, and
// anything unrecognized becomes a 500 without internal detail.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrNoMedia):
		writeError(w, http.StatusBadRequest, "No media file provided")
	case errors.Is(err, model.ErrMediaTooLarge):
		writeError(w, http.StatusBadRequest, "File size too large. Maximum size is 10MB.")
	case errors.Is(err, service.ErrNoText):
		writeError(w, http.StatusBadRequest, "No text provided")
	case errors.Is(err, service.ErrNoMessage):
		writeError(w, http.StatusBadRequest, "No message provided")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusRequestTimeout, "request cancelled")
	default:
		var exhausted *llm.ExhaustedError
		if errors.As(err, &exhausted) {
			writeError(w, http.StatusServiceUnavailable,
				"The generation backend is currently overloaded. Please try again later.")
			return
		}
		var status *llm.StatusError
		if errors.As(err, &status) {
			writeError(w, status.StatusCode, "Error from generation backend: "+status.Message)
			return
		}
		log.Error("generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate content")
	}
}
