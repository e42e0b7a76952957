package handler

import (
	"net/http"

	"github.com/postcraft-ai/content-platform/internal/middleware"
	"github.com/postcraft-ai/content-platform/internal/model"
	"github.com/postcraft-ai/content-platform/internal/service"
	"github.com/postcraft-ai/content-platform/pkg/logger"
)

// ChatHandler handles the chat endpoint.
type ChatHandler struct {
	service *service.ChatService
	logger  *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(svc *service.ChatService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		service: svc,
		logger:  log,
	}
}

// Respond handles POST /api/v1/chat
func (h *ChatHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "No message provided")
		return
	}
	if err := middleware.ValidateMessageContent(req.Message); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.service.Respond(r.Context(), req.Message, req.History, req.Persona)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ChatResponse{Response: response})
}
