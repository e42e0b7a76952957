// Package handler provides HTTP handlers for the API.
package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/postcraft-ai/content-platform/internal/middleware"
	"github.com/postcraft-ai/content-platform/internal/model"
	"github.com/postcraft-ai/content-platform/internal/prompt"
	"github.com/postcraft-ai/content-platform/internal/service"
	"github.com/postcraft-ai/content-platform/pkg/logger"
)

// defaultLineCount is used when the caller omits or garbles lineCount.
const defaultLineCount = 10

// GenerateHandler handles the content generation and text extraction
// endpoints.
type GenerateHandler struct {
	service *service.ContentService
	logger  *logger.Logger
}

// NewGenerateHandler creates a new generation handler.
func NewGenerateHandler(svc *service.ContentService, log *logger.Logger) *GenerateHandler {
	return &GenerateHandler{
		service: svc,
		logger:  log,
	}
}

// FromMedia handles POST /api/v1/generate
func (h *GenerateHandler) FromMedia(w http.ResponseWriter, r *http.Request) {
	media, ok := h.readMediaFile(w, r, "media")
	if !ok {
		return
	}
	if kind := model.MediaKind(r.FormValue("mediaType")); kind != "" {
		media.Kind = kind
	}

	opts, ok := parseOptions(w, r)
	if !ok {
		return
	}

	content, err := h.service.FromMedia(r.Context(), media, opts)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{Content: content})
}

// FromText handles POST /api/v1/generate/text
func (h *GenerateHandler) FromText(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateFromTextRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := middleware.ValidateCustomPrompt(req.CustomPrompt); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lineCount := req.LineCount
	if lineCount == 0 {
		lineCount = defaultLineCount
	}

	content, err := h.service.FromText(r.Context(), req.Text, prompt.Options{
		Platform:     prompt.Platform(req.Platform),
		Tone:         prompt.Tone(req.Tone),
		LineCount:    lineCount,
		Language:     normalizeLanguage(req.Language),
		CustomPrompt: req.CustomPrompt,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{Content: content})
}

// ExtractText handles POST /api/v1/extract-text
func (h *GenerateHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	media, ok := h.readMediaFile(w, r, "image")
	if !ok {
		return
	}
	media.Kind = model.MediaKindImage

	text, err := h.service.ExtractText(r.Context(), media)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ExtractTextResponse{Text: text})
}

// readMediaFile pulls the named multipart file into a MediaPayload. The
// reader is capped just past the size limit so oversized uploads are
// rejected without buffering the whole body.
func (h *GenerateHandler) readMediaFile(w http.ResponseWriter, r *http.Request, field string) (*model.MediaPayload, bool) {
	if err := r.ParseMultipartForm(model.MaxMediaBytes + 1<<20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return nil, false
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		writeError(w, http.StatusBadRequest, "No media file provided")
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, model.MaxMediaBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read media file")
		return nil, false
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return &model.MediaPayload{
		Bytes:    data,
		MIMEType: mimeType,
		Kind:     model.MediaKindImage,
	}, true
}

// parseOptions reads generation options from multipart form values.
func parseOptions(w http.ResponseWriter, r *http.Request) (prompt.Options, bool) {
	customPrompt := r.FormValue("customPrompt")
	if err := middleware.ValidateCustomPrompt(customPrompt); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return prompt.Options{}, false
	}

	lineCount := defaultLineCount
	if s := r.FormValue("lineCount"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			lineCount = n
		}
	}

	return prompt.Options{
		Platform:     prompt.Platform(r.FormValue("platform")),
		Tone:         prompt.Tone(r.FormValue("tone")),
		LineCount:    lineCount,
		Language:     normalizeLanguage(r.FormValue("language")),
		CustomPrompt: customPrompt,
	}, true
}

func normalizeLanguage(language string) string {
	if strings.TrimSpace(language) == "" {
		return "english"
	}
	return language
}
