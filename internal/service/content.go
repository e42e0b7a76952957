// Package service provides business logic for the content platform.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/postcraft-ai/content-platform/internal/events"
	"github.com/postcraft-ai/content-platform/internal/llm"
	"github.com/postcraft-ai/content-platform/internal/model"
	"github.com/postcraft-ai/content-platform/internal/prompt"
	"github.com/postcraft-ai/content-platform/pkg/logger"
	"github.com/postcraft-ai/content-platform/pkg/metrics"
)

// ErrNoText is returned when the text generation surface receives no
// source text.
var ErrNoText = errors.New("no text provided")

// NoContentFallback replaces an empty backend result on the content
// surfaces. An empty result is not an error.
const NoContentFallback = "No content generated"

// ContentService turns media or text plus options into generated content.
// All validation happens before any backend call.
type ContentService struct {
	client    llm.Client
	publisher *events.Publisher
	logger    *logger.Logger
}

// NewContentService creates a new content service. The publisher may be
// nil.
func NewContentService(client llm.Client, publisher *events.Publisher, log *logger.Logger) *ContentService {
	return &ContentService{
		client:    client,
		publisher: publisher,
		logger:    log,
	}
}

// FromMedia generates platform content from an uploaded image or video.
func (s *ContentService) FromMedia(ctx context.Context, media *model.MediaPayload, opts prompt.Options) (string, error) {
	if err := media.Validate(); err != nil {
		return "", err
	}

	req := &llm.Request{
		Prompt: prompt.ForMedia(string(media.Kind), opts),
		Media:  &llm.Media{MIMEType: media.MIMEType, Data: media.Bytes},
		Safety: llm.DefaultSafetySettings(),
	}
	return s.generate(ctx, "media", string(opts.Platform), req, NoContentFallback)
}

// FromText generates platform content from caller-provided source text.
func (s *ContentService) FromText(ctx context.Context, text string, opts prompt.Options) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}

	req := &llm.Request{Prompt: prompt.ForText(text, opts)}
	return s.generate(ctx, "text", string(opts.Platform), req, NoContentFallback)
}

// ExtractText recovers visible text from an image. It returns the empty
// string, not an error, when the backend reports no text found.
func (s *ContentService) ExtractText(ctx context.Context, media *model.MediaPayload) (string, error) {
	if err := media.Validate(); err != nil {
		return "", err
	}

	req := &llm.Request{
		Prompt: prompt.ForTextExtraction(),
		Media:  &llm.Media{MIMEType: media.MIMEType, Data: media.Bytes},
	}
	text, err := s.generate(ctx, "extract", "", req, "")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == prompt.NoTextFound {
		return "", nil
	}
	return text, nil
}

func (s *ContentService) generate(ctx context.Context, surface, platform string, req *llm.Request, fallback string) (string, error) {
	start := time.Now()
	res, err := s.client.Generate(ctx, req)
	s.record(surface, platform, start, err)
	if err != nil {
		return "", err
	}
	if res.Text == "" {
		if fallback != "" {
			metrics.GenerationFallbacksTotal.WithLabelValues(surface).Inc()
		}
		return fallback, nil
	}
	return res.Text, nil
}

func (s *ContentService) record(surface, platform string, start time.Time, err error) {
	status := "success"
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = "cancelled"
	case err != nil:
		status = "error"
	}

	elapsed := time.Since(start)
	metrics.RecordGeneration(surface, s.client.Name(), status, elapsed.Seconds())
	s.publisher.Publish(events.GenerationEvent{
		Surface:   surface,
		Provider:  s.client.Name(),
		Platform:  platform,
		Status:    status,
		LatencyMs: elapsed.Milliseconds(),
	})
}
