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

// ErrNoMessage is returned when the chat surface receives no message.
var ErrNoMessage = errors.New("no message provided")

// ChatFallback replaces an empty backend result on the chat surface.
const ChatFallback = "I'm sorry, I couldn't generate a response. Please try again."

// chatConfig is the fixed sampling configuration for chat requests.
var chatConfig = llm.GenerationConfig{
	Temperature:     0.7,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 1024,
}

// ChatService answers chat messages with a sliding window of
// client-held history for context.
type ChatService struct {
	client    llm.Client
	publisher *events.Publisher
	window    int
	logger    *logger.Logger
}

// NewChatService creates a new chat service. window is the number of most
// recent history turns forwarded with each request.
func NewChatService(client llm.Client, publisher *events.Publisher, window int, log *logger.Logger) *ChatService {
	if window <= 0 {
		window = 6
	}
	return &ChatService{
		client:    client,
		publisher: publisher,
		window:    window,
		logger:    log,
	}
}

// Respond generates an assistant reply to message given prior history.
func (s *ChatService) Respond(ctx context.Context, message string, history []model.Turn, persona string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrNoMessage
	}

	turns := make([]prompt.Turn, len(history))
	for i, t := range history {
		turns[i] = prompt.Turn{Role: string(t.Role), Content: t.Content}
	}

	cfg := chatConfig
	start := time.Now()
	res, err := s.client.Generate(ctx, &llm.Request{
		Prompt: prompt.ForChat(persona, turns, s.window, message),
		Config: &cfg,
	})

	status := "success"
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = "cancelled"
	case err != nil:
		status = "error"
	}
	elapsed := time.Since(start)
	metrics.RecordGeneration("chat", s.client.Name(), status, elapsed.Seconds())
	s.publisher.Publish(events.GenerationEvent{
		Surface:   "chat",
		Provider:  s.client.Name(),
		Status:    status,
		LatencyMs: elapsed.Milliseconds(),
	})

	if err != nil {
		return "", err
	}
	if res.Text == "" {
		metrics.GenerationFallbacksTotal.WithLabelValues("chat").Inc()
		return ChatFallback, nil
	}
	return res.Text, nil
}
