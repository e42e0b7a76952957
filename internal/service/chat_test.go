package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postcraft-ai/content-platform/internal/model"
	"github.com/postcraft-ai/content-platform/pkg/logger"
)

func TestRespondRequiresMessage(t *testing.T) {
	client := &fakeClient{}
	svc := NewChatService(client, nil, 6, logger.NewNop())

	_, err := svc.Respond(context.Background(), "  \n ", nil, "assistant")
	require.ErrorIs(t, err, ErrNoMessage)
	assert.Zero(t, client.calls)
}

func TestRespondAppliesSamplingConfig(t *testing.T) {
	client := &fakeClient{text: "hi there"}
	svc := NewChatService(client, nil, 6, logger.NewNop())

	got, err := svc.Respond(context.Background(), "hello", nil, "assistant")
	require.NoError(t, err)
	assert.Equal(t, "hi there", got)

	require.NotNil(t, client.last.Config)
	assert.InDelta(t, 0.7, client.last.Config.Temperature, 1e-9)
	assert.Equal(t, 40, client.last.Config.TopK)
	assert.InDelta(t, 0.95, client.last.Config.TopP, 1e-9)
	assert.Equal(t, 1024, client.last.Config.MaxOutputTokens)
}

func TestRespondTruncatesHistoryToWindow(t *testing.T) {
	client := &fakeClient{text: "reply"}
	svc := NewChatService(client, nil, 4, logger.NewNop())

	history := make([]model.Turn, 10)
	for i := range history {
		history[i] = model.Turn{Role: model.RoleUser, Content: fmt.Sprintf("turn-%d", i)}
	}

	_, err := svc.Respond(context.Background(), "latest", history, "assistant")
	require.NoError(t, err)

	assert.NotContains(t, client.last.Prompt, "turn-5")
	assert.Contains(t, client.last.Prompt, "turn-6")
	assert.Contains(t, client.last.Prompt, "turn-9")
	assert.Contains(t, client.last.Prompt, "latest")
}

func TestRespondEmptyResultFallsBack(t *testing.T) {
	client := &fakeClient{text: ""}
	svc := NewChatService(client, nil, 6, logger.NewNop())

	got, err := svc.Respond(context.Background(), "hello", nil, "assistant")
	require.NoError(t, err)
	assert.Equal(t, ChatFallback, got)
}

func TestRespondUsesPersona(t *testing.T) {
	client := &fakeClient{text: "yo"}
	svc := NewChatService(client, nil, 6, logger.NewNop())

	_, err := svc.Respond(context.Background(), "hello", nil, "jerry")
	require.NoError(t, err)
	assert.Contains(t, client.last.Prompt, "Respond as Jerry:")
}

func TestNewChatServiceDefaultsWindow(t *testing.T) {
	svc := NewChatService(&fakeClient{}, nil, 0, logger.NewNop())
	assert.Equal(t, 6, svc.window)
}
