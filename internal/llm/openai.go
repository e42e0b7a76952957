package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o"

// OpenAIClient is the OpenAI generation backend. Media is passed as a
// base64 data-URL image part on the user message.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  defaultOpenAIModel,
	}, nil
}

// Name returns the provider name.
func (c *OpenAIClient) Name() string { return "openai" }

// Generate sends a single-shot completion request.
func (c *OpenAIClient) Generate(ctx context.Context, req *Request) (*Result, error) {
	start := time.Now()

	msg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if req.Media != nil {
		dataURL := fmt.Sprintf("data:%s;base64,%s",
			req.Media.MIMEType, base64.StdEncoding.EncodeToString(req.Media.Data))
		msg.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: req.Prompt},
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL}},
		}
	} else {
		msg.Content = req.Prompt
	}

	ccr := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: []openai.ChatCompletionMessage{msg},
	}
	if req.Config != nil {
		ccr.MaxTokens = req.Config.MaxOutputTokens
		ccr.Temperature = float32(req.Config.Temperature)
		ccr.TopP = float32(req.Config.TopP)
	}

	resp, err := c.client.CreateChatCompletion(ctx, ccr)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, &StatusError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
		return nil, err
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	return &Result{
		Text:      text,
		Model:     resp.Model,
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}
