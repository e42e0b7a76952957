// Package llm provides generation backend clients and the retry policy
// that masks transient backend unavailability.
package llm

import (
	"context"
)

// Request is a single-shot generation request. Every field except Prompt
// is optional; providers ignore what they cannot express.
type Request struct {
	Prompt string
	Media  *Media
	Config *GenerationConfig
	Safety []SafetySetting
}

// Media is an inline binary part sent alongside the prompt.
type Media struct {
	MIMEType string
	Data     []byte
}

// GenerationConfig carries sampling parameters for chat-style requests.
type GenerationConfig struct {
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}

// SafetySetting requests moderation filtering for one harm category.
type SafetySetting struct {
	Category  string
	Threshold string
}

// DefaultSafetySettings blocks medium-and-above content across the four
// harm categories, matching the media generation surface.
func DefaultSafetySettings() []SafetySetting {
	const threshold = "BLOCK_MEDIUM_AND_ABOVE"
	return []SafetySetting{
		{Category: "HARM_CATEGORY_HARASSMENT", Threshold: threshold},
		{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: threshold},
		{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: threshold},
		{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: threshold},
	}
}

// Result is the extracted backend output. Text is empty when the backend
// succeeded but returned no extractable content; callers substitute their
// own fallback string.
type Result struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client is the interface for generation backends. Implementations issue
// exactly one backend call per Generate; retries live in WithRetry.
type Client interface {
	Generate(ctx context.Context, req *Request) (*Result, error)

	// Name returns the provider name for logs and metrics.
	Name() string
}

// Provider is the type of generation backend.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// NewClient creates a backend client for the given provider.
func NewClient(provider Provider, apiKey string) (Client, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey)
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey)
	default:
		return NewGeminiClient(apiKey)
	}
}
