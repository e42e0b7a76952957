package model

// GenerateFromTextRequest is the JSON body for text-to-content generation.
type GenerateFromTextRequest struct {
	Text         string `json:"text"`
	Platform     string `json:"platform"`
	Tone         string `json:"tone"`
	LineCount    int    `json:"lineCount"`
	Language     string `json:"language"`
	CustomPrompt string `json:"customPrompt"`
}

// GenerateResponse carries generated content back to the caller.
type GenerateResponse struct {
	Content string `json:"content"`
}

// ExtractTextResponse carries text recovered from an image. Text is the
// empty string when the backend found none.
type ExtractTextResponse struct {
	Text string `json:"text"`
}

// ChatRequest is the JSON body for the chat entrypoint.
type ChatRequest struct {
	Message string `json:"message"`
	History []Turn `json:"history"`
	Persona string `json:"persona,omitempty"`
}

// ChatResponse carries the assistant reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the JSON error shape for every entrypoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
