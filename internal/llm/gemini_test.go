package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewGeminiClient("test-key", WithGeminiBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient("")
	require.Error(t, err)
}

func TestGeminiGenerateRequestShape(t *testing.T) {
	var captured geminiRequest
	var path, key string

	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		key = r.URL.Query().Get("key")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"a caption"}]}}]}`))
	})

	res, err := client.Generate(context.Background(), &Request{
		Prompt: "describe this",
		Media:  &Media{MIMEType: "image/png", Data: []byte{1, 2, 3}},
		Config: &GenerationConfig{Temperature: 0.7, TopK: 40, TopP: 0.95, MaxOutputTokens: 1024},
		Safety: DefaultSafetySettings(),
	})
	require.NoError(t, err)
	assert.Equal(t, "a caption", res.Text)
	assert.Equal(t, "gemini-1.5-flash", res.Model)

	assert.Equal(t, "/models/gemini-1.5-flash:generateContent", path)
	assert.Equal(t, "test-key", key)

	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 2)
	assert.Equal(t, "describe this", captured.Contents[0].Parts[0].Text)

	inline := captured.Contents[0].Parts[1].InlineData
	require.NotNil(t, inline)
	assert.Equal(t, "image/png", inline.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), inline.Data)

	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, 1024, captured.GenerationConfig.MaxOutputTokens)
	assert.Len(t, captured.SafetySettings, 4)
}

func TestGeminiGenerateTextOnlyOmitsOptionalFields(t *testing.T) {
	var raw map[string]json.RawMessage

	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &raw))
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	})

	_, err := client.Generate(context.Background(), &Request{Prompt: "hello"})
	require.NoError(t, err)

	assert.Contains(t, raw, "contents")
	assert.NotContains(t, raw, "generationConfig")
	assert.NotContains(t, raw, "safetySettings")
}

func TestGeminiGenerateEmptyCandidates(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	res, err := client.Generate(context.Background(), &Request{Prompt: "p"})
	require.NoError(t, err)
	assert.Empty(t, res.Text)
}

func TestGeminiGenerateBackendError(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"code":503,"message":"The model is overloaded. Please try again later.","status":"UNAVAILABLE"}}`))
	})

	_, err := client.Generate(context.Background(), &Request{Prompt: "p"})

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
	assert.Contains(t, se.Message, "overloaded")
	assert.True(t, se.Transient())
}

func TestGeminiGenerateMalformedErrorBody(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`not json`))
	})

	_, err := client.Generate(context.Background(), &Request{Prompt: "p"})

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Equal(t, "unknown error", se.Message)
	assert.False(t, se.Transient())
}
