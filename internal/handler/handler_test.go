package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postcraft-ai/content-platform/internal/llm"
	"github.com/postcraft-ai/content-platform/internal/model"
	"github.com/postcraft-ai/content-platform/internal/service"
	"github.com/postcraft-ai/content-platform/pkg/logger"
)

type stubClient struct {
	last *llm.Request
	text string
	err  error
}

func (c *stubClient) Name() string { return "stub" }

func (c *stubClient) Generate(ctx context.Context, req *llm.Request) (*llm.Result, error) {
	c.last = req
	if c.err != nil {
		return nil, c.err
	}
	return &llm.Result{Text: c.text}, nil
}

func newGenerateHandler(client llm.Client) *GenerateHandler {
	log := logger.NewNop()
	return NewGenerateHandler(service.NewContentService(client, nil, log), log)
}

func newChatHandler(client llm.Client) *ChatHandler {
	log := logger.NewNop()
	return NewChatHandler(service.NewChatService(client, nil, 6, log), log)
}

// multipartBody builds a multipart form with one file field plus extra
// string fields.
func multipartBody(t *testing.T, field, filename, contentType string, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestFromTextGeneratesContent(t *testing.T) {
	client := &stubClient{text: "a tweet"}
	h := newGenerateHandler(client)

	body := `{"text":"launch day","platform":"twitter","tone":"humorous","lineCount":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/text", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.FromText(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	got := decodeBody[model.GenerateResponse](t, rec)
	assert.Equal(t, "a tweet", got.Content)

	assert.Contains(t, client.last.Prompt, `"launch day"`)
	assert.Contains(t, client.last.Prompt, "exactly 3 lines")
}

func TestFromTextRejectsInvalidJSON(t *testing.T) {
	h := newGenerateHandler(&stubClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/text", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h.FromText(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFromTextRejectsMissingText(t *testing.T) {
	h := newGenerateHandler(&stubClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/text", strings.NewReader(`{"text":"  "}`))
	rec := httptest.NewRecorder()

	h.FromText(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeBody[model.ErrorResponse](t, rec)
	assert.Equal(t, "No text provided", got.Error)
}

func TestFromTextDefaultsLineCount(t *testing.T) {
	client := &stubClient{text: "content"}
	h := newGenerateHandler(client)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/text", strings.NewReader(`{"text":"hello"}`))
	rec := httptest.NewRecorder()

	h.FromText(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, client.last.Prompt, "exactly 10 lines")
}

func TestFromTextRejectsOversizeCustomPrompt(t *testing.T) {
	h := newGenerateHandler(&stubClient{})

	body, err := json.Marshal(model.GenerateFromTextRequest{
		Text:         "hello",
		CustomPrompt: strings.Repeat("x", 4001),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/text", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.FromText(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFromMediaGeneratesContent(t *testing.T) {
	client := &stubClient{text: "an insta caption"}
	h := newGenerateHandler(client)

	buf, contentType := multipartBody(t, "media", "photo.jpg", "image/jpeg", []byte("fake-jpeg"), map[string]string{
		"platform":  "instagram",
		"tone":      "casual",
		"lineCount": "5",
		"mediaType": "image",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.FromMedia(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[model.GenerateResponse](t, rec)
	assert.Equal(t, "an insta caption", got.Content)

	require.NotNil(t, client.last.Media)
	assert.Equal(t, "image/jpeg", client.last.Media.MIMEType)
	assert.Equal(t, []byte("fake-jpeg"), client.last.Media.Data)
	assert.Contains(t, client.last.Prompt, "Instagram")
}

func TestFromMediaRequiresFile(t *testing.T) {
	h := newGenerateHandler(&stubClient{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("platform", "twitter"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.FromMedia(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeBody[model.ErrorResponse](t, rec)
	assert.Equal(t, "No media file provided", got.Error)
}

func TestFromMediaRejectsOversizeFile(t *testing.T) {
	client := &stubClient{text: "never"}
	h := newGenerateHandler(client)

	buf, contentType := multipartBody(t, "media", "big.jpg", "image/jpeg", make([]byte, model.MaxMediaBytes+1), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.FromMedia(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeBody[model.ErrorResponse](t, rec)
	assert.Equal(t, "File size too large. Maximum size is 10MB.", got.Error)
	assert.Nil(t, client.last)
}

func TestExtractTextReturnsEmptyOnSentinel(t *testing.T) {
	client := &stubClient{text: "No text found in the image."}
	h := newGenerateHandler(client)

	buf, contentType := multipartBody(t, "image", "scan.png", "image/png", []byte("fake-png"), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract-text", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ExtractText(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[model.ExtractTextResponse](t, rec)
	assert.Empty(t, got.Text)
}

func TestChatRespond(t *testing.T) {
	client := &stubClient{text: "hi, how can I help?"}
	h := newChatHandler(client)

	body := `{"message":"hello","history":[{"role":"user","content":"earlier"}],"persona":"assistant"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Respond(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[model.ChatResponse](t, rec)
	assert.Equal(t, "hi, how can I help?", got.Response)
	assert.Contains(t, client.last.Prompt, "earlier")
}

func TestChatRequiresMessage(t *testing.T) {
	h := newChatHandler(&stubClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":""}`))
	rec := httptest.NewRecorder()

	h.Respond(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeBody[model.ErrorResponse](t, rec)
	assert.Equal(t, "No message provided", got.Error)
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "exhausted retries",
			err:        &llm.ExhaustedError{Attempts: 4, Err: &llm.StatusError{StatusCode: 503, Message: "busy"}},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "The generation backend is currently overloaded. Please try again later.",
		},
		{
			name:       "backend rejection keeps status",
			err:        &llm.StatusError{StatusCode: 429, Message: "quota exceeded"},
			wantStatus: http.StatusTooManyRequests,
			wantError:  "Error from generation backend: quota exceeded",
		},
		{
			name:       "cancellation",
			err:        context.Canceled,
			wantStatus: http.StatusRequestTimeout,
			wantError:  "request cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newGenerateHandler(&stubClient{err: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate/text", strings.NewReader(`{"text":"hello"}`))
			rec := httptest.NewRecorder()

			h.FromText(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			got := decodeBody[model.ErrorResponse](t, rec)
			assert.Equal(t, tt.wantError, got.Error)
		})
	}
}
