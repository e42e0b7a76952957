package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusErrorTransient(t *testing.T) {
	tests := []struct {
		name      string
		err       *StatusError
		transient bool
	}{
		{"rate limited", &StatusError{StatusCode: 429, Message: "quota exceeded"}, true},
		{"unavailable", &StatusError{StatusCode: 503, Message: "try later"}, true},
		{"overloaded message on 500", &StatusError{StatusCode: 500, Message: "The model is overloaded"}, true},
		{"overloaded case-insensitive", &StatusError{StatusCode: 500, Message: "OVERLOADED"}, true},
		{"bad request", &StatusError{StatusCode: 400, Message: "invalid argument"}, false},
		{"unauthorized", &StatusError{StatusCode: 401, Message: "bad key"}, false},
		{"plain server error", &StatusError{StatusCode: 500, Message: "internal"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.transient, tt.err.Transient())
		})
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(&StatusError{StatusCode: 503, Message: "busy"}))
	assert.False(t, Retryable(&StatusError{StatusCode: 400, Message: "nope"}))
	assert.True(t, Retryable(errors.New("connection reset")))
	assert.False(t, Retryable(context.Canceled))
	assert.False(t, Retryable(context.DeadlineExceeded))
}

func TestExhaustedErrorUnwrap(t *testing.T) {
	inner := &StatusError{StatusCode: 503, Message: "busy"}
	err := &ExhaustedError{Attempts: 4, Err: inner}

	var se *StatusError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, 503, se.StatusCode)
	assert.Contains(t, err.Error(), "4 attempts")
}
