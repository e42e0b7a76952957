package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// StatusError is a non-2xx response from the generation backend.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned HTTP %d: %s", e.StatusCode, e.Message)
}

// Transient reports whether the failure is momentary overload worth
// retrying. Status codes 429 and 503 are the primary criterion; the
// "overloaded" message match is a best-effort secondary signal for
// backends that report overload under other status codes.
func (e *StatusError) Transient() bool {
	if e.StatusCode == http.StatusTooManyRequests || e.StatusCode == http.StatusServiceUnavailable {
		return true
	}
	return strings.Contains(strings.ToLower(e.Message), "overloaded")
}

// ExhaustedError is returned after the retry bound is spent. It preserves
// the attempt count and the last backend error.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("backend unavailable after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error { return e.Err }

// Retryable classifies an error for the retry loop. Non-transient backend
// rejections stop the loop immediately; transport-level failures and
// transient statuses are retried. Context errors are never retried.
func Retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Transient()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
