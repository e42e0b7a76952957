// Package model defines data structures for the content platform.
package model

import (
	"errors"
)

// MaxMediaBytes is the largest inline media payload accepted (10 MiB).
const MaxMediaBytes = 10 << 20

// MediaKind identifies what kind of media was uploaded.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

var (
	// ErrNoMedia is returned when a request carries no media file.
	ErrNoMedia = errors.New("no media file provided")
	// ErrMediaTooLarge is returned when a payload exceeds MaxMediaBytes.
	ErrMediaTooLarge = errors.New("file size too large, maximum size is 10MB")
)

// MediaPayload is an inline binary attachment for a generation request.
// It lives for the duration of one request only.
type MediaPayload struct {
	Bytes    []byte
	MIMEType string
	Kind     MediaKind
}

// Validate checks the payload before any backend call is attempted.
func (m *MediaPayload) Validate() error {
	if m == nil || len(m.Bytes) == 0 {
		return ErrNoMedia
	}
	if len(m.Bytes) > MaxMediaBytes {
		return ErrMediaTooLarge
	}
	return nil
}
