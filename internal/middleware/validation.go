package middleware

import (
	"errors"
	"unicode/utf8"
)

// ValidateMessageContent validates chat message content.
func ValidateMessageContent(content string) error {
	if len(content) == 0 {
		return errors.New("content cannot be empty")
	}
	if len(content) > 100000 { // ~100KB limit
		return errors.New("content exceeds maximum length")
	}
	if !utf8.ValidString(content) {
		return errors.New("content must be valid UTF-8")
	}
	return nil
}

// ValidateCustomPrompt validates optional free-text instructions.
func ValidateCustomPrompt(prompt string) error {
	if len(prompt) > 4000 {
		return errors.New("custom prompt exceeds maximum length")
	}
	if !utf8.ValidString(prompt) {
		return errors.New("custom prompt must be valid UTF-8")
	}
	return nil
}
