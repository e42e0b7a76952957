package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMessageContent(t *testing.T) {
	assert.NoError(t, ValidateMessageContent("hello"))
	assert.Error(t, ValidateMessageContent(""))
	assert.Error(t, ValidateMessageContent(strings.Repeat("a", 100001)))
	assert.Error(t, ValidateMessageContent("bad\xff\xfe"))
}

func TestValidateCustomPrompt(t *testing.T) {
	assert.NoError(t, ValidateCustomPrompt(""))
	assert.NoError(t, ValidateCustomPrompt("mention the sale"))
	assert.Error(t, ValidateCustomPrompt(strings.Repeat("a", 4001)))
	assert.Error(t, ValidateCustomPrompt("bad\xff"))
}
