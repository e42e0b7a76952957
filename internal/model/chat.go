package model

import (
	"time"
)

// Role represents the role of a chat turn author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one prior exchange in a client-held chat transcript. History is
// kept entirely client-side; the server sees only the window sent with
// each request.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}
