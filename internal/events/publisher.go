// Package events publishes generation lifecycle events to NATS. The
// publisher is optional: a nil Publisher is a valid no-op, so call sites
// stay unconditional.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/postcraft-ai/content-platform/pkg/logger"
)

// SubjectGenerated is the subject generation events are published on.
const SubjectGenerated = "content.generated"

// GenerationEvent describes one completed (or failed) generation request.
// It carries no generated content; nothing user-visible is persisted.
type GenerationEvent struct {
	ID        string    `json:"id"`
	Surface   string    `json:"surface"`
	Provider  string    `json:"provider"`
	Platform  string    `json:"platform,omitempty"`
	Status    string    `json:"status"`
	LatencyMs int64     `json:"latency_ms"`
	CreatedAt time.Time `json:"created_at"`
}

// Publisher emits generation events to NATS.
type Publisher struct {
	conn *nats.Conn
	log  *logger.Logger
}

// Connect dials NATS. An empty URL disables publishing and returns a nil
// Publisher.
func Connect(url string, log *logger.Logger) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}

	conn, err := nats.Connect(url,
		nats.Name("content-platform"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}

	log.Info("connected to NATS", zap.String("url", url))
	return &Publisher{conn: conn, log: log}, nil
}

// IsConnected reports whether the underlying connection is up.
func (p *Publisher) IsConnected() bool {
	return p != nil && p.conn != nil && p.conn.IsConnected()
}

// Publish is fire-and-forget: failures are logged and never affect the
// request outcome.
func (p *Publisher) Publish(ev GenerationEvent) {
	if p == nil || p.conn == nil {
		return
	}

	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := p.conn.Publish(SubjectGenerated, data); err != nil {
		p.log.Warn("failed to publish generation event", zap.Error(err))
	}
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}
