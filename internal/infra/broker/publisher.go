package broker

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Publisher delivers one outbox event. Implementations must be safe for use
// by a single relay goroutine; the relay never publishes concurrently.
type Publisher interface {
	Publish(ctx context.Context, topic string, messageID uuid.UUID, payload []byte) error
	Close() error
}

// LogPublisher writes events to the structured log. It is used when no broker
// URL is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, messageID uuid.UUID, payload []byte) error {
	p.logger.InfoContext(ctx, "Event published",
		"topic", topic,
		"message_id", messageID.String(),
		"payload", string(payload))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
