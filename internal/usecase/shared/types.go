package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type CustomerSnapshot struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         string
	PasswordHash *string
}

// IdempotencyRecord ties a client-supplied key to the booking its first
// request produced.
type IdempotencyRecord struct {
	Key             uuid.UUID
	Endpoint        string
	RequestHash     string
	ResultBookingID uuid.UUID
	ExpiresAt       time.Time
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

// Event topics published by the outbox relay.
const (
	TopicBookingCreated   = "booking.created"
	TopicBookingModified  = "booking.modified"
	TopicBookingCancelled = "booking.cancelled"
	TopicReviewReported   = "review.reported"
)

// EventPublisher is the sink the outbox relay hands jobs to.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, messageID uuid.UUID, payload []byte) error
}
