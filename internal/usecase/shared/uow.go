package shared

import (
	"context"
	"time"

	"charter-booking/internal/domain/booking"
	"charter-booking/internal/domain/customer"
	"charter-booking/internal/domain/review"
	"charter-booking/internal/domain/trip"
	sqlc "charter-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: ReadCommitted transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: check-then-write flows whose reads must not be invalidated before commit
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Customers() CustomerRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	ReviewReports() ReviewReportRepository
	Notifications() NotificationRepository
	IdempotencyKeys() IdempotencyRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	TripByID(ctx context.Context, id uuid.UUID) (*trip.Trip, error)
	ActiveBookingsByTrip(ctx context.Context, tripID uuid.UUID) ([]*booking.Booking, error)
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*review.Review, error)
	CustomerByEmail(ctx context.Context, email string) (*CustomerSnapshot, error)
}

type CustomerRepository interface {
	// UpsertByContact returns the id of the stored row, which differs from
	// c.ID() when the email already existed.
	UpsertByContact(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (uuid.UUID, error)
	Register(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (uuid.UUID, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx sqlc.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcTripRatingStats(ctx context.Context, tx sqlc.DBTX, tripID uuid.UUID) error
}

type ReviewReportRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, reviewID, reporterID uuid.UUID, reason string, at time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError string, runAt time.Time) error
}

type IdempotencyRepository interface {
	Find(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, now time.Time) (*IdempotencyRecord, error)
	Save(ctx context.Context, tx sqlc.DBTX, rec IdempotencyRecord, now time.Time) (bool, error)
}
