package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"charter-booking/internal/domain/booking"
	"charter-booking/internal/domain/customer"
	"charter-booking/internal/domain/trip"
	"charter-booking/internal/infra"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/pkg/patch"
	"charter-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBookingCreateFailed = errs.New("failed to create booking")
	ErrIdempotencyKeyReuse = errs.New("idempotency key was used for a different request")
	ErrIdempotencyConflict = errs.New("a request with this idempotency key is in progress")
)

const (
	createBookingEndpoint = "POST /api/bookings"
	idempotencyTTL        = 24 * time.Hour
)

// TripCacheInvalidator drops cached trip and review reads after a write.
type TripCacheInvalidator interface {
	InvalidateTrip(tripID uuid.UUID)
}

type AvailabilityRequest struct {
	TripID    uuid.UUID
	StartDate time.Time
	EndDate   *time.Time
	Guests    int
}

type CustomerContact struct {
	Name  string
	Email string
	Phone string
}

type CreateBookingRequest struct {
	TripID          uuid.UUID
	StartDate       time.Time
	EndDate         *time.Time
	Guests          int
	SpecialRequests string
	Customer        CustomerContact
	// IdempotencyKey makes a retried request return the first result.
	IdempotencyKey *uuid.UUID
}

type CreateBookingResult struct {
	BookingID       uuid.UUID
	Status          booking.Status
	TotalPriceCents int64
	TripTitle       string
	TripLocation    string
	Replayed        bool
}

// ModifyBookingRequest leaves a field unchanged when it is nil.
type ModifyBookingRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
	Guests    *int
}

type BookingCommands interface {
	CheckAvailability(ctx context.Context, req AvailabilityRequest) (booking.Availability, error)
	Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error)
	Modify(ctx context.Context, bookingID, customerID uuid.UUID, req ModifyBookingRequest) error
	Cancel(ctx context.Context, bookingID, customerID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	services *booking.Services
	cache    TripCacheInvalidator
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, cache TripCacheInvalidator) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clk,
		services: &booking.Services{
			Clock:           clk,
			PriceCalculator: booking.NewDefaultPriceCalculator(),
		},
		cache: cache,
	}
}

// CheckAvailability reads outside any transaction; the answer is advisory and
// Create repeats the check under serializable isolation.
func (c *bookingCommandsImpl) CheckAvailability(ctx context.Context, req AvailabilityRequest) (booking.Availability, error) {
	dates, err := booking.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return booking.Availability{}, err
	}

	reads := c.uow.CommandReads()
	t, err := loadTrip(ctx, reads, req.TripID)
	if err != nil {
		return booking.Availability{}, err
	}
	if t == nil {
		return booking.CheckAvailability(nil, dates, req.Guests, nil), nil
	}

	existing, err := reads.ActiveBookingsByTrip(ctx, t.ID())
	if err != nil {
		return booking.Availability{}, err
	}
	return booking.CheckAvailability(t, dates, req.Guests, existing), nil
}

func (c *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	contact, err := customer.NewContactInfo(req.Customer.Name, req.Customer.Email, req.Customer.Phone)
	if err != nil {
		return nil, err
	}
	dates, err := booking.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	hash, err := requestHash(req)
	if err != nil {
		return nil, err
	}

	var result *CreateBookingResult
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		if req.IdempotencyKey != nil {
			prior, err := c.replay(ctx, tx, *req.IdempotencyKey, hash)
			if err != nil {
				return err
			}
			if prior != nil {
				result = prior
				return nil
			}
		}

		t, err := loadTrip(ctx, tx.Reads(), req.TripID)
		if err != nil {
			return err
		}
		var existing []*booking.Booking
		if t != nil {
			existing, err = tx.Reads().ActiveBookingsByTrip(ctx, t.ID())
			if err != nil {
				return err
			}
		}

		// Rejections roll the upsert back with the rest of the transaction.
		customerID, err := tx.Customers().UpsertByContact(ctx, tx.DB(), customer.NewFromContact(contact, c.clock.Now()))
		if err != nil {
			return err
		}

		b, err := booking.NewBooking(c.services, t, booking.Request{
			CustomerID:      customerID,
			Dates:           dates,
			Guests:          req.Guests,
			SpecialRequests: req.SpecialRequests,
		}, existing)
		if err != nil {
			return err
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			return err
		}

		if err := enqueueBookingEvent(ctx, tx, shared.TopicBookingCreated, id, b, c.clock.Now()); err != nil {
			return err
		}
		if req.IdempotencyKey != nil {
			if err := c.remember(ctx, tx, *req.IdempotencyKey, hash, id); err != nil {
				return err
			}
		}

		result = &CreateBookingResult{
			BookingID:       id,
			Status:          b.Status(),
			TotalPriceCents: b.TotalPrice().Cents(),
			TripTitle:       t.Title(),
			TripLocation:    t.Location().Name(),
		}
		return nil
	})
	if err != nil {
		if isBookingRuleError(err) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrBookingCreateFailed)
	}

	c.cache.InvalidateTrip(req.TripID)
	return result, nil
}

func (c *bookingCommandsImpl) Modify(ctx context.Context, bookingID, customerID uuid.UUID, req ModifyBookingRequest) error {
	var tripID uuid.UUID
	err := c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadOwnedBooking(ctx, tx.Reads(), bookingID, customerID)
		if err != nil {
			return err
		}
		tripID = b.TripID()

		change, err := buildChange(b, req)
		if err != nil {
			return err
		}

		t, err := tx.Reads().TripByID(ctx, b.TripID())
		if err != nil {
			return err
		}
		others, err := tx.Reads().ActiveBookingsByTrip(ctx, b.TripID())
		if err != nil {
			return err
		}

		if err := b.Modify(c.services, t, change, others); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return err
		}
		return enqueueBookingEvent(ctx, tx, shared.TopicBookingModified, b.ID(), b, c.clock.Now())
	})
	if err != nil {
		return err
	}

	c.cache.InvalidateTrip(tripID)
	return nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, customerID uuid.UUID) error {
	var tripID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadOwnedBooking(ctx, tx.Reads(), bookingID, customerID)
		if err != nil {
			return err
		}
		tripID = b.TripID()

		if err := b.Cancel(c.clock.Now()); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return err
		}
		return enqueueBookingEvent(ctx, tx, shared.TopicBookingCancelled, b.ID(), b, c.clock.Now())
	})
	if err != nil {
		return err
	}

	c.cache.InvalidateTrip(tripID)
	return nil
}

// loadTrip maps a missing trip to nil so the domain rules can report it.
func loadTrip(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*trip.Trip, error) {
	t, err := reads.TripByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// Another customer's booking is reported as missing.
func loadOwnedBooking(ctx context.Context, reads shared.CommandReads, bookingID, customerID uuid.UUID) (*booking.Booking, error) {
	b, err := reads.BookingForUpdate(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !b.IsOwnedBy(customerID) {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func buildChange(b *booking.Booking, req ModifyBookingRequest) (booking.Change, error) {
	change := booking.Change{Guests: req.Guests}
	if req.StartDate == nil && req.EndDate == nil {
		return change, nil
	}

	start := patch.Coalesce(req.StartDate, b.Dates().Start())
	end := b.Dates().End()
	if req.EndDate != nil {
		end = req.EndDate
	}
	dates, err := booking.NewDateRange(start, end)
	if err != nil {
		return booking.Change{}, err
	}
	change.Dates = &dates
	return change, nil
}

// replay returns the stored result for key, or nil when the key is new.
func (c *bookingCommandsImpl) replay(ctx context.Context, tx shared.Tx, key uuid.UUID, hash string) (*CreateBookingResult, error) {
	rec, err := tx.IdempotencyKeys().Find(ctx, tx.DB(), key, c.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if rec.Endpoint != createBookingEndpoint || rec.RequestHash != hash {
		return nil, ErrIdempotencyKeyReuse
	}

	b, err := tx.Reads().BookingForUpdate(ctx, rec.ResultBookingID)
	if err != nil {
		return nil, err
	}
	t, err := tx.Reads().TripByID(ctx, b.TripID())
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{
		BookingID:       b.ID(),
		Status:          b.Status(),
		TotalPriceCents: b.TotalPrice().Cents(),
		TripTitle:       t.Title(),
		TripLocation:    t.Location().Name(),
		Replayed:        true,
	}, nil
}

func (c *bookingCommandsImpl) remember(ctx context.Context, tx shared.Tx, key uuid.UUID, hash string, bookingID uuid.UUID) error {
	now := c.clock.Now()
	saved, err := tx.IdempotencyKeys().Save(ctx, tx.DB(), shared.IdempotencyRecord{
		Key:             key,
		Endpoint:        createBookingEndpoint,
		RequestHash:     hash,
		ResultBookingID: bookingID,
		ExpiresAt:       now.Add(idempotencyTTL),
	}, now)
	if err != nil {
		return err
	}
	if !saved {
		return ErrIdempotencyConflict
	}
	return nil
}

// requestHash fingerprints everything but the key itself.
func requestHash(req CreateBookingRequest) (string, error) {
	req.IdempotencyKey = nil
	data, err := json.Marshal(req)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode booking request")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func isBookingRuleError(err error) bool {
	var rejected *booking.RejectedError
	if errs.As(err, &rejected) {
		return true
	}
	return errs.Is(err, booking.ErrStartInPast) ||
		errs.Is(err, booking.ErrInvalidGuests) ||
		errs.Is(err, booking.ErrInvalidDateRange) ||
		errs.Is(err, ErrIdempotencyKeyReuse) ||
		errs.Is(err, ErrIdempotencyConflict)
}

type bookingEvent struct {
	BookingID  uuid.UUID `json:"bookingId"`
	TripID     uuid.UUID `json:"tripId"`
	CustomerID uuid.UUID `json:"customerId"`
	Status     string    `json:"status"`
	StartDate  string    `json:"startDate"`
	EndDate    *string   `json:"endDate,omitempty"`
	Guests     int       `json:"guests"`
	TotalPrice float64   `json:"totalPrice"`
	OccurredAt time.Time `json:"occurredAt"`
}

func enqueueBookingEvent(ctx context.Context, tx shared.Tx, topic string, id uuid.UUID, b *booking.Booking, now time.Time) error {
	event := bookingEvent{
		BookingID:  id,
		TripID:     b.TripID(),
		CustomerID: b.CustomerID(),
		Status:     b.Status().String(),
		StartDate:  b.Dates().Start().Format(time.DateOnly),
		Guests:     b.Guests(),
		TotalPrice: b.TotalPrice().Dollars(),
		OccurredAt: now.UTC(),
	}
	if end := b.Dates().End(); end != nil {
		s := end.Format(time.DateOnly)
		event.EndDate = &s
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "booking", topic, payload, now)
}
