//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"charter-booking/internal/infra"
	"charter-booking/internal/usecase/shared"
	sharedmock "charter-booking/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// 2026-06-01 is a Monday; trips in tests start two weeks later.
var fixedNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type harness struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	customers     *sharedmock.MockCustomerRepository
	bookings      *sharedmock.MockBookingRepository
	reviews       *sharedmock.MockReviewRepository
	ratingStats   *sharedmock.MockRatingStatsRepository
	reports       *sharedmock.MockReviewReportRepository
	notifications *sharedmock.MockNotificationRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	cache         *spyInvalidator
}

func newHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)
	h := &harness{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		customers:     sharedmock.NewMockCustomerRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		reviews:       sharedmock.NewMockReviewRepository(ctrl),
		ratingStats:   sharedmock.NewMockRatingStatsRepository(ctrl),
		reports:       sharedmock.NewMockReviewReportRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		cache:         &spyInvalidator{},
	}

	runTx := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, h.tx)
	}
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(runTx).AnyTimes()
	h.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(runTx).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Customers().Return(h.customers).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Reviews().Return(h.reviews).AnyTimes()
	h.tx.EXPECT().RatingStats().Return(h.ratingStats).AnyTimes()
	h.tx.EXPECT().ReviewReports().Return(h.reports).AnyTimes()
	h.tx.EXPECT().Notifications().Return(h.notifications).AnyTimes()
	h.tx.EXPECT().IdempotencyKeys().Return(h.idempotency).AnyTimes()
	return h
}

type spyInvalidator struct {
	mu    sync.Mutex
	trips []uuid.UUID
}

func (s *spyInvalidator) InvalidateTrip(tripID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = append(s.trips, tripID)
}

func (s *spyInvalidator) invalidated() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uuid.UUID(nil), s.trips...)
}

// newStrictUoW fails the test if any transaction is opened.
func newStrictUoW(ctrl *gomock.Controller) *sharedmock.MockUnitOfWork {
	return sharedmock.NewMockUnitOfWork(ctrl)
}
