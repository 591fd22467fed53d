package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/usecase/shared"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultBatchSize    = 20
	DefaultMaxAttempts  = 5

	baseRetryDelay = 10 * time.Second
	maxRetryDelay  = 10 * time.Minute
)

type Config struct {
	PollInterval time.Duration
	BatchSize    int32
	MaxAttempts  int32
}

// Relay drains queued notification jobs to the event publisher. Jobs are
// claimed with SKIP LOCKED, so several relays may run against one database.
type Relay struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	cfg       Config

	mu       sync.Mutex
	running  bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewRelay(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, cfg Config) *Relay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// RunOnce claims one batch of due jobs and returns how many were published.
// A publish failure reschedules the job; it never aborts the batch.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			pubErr := r.publisher.Publish(ctx, job.Topic, job.ID, job.Payload)
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
					return err
				}
				sent++
				continue
			}

			attempts := job.Attempts + 1
			status := shared.JobStatusQueued
			if attempts >= r.cfg.MaxAttempts {
				status = shared.JobStatusFailed
			}
			slog.Warn("Event publish failed",
				"job_id", job.ID.String(),
				"topic", job.Topic,
				"attempt", attempts,
				"status", status,
				"error", pubErr.Error())

			runAt := now.Add(RetryDelay(attempts))
			if err := tx.Notifications().Reschedule(ctx, tx.DB(), job.ID, status, pubErr.Error(), runAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

// RetryDelay doubles from 10s per attempt, capped at 10 minutes.
func RetryDelay(attempts int32) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := baseRetryDelay
	for i := int32(1); i < attempts; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}

func (r *Relay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	go r.loop()
}

func (r *Relay) loop() {
	defer close(r.done)

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-r.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			sent, err := r.RunOnce(ctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Error("Outbox relay batch failed", "error", err.Error())
				}
				continue
			}
			if sent > 0 {
				slog.Debug("Outbox relay published events", "count", sent)
			}
		}
	}
}

// Stop halts the loop and waits for an in-flight batch, bounded by ctx.
func (r *Relay) Stop(ctx context.Context) error {
	r.mu.Lock()
	running := r.running
	r.mu.Unlock()
	if !running {
		return nil
	}

	r.stopOnce.Do(func() { close(r.stop) })
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
