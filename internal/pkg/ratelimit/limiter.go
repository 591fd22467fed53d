package ratelimit

import (
	"context"
	"time"
)

// Result mirrors one fixed-window decision. ResetTime is when the window
// that produced this decision ends.
type Result struct {
	Allowed           bool
	RemainingAttempts int
	ResetTime         time.Time
}

type Limiter interface {
	Check(ctx context.Context, identifier string, maxAttempts int, window time.Duration) (Result, error)
}

// Policy binds a limiter to fixed attempts and window for one use case.
type Policy struct {
	Limiter     Limiter
	MaxAttempts int
	Window      time.Duration
}

func (p Policy) Check(ctx context.Context, identifier string) (Result, error) {
	return p.Limiter.Check(ctx, identifier, p.MaxAttempts, p.Window)
}
