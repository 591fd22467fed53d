package booking

import (
	"time"

	"charter-booking/internal/pkg/clock"
)

// DateRange is a closed interval of calendar days. A missing end means a
// single-day booking on the candidate side; on stored bookings it keeps the
// open-ended blocking rule in ConflictsWith.
type DateRange struct {
	start time.Time
	end   *time.Time
}

func NewDateRange(start time.Time, end *time.Time) (DateRange, error) {
	s := clock.DateOf(start)
	if end == nil {
		return DateRange{start: s}, nil
	}
	e := clock.DateOf(*end)
	if e.Before(s) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: &e}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() *time.Time {
	if r.end == nil {
		return nil
	}
	e := *r.end
	return &e
}

func (r DateRange) HasEnd() bool {
	return r.end != nil
}

// EffectiveEnd is the last occupied day when the range is used as a request.
func (r DateRange) EffectiveEnd() time.Time {
	if r.end == nil {
		return r.start
	}
	return *r.end
}

// Days counts occupied calendar days, inclusive.
func (r DateRange) Days() int {
	return int(r.EffectiveEnd().Sub(r.start).Hours()/24) + 1
}

// ConflictsWith reports whether the stored range r blocks candidate.
// A stored range without an end blocks every candidate starting on or after it.
func (r DateRange) ConflictsWith(candidate DateRange) bool {
	if r.end == nil {
		return !r.start.After(candidate.start)
	}
	return !r.start.After(candidate.EffectiveEnd()) && !r.end.Before(candidate.start)
}

func (r DateRange) Equal(other DateRange) bool {
	if !r.start.Equal(other.start) {
		return false
	}
	if r.end == nil || other.end == nil {
		return r.end == nil && other.end == nil
	}
	return r.end.Equal(*other.end)
}
