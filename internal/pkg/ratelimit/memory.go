package ratelimit

import (
	"context"
	"sync"
	"time"

	"charter-booking/internal/pkg/clock"
)

type window struct {
	count     int
	resetTime time.Time
}

// MemoryStore keeps one fixed window per identifier in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*window
	clock   clock.Clock

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
	running  bool
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*window),
		clock:   clk,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (s *MemoryStore) Check(_ context.Context, identifier string, maxAttempts int, win time.Duration) (Result, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.entries[identifier]
	if !ok || now.After(existing.resetTime) {
		w := &window{count: 1, resetTime: now.Add(win)}
		s.entries[identifier] = w
		return Result{Allowed: true, RemainingAttempts: maxAttempts - 1, ResetTime: w.resetTime}, nil
	}

	if existing.count >= maxAttempts {
		return Result{Allowed: false, RemainingAttempts: 0, ResetTime: existing.resetTime}, nil
	}

	existing.count++
	return Result{
		Allowed:           true,
		RemainingAttempts: maxAttempts - existing.count,
		ResetTime:         existing.resetTime,
	}, nil
}

// Sweep deletes windows that have already reset and returns how many went.
func (s *MemoryStore) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, w := range s.entries {
		if now.After(w.resetTime) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartSweeper calls Sweep every interval until Stop.
func (s *MemoryStore) StartSweeper(interval time.Duration) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

func (s *MemoryStore) Stop(ctx context.Context) error {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	if !running {
		return nil
	}

	s.stopOnce.Do(func() { close(s.stop) })
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
