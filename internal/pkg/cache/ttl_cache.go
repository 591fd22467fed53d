package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"charter-booking/internal/pkg/clock"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const DefaultTTL = 5 * time.Minute

type entry[V any] struct {
	value    V
	storedAt time.Time
	ttl      time.Duration
}

func (e entry[V]) expired(now time.Time) bool {
	return now.Sub(e.storedAt) > e.ttl
}

// TTLCache is an in-process map whose entries expire after their TTL. Expired
// entries are dropped lazily on read and in bulk by Cleanup.
type TTLCache[V any] struct {
	mu    sync.Mutex
	items map[string]entry[V]
	ttl   time.Duration
	clock clock.Clock
	group singleflight.Group

	running  bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func New[V any](ttl time.Duration, clk clock.Clock) *TTLCache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TTLCache[V]{
		items: make(map[string]entry[V]),
		ttl:   ttl,
		clock: clk,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

func (c *TTLCache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

func (c *TTLCache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	c.items[key] = entry[V]{value: value, storedAt: c.clock.Now(), ttl: ttl}
	c.mu.Unlock()
}

func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if e.expired(c.clock.Now()) {
		delete(c.items, key)
		return zero, false
	}
	return e.value, true
}

func (c *TTLCache[V]) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

func (c *TTLCache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	delete(c.items, key)
	return ok
}

// DeletePrefix drops every key starting with prefix.
func (c *TTLCache[V]) DeletePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
			removed++
		}
	}
	return removed
}

func (c *TTLCache[V]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]entry[V])
	c.mu.Unlock()
}

// Len counts stored entries, including expired ones not yet cleaned up.
func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Cleanup removes expired entries and reports how many were dropped.
func (c *TTLCache[V]) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	removed := 0
	for k, e := range c.items {
		if e.expired(now) {
			delete(c.items, k)
			removed++
		}
	}
	return removed
}

// GetOrLoad returns the cached value or calls load once per key, even when
// several callers miss at the same time. Load errors are not cached.
func (c *TTLCache[V]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	res, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ := res.(V)
	return v, nil
}

// Load is GetOrLoad for a cache shared across value types.
func Load[T any](ctx context.Context, c *TTLCache[any], key string, load func(ctx context.Context) (T, error)) (T, error) {
	res, err := c.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	v, ok := res.(T)
	if !ok {
		// another type was stored under this key; reload without caching
		return load(ctx)
	}
	return v, nil
}

// StartJanitor runs Cleanup every interval until Stop is called.
func (c *TTLCache[V]) StartJanitor(interval time.Duration) {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.mu.Unlock()

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				c.Cleanup()
			}
		}
	}()
}

// Stop ends the janitor and waits for it to exit.
func (c *TTLCache[V]) Stop(ctx context.Context) error {
	c.mu.Lock()
	running := c.running
	c.mu.Unlock()
	if !running {
		return nil
	}

	c.stopOnce.Do(func() { close(c.stop) })
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TripsKey(params any) string {
	b, err := json.Marshal(params)
	if err != nil {
		return "trips:invalid"
	}
	return "trips:" + string(b)
}

func TripKey(id uuid.UUID) string {
	return "trip:" + id.String()
}

func TripReviewsPrefix(tripID uuid.UUID) string {
	return "reviews:" + tripID.String() + ":"
}

func ReviewsKey(tripID uuid.UUID, params any) string {
	if params == nil {
		return "reviews:" + tripID.String() + ":all"
	}
	b, err := json.Marshal(params)
	if err != nil {
		return "reviews:" + tripID.String() + ":invalid"
	}
	return "reviews:" + tripID.String() + ":" + string(b)
}

// InvalidateTrip drops everything derived from one trip's bookings or
// reviews: its detail, all search/featured/filter pages and its review pages.
func (c *TTLCache[V]) InvalidateTrip(tripID uuid.UUID) {
	c.Delete(TripKey(tripID))
	c.DeletePrefix("trips:")
	c.DeletePrefix(TripReviewsPrefix(tripID))
}
