package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

var ErrUnexpectedReply = errs.New("unexpected rate limit script reply")

// Same fixed-window rules as MemoryStore. Window bounds come from the app
// clock while the key TTL is relative to the server clock, so skew between
// the two only shifts when redis sweeps the key.
var fixedWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local window_ms = tonumber(ARGV[2])
	local max_attempts = tonumber(ARGV[3])

	local state = redis.call('HMGET', key, 'count', 'reset_ms')
	local count = tonumber(state[1])
	local reset_ms = tonumber(state[2])

	if count == nil or reset_ms == nil or now_ms > reset_ms then
		reset_ms = now_ms + window_ms
		redis.call('HSET', key, 'count', 1, 'reset_ms', reset_ms)
		redis.call('PEXPIRE', key, window_ms + 1000)
		return { 1, max_attempts - 1, reset_ms }
	end

	if count >= max_attempts then
		return { 0, 0, reset_ms }
	end

	count = redis.call('HINCRBY', key, 'count', 1)
	return { 1, max_attempts - count, reset_ms }
`)

type RedisStore struct {
	client redis.Scripter
	prefix string
	clock  clock.Clock
}

func NewRedisStore(client redis.Scripter, prefix string, clk clock.Clock) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, clock: clk}
}

func (s *RedisStore) Check(ctx context.Context, identifier string, maxAttempts int, win time.Duration) (Result, error) {
	key := s.prefix + ":" + identifier
	args := []any{
		s.clock.Now().UnixMilli(),
		win.Milliseconds(),
		maxAttempts,
	}

	vals, err := fixedWindowScript.Run(ctx, s.client, []string{key}, args...).Slice()
	if err != nil {
		return Result{}, errs.Wrap(err, "rate limit script failed")
	}
	if len(vals) != 3 {
		return Result{}, errs.Mark(fmt.Errorf("got %d values", len(vals)), ErrUnexpectedReply)
	}

	return Result{
		Allowed:           asInt64(vals[0]) == 1,
		RemainingAttempts: int(asInt64(vals[1])),
		ResetTime:         time.UnixMilli(asInt64(vals[2])).UTC(),
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
