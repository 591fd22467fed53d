package bootstrap

import (
	"context"
	"log/slog"

	"charter-booking/internal/infra/broker"
	"charter-booking/internal/pkg/cache"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/pkg/ratelimit"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		NewRedisClient,
		NewRateLimiter,
		fx.Annotate(
			NewPublisher,
			fx.As(new(shared.EventPublisher)),
		),
		NewQueryCache,
		func(c *cache.TTLCache[any]) commands.TripCacheInvalidator { return c },
	),
)

// NewRedisClient does not dial; the first command connects lazily.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, client *redis.Client) ratelimit.Limiter {
	if cfg.RateLimit.UsesRedis() {
		slog.Info("Rate limiter backend selected", "backend", "redis", "addr", cfg.Redis.Addr)
		return ratelimit.NewRedisStore(client, cfg.RateLimit.KeyPrefix, clk)
	}

	store := ratelimit.NewMemoryStore(clk)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			store.StartSweeper(cfg.RateLimit.SweepInterval)
			return nil
		},
		OnStop: store.Stop,
	})
	return store
}

func NewPublisher(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (broker.Publisher, error) {
	var (
		pub broker.Publisher
		err error
	)
	if cfg.Broker.URL == "" {
		pub = broker.NewLogPublisher(logger)
	} else {
		pub, err = broker.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Exchange, clk)
		if err != nil {
			return nil, err
		}
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func NewQueryCache(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) *cache.TTLCache[any] {
	c := cache.New[any](cfg.Cache.TTL, clk)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.StartJanitor(cfg.Cache.CleanupInterval)
			return nil
		},
		OnStop: c.Stop,
	})
	return c
}
