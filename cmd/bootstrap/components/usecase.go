package components

import (
	"context"

	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/usecase"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/outbox"
	"charter-booking/internal/usecase/queries"
	"charter-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseOutboxModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTripQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewCustomerQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseOutboxModule = fx.Module("usecase/outbox",
	fx.Provide(NewOutboxRelay),
	fx.Invoke(func(*outbox.Relay) {}),
)

func NewOutboxRelay(lc fx.Lifecycle, uow shared.UnitOfWork, pub shared.EventPublisher, clk clock.Clock, cfg config.Config) *outbox.Relay {
	relay := outbox.NewRelay(uow, pub, clk, outbox.Config{
		PollInterval: cfg.Broker.PollInterval,
		BatchSize:    cfg.Broker.BatchSize,
		MaxAttempts:  cfg.Broker.MaxAttempts,
	})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: relay.Stop,
	})
	return relay
}
