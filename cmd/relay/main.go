package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"hospital-ops/cmd/bootstrap"
	"hospital-ops/internal/infra/relay"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

func newRelay(pool *pgxpool.Pool, publisher relay.Publisher, cfg config.Config) *relay.Relay {
	return relay.New(relay.NewPgBatchRunner(pool), publisher, clock.NewRealClock(), cfg.Relay)
}

func runRelay(lc fx.Lifecycle, r *relay.Relay, cfg config.Config, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting outbox relay",
				"poll_interval", cfg.Relay.PollInterval,
				"batch_size", cfg.Relay.BatchSize,
				"exchange", cfg.RabbitMQ.Exchange)
			go func() {
				defer close(done)
				if err := r.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("outbox relay stopped with error", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			logger.Info("outbox relay stopped")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.MessagingModule,
		fx.Provide(newRelay),
		fx.Invoke(runRelay),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start relay", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop relay cleanly", "error", err)
	}
}
