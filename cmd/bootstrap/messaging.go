package bootstrap

import (
	"context"

	"hospital-ops/internal/infra/messaging"
	"hospital-ops/internal/infra/relay"
	"hospital-ops/internal/pkg/config"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		fx.Annotate(
			NewPublisher,
			fx.As(new(relay.Publisher)),
		),
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (*messaging.Publisher, error) {
	publisher, err := messaging.NewPublisher(cfg.RabbitMQ)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			publisher.Close()
			return nil
		},
	})

	return publisher, nil
}
