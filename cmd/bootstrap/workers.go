package bootstrap

import (
	"context"
	"log/slog"

	"signup-engine/internal/infra/messaging"
	"signup-engine/internal/infra/reaper"
	"signup-engine/internal/pkg/clock"
	"signup-engine/internal/pkg/config"
	"signup-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkersModule = fx.Module("workers",
	fx.Invoke(
		StartReaper,
		StartRelay,
	),
)

func StartReaper(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) {
	if !cfg.Reaper.Enabled {
		logger.Info("expiry reaper disabled")
		return
	}
	r := reaper.New(uow, clk, cfg.Reaper.Interval)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			r.Start()
			logger.Info("expiry reaper started", "interval", cfg.Reaper.Interval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return r.Stop(ctx)
		},
	})
}

// StartRelay leaves events pending in the outbox when AMQP_URL is unset.
func StartRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) {
	if cfg.AMQP.URL == "" {
		logger.Info("event relay disabled, outbox events stay pending")
		return
	}

	var (
		publisher *messaging.AMQPPublisher
		relay     *messaging.Relay
	)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			p, err := messaging.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
			if err != nil {
				return err
			}
			publisher = p
			relay = messaging.NewRelay(uow, publisher, clk, cfg.Relay.Interval, cfg.Relay.BatchSize)
			relay.Start()
			logger.Info("event relay started", "queue", cfg.AMQP.Queue, "interval", cfg.Relay.Interval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if relay == nil {
				return nil
			}
			stopErr := relay.Stop(ctx)
			if err := publisher.Close(); err != nil && stopErr == nil {
				stopErr = err
			}
			return stopErr
		},
	})
}
