package bootstrap

import (
	"context"
	"log/slog"

	"seckill-voucher/internal/infra/stream"
	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/internal/worker"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		fx.Annotate(
			NewOrderQueue,
			fx.As(new(worker.Queue)),
		),
		NewConsumer,
		NewPool,
	),
	fx.Invoke(registerWorkers),
)

func NewOrderQueue(client redis.UniversalClient, cfg config.Config) *stream.Queue {
	return stream.NewQueue(client, cfg.Seckill)
}

func NewConsumer(queue worker.Queue, deps consumerDeps, cfg config.Config, logger *slog.Logger) *worker.Consumer {
	return worker.NewConsumer(queue, deps.Fulfillment, cfg.Seckill, logger.With("component", "order-worker"))
}

func NewPool(queue worker.Queue, consumer *worker.Consumer, cfg config.Config, logger *slog.Logger) *worker.Pool {
	return worker.NewPool(queue, consumer, cfg.Seckill, logger)
}

func registerWorkers(lc fx.Lifecycle, pool *worker.Pool, cfg config.Config, logger *slog.Logger) {
	if cfg.Seckill.DisableConsumer {
		logger.Info("order workers disabled by configuration")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return pool.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return pool.Stop(ctx)
		},
	})
}
