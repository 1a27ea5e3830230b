package worker

import (
	"context"
	"log/slog"
	"time"

	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/infra/stream"
	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/internal/pkg/errs"
	"seckill-voucher/internal/usecase/commands"
)

type Queue interface {
	EnsureGroup(ctx context.Context) error
	ReadNew(ctx context.Context, block time.Duration) (*stream.Message, error)
	ReadPending(ctx context.Context) (*stream.Message, error)
	Ack(ctx context.Context, id string) error
	DeadLetter(ctx context.Context, msg *stream.Message, reason string) error
}

// Consumer drains the order stream into the fulfillment use case. Entries
// are acknowledged only after fulfillment succeeds, so anything that fails
// stays pending until the sweep redelivers it.
type Consumer struct {
	queue         Queue
	fulfillment   commands.FulfillmentCommands
	block         time.Duration
	retryInterval time.Duration
	sweepEvery    int
	logger        *slog.Logger
}

const defaultSweepEvery = 100

func NewConsumer(queue Queue, fulfillment commands.FulfillmentCommands, cfg config.SeckillConfig, logger *slog.Logger) *Consumer {
	sweepEvery := cfg.SweepEvery
	if sweepEvery <= 0 {
		sweepEvery = defaultSweepEvery
	}
	return &Consumer{
		queue:         queue,
		fulfillment:   fulfillment,
		block:         cfg.BlockTimeout,
		retryInterval: cfg.RetryInterval,
		sweepEvery:    sweepEvery,
		logger:        logger,
	}
}

// Run blocks until ctx is cancelled. Entries left pending by a previous run
// are swept first. Pending entries are also swept whenever the stream goes
// idle and after every sweepEvery new entries, so a contended entry is
// revisited even while the stream never drains.
func (c *Consumer) Run(ctx context.Context) error {
	c.sweepPending(ctx)

	processed := 0

	for ctx.Err() == nil {
		msg, err := c.queue.ReadNew(ctx, c.block)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			c.logger.Error("failed to read order stream", "error", err)
			c.sweepPending(ctx)
			continue
		}
		if msg == nil {
			// idle: pick up entries abandoned on lock contention
			c.sweepPending(ctx)
			processed = 0
			continue
		}

		err = c.process(ctx, msg)
		if err != nil && !errs.Is(err, commands.ErrFulfillmentInFlight) {
			c.logger.Error("failed to process order entry", "entry_id", msg.ID, "error", err)
			c.sweepPending(ctx)
			processed = 0
			continue
		}

		processed++
		if processed >= c.sweepEvery {
			c.sweepPending(ctx)
			processed = 0
		}
	}
	return nil
}

// sweepPending replays this consumer's unacknowledged entries oldest first
// until none remain. Failures are retried after retryInterval indefinitely;
// only shutdown or a contended entry ends the sweep early.
func (c *Consumer) sweepPending(ctx context.Context) {
	for ctx.Err() == nil {
		msg, err := c.queue.ReadPending(ctx)
		if err != nil {
			c.logger.Error("failed to read pending entries", "error", err)
			c.sleep(ctx)
			continue
		}
		if msg == nil {
			return
		}

		err = c.process(ctx, msg)
		switch {
		case err == nil:
		case errs.Is(err, commands.ErrFulfillmentInFlight):
			// the oldest entry is held elsewhere; revisit on the next sweep
			return
		default:
			c.logger.Error("failed to process pending entry", "entry_id", msg.ID, "error", err)
			c.sleep(ctx)
		}
	}
}

func (c *Consumer) process(ctx context.Context, msg *stream.Message) error {
	intent, err := order.ParseIntent(msg.Values)
	if err != nil {
		c.logger.Error("dead-lettering malformed order entry", "entry_id", msg.ID, "error", err)
		return c.queue.DeadLetter(ctx, msg, err.Error())
	}

	if err := c.fulfillment.Handle(ctx, intent); err != nil {
		return err
	}
	return c.queue.Ack(ctx, msg.ID)
}

func (c *Consumer) sleep(ctx context.Context) {
	t := time.NewTimer(c.retryInterval)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
