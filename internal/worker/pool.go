package worker

import (
	"context"
	"log/slog"
	"sync"

	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// Pool runs several consumers under the same consumer identity.
type Pool struct {
	queue    Queue
	consumer *Consumer
	size     int
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan error
}

func NewPool(queue Queue, consumer *Consumer, cfg config.SeckillConfig, logger *slog.Logger) *Pool {
	size := cfg.Workers
	if size < 1 {
		size = 1
	}
	return &Pool{
		queue:    queue,
		consumer: consumer,
		size:     size,
		logger:   logger,
	}
}

// Start creates the consumer group and launches the consumers in the
// background. It returns once they are running.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return errs.New("worker pool already started")
	}

	if err := p.queue.EnsureGroup(ctx); err != nil {
		return err
	}

	// the run context must outlive the start context
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	g, gctx := errgroup.WithContext(runCtx)
	for i := 0; i < p.size; i++ {
		g.Go(func() error {
			return p.consumer.Run(gctx)
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()
	p.cancel, p.done = cancel, done

	p.logger.Info("order workers started", "workers", p.size)
	return nil
}

// Stop cancels the consumers and waits for them, bounded by ctx. In-flight
// fulfillments finish or roll back; their entries stay pending.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case err := <-done:
		p.logger.Info("order workers stopped")
		return err
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "timed out stopping order workers")
	}
}
