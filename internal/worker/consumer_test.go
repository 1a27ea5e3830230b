//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/infra/stream"
	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/internal/usecase/commands"
	"seckill-voucher/internal/worker"
	commandsmock "seckill-voucher/tests/mock/commands"
	workermock "seckill-voucher/tests/mock/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	queue       *workermock.MockQueue
	fulfillment *commandsmock.MockFulfillmentCommands
	consumer    *worker.Consumer
	cfg         config.SeckillConfig
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	cfg := config.NewTestConfig().Seckill
	f := &fixture{
		queue:       workermock.NewMockQueue(ctrl),
		fulfillment: commandsmock.NewMockFulfillmentCommands(ctrl),
		cfg:         cfg,
	}
	f.consumer = worker.NewConsumer(f.queue, f.fulfillment, cfg, discard)
	return f
}

func message(id string, in order.PurchaseIntent) *stream.Message {
	return &stream.Message{ID: id, Values: in.Values()}
}

// idle stands in for a blocking read that times out.
func idle(ctx context.Context, _ time.Duration) (*stream.Message, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(time.Millisecond):
		return nil, nil
	}
}

// run executes Run and fails the test if it does not return after ctx ends.
func run(ctx context.Context, t *testing.T, c *worker.Consumer) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop")
	}
}

func TestConsumer_Run(t *testing.T) {
	defer goleak.VerifyNone(t)

	in := order.PurchaseIntent{OrderID: 101, UserID: 42, VoucherID: 1001}

	t.Run("success: new entry is fulfilled then acknowledged", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		f.queue.EXPECT().ReadPending(gomock.Any()).Return(nil, nil).AnyTimes()
		f.queue.EXPECT().ReadNew(gomock.Any(), f.cfg.BlockTimeout).Return(message("1-0", in), nil).Times(1)
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).DoAndReturn(idle).AnyTimes()
		gomock.InOrder(
			f.fulfillment.EXPECT().Handle(gomock.Any(), in).Return(nil),
			f.queue.EXPECT().Ack(gomock.Any(), "1-0").DoAndReturn(func(context.Context, string) error {
				cancel()
				return nil
			}),
		)

		run(ctx, t, f.consumer)
	})

	t.Run("malformed entry is dead-lettered, never fulfilled", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		bad := &stream.Message{ID: "2-0", Values: map[string]any{"userId": "x"}}
		f.queue.EXPECT().ReadPending(gomock.Any()).Return(nil, nil).AnyTimes()
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).Return(bad, nil).Times(1)
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).DoAndReturn(idle).AnyTimes()
		f.queue.EXPECT().DeadLetter(gomock.Any(), bad, gomock.Any()).DoAndReturn(func(context.Context, *stream.Message, string) error {
			cancel()
			return nil
		})
		f.fulfillment.EXPECT().Handle(gomock.Any(), gomock.Any()).Times(0)
		f.queue.EXPECT().Ack(gomock.Any(), gomock.Any()).Times(0)

		run(ctx, t, f.consumer)
	})

	t.Run("failed fulfillment stays pending and is recovered by the sweep", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		msg := message("3-0", in)
		var pendingReads atomic.Int32
		f.queue.EXPECT().ReadPending(gomock.Any()).DoAndReturn(func(context.Context) (*stream.Message, error) {
			// first read is the startup sweep; the entry is pending only after the failure
			if pendingReads.Add(1) == 2 {
				return msg, nil
			}
			return nil, nil
		}).AnyTimes()
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).Return(msg, nil).Times(1)
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).DoAndReturn(idle).AnyTimes()

		f.fulfillment.EXPECT().Handle(gomock.Any(), in).Return(errors.New("db down")).Times(1)
		f.fulfillment.EXPECT().Handle(gomock.Any(), in).Return(nil).Times(1)
		f.queue.EXPECT().Ack(gomock.Any(), "3-0").DoAndReturn(func(context.Context, string) error {
			cancel()
			return nil
		}).Times(1)

		run(ctx, t, f.consumer)
		assert.GreaterOrEqual(t, pendingReads.Load(), int32(2))
	})

	t.Run("startup sweep replays entries left by a previous run", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		msg := message("4-0", in)
		f.queue.EXPECT().ReadPending(gomock.Any()).Return(msg, nil).Times(1)
		f.queue.EXPECT().ReadPending(gomock.Any()).Return(nil, nil).AnyTimes()
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).DoAndReturn(idle).AnyTimes()
		f.fulfillment.EXPECT().Handle(gomock.Any(), in).Return(nil)
		f.queue.EXPECT().Ack(gomock.Any(), "4-0").DoAndReturn(func(context.Context, string) error {
			cancel()
			return nil
		})

		run(ctx, t, f.consumer)
	})

	t.Run("sweep retries a failing entry until it succeeds", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		msg := message("5-0", in)
		var acked atomic.Bool
		f.queue.EXPECT().ReadPending(gomock.Any()).DoAndReturn(func(context.Context) (*stream.Message, error) {
			if acked.Load() {
				return nil, nil
			}
			return msg, nil
		}).AnyTimes()
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).DoAndReturn(idle).AnyTimes()
		f.fulfillment.EXPECT().Handle(gomock.Any(), in).Return(errors.New("serialization failure")).Times(2)
		f.fulfillment.EXPECT().Handle(gomock.Any(), in).Return(nil).Times(1)
		f.queue.EXPECT().Ack(gomock.Any(), "5-0").DoAndReturn(func(context.Context, string) error {
			acked.Store(true)
			cancel()
			return nil
		})

		start := time.Now()
		run(ctx, t, f.consumer)
		assert.GreaterOrEqual(t, time.Since(start), 2*f.cfg.RetryInterval)
	})

	t.Run("contended entry is left pending and retried when idle", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		msg := message("6-0", in)
		var contended atomic.Bool
		f.queue.EXPECT().ReadPending(gomock.Any()).DoAndReturn(func(context.Context) (*stream.Message, error) {
			if contended.Load() {
				return msg, nil
			}
			return nil, nil
		}).AnyTimes()
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).Return(msg, nil).Times(1)
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).DoAndReturn(idle).AnyTimes()

		f.fulfillment.EXPECT().Handle(gomock.Any(), in).DoAndReturn(func(context.Context, order.PurchaseIntent) error {
			contended.Store(true)
			return commands.ErrFulfillmentInFlight
		}).Times(1)
		f.fulfillment.EXPECT().Handle(gomock.Any(), in).Return(nil).Times(1)
		f.queue.EXPECT().Ack(gomock.Any(), "6-0").DoAndReturn(func(context.Context, string) error {
			contended.Store(false)
			cancel()
			return nil
		}).Times(1)

		run(ctx, t, f.consumer)
	})

	t.Run("contended entry is retried while the stream stays busy", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		cfg := f.cfg
		cfg.SweepEvery = 2
		consumer := worker.NewConsumer(f.queue, f.fulfillment, cfg, discard)

		other := order.PurchaseIntent{UserID: in.UserID + 1, VoucherID: in.VoucherID, OrderID: in.OrderID + 1}
		contended := message("7-0", in)
		next := message("7-1", other)

		// startup sweep finds nothing; the count-triggered sweep finds the contended entry
		f.queue.EXPECT().ReadPending(gomock.Any()).Return(nil, nil).Times(1)
		f.queue.EXPECT().ReadPending(gomock.Any()).Return(contended, nil).Times(1)
		f.queue.EXPECT().ReadPending(gomock.Any()).Return(nil, nil).AnyTimes()

		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).Return(contended, nil).Times(1)
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).Return(next, nil).Times(1)
		// never idle: only the processed count can trigger the retry
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ time.Duration) (*stream.Message, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).AnyTimes()

		f.fulfillment.EXPECT().Handle(gomock.Any(), in).Return(commands.ErrFulfillmentInFlight).Times(1)
		f.fulfillment.EXPECT().Handle(gomock.Any(), other).Return(nil).Times(1)
		f.fulfillment.EXPECT().Handle(gomock.Any(), in).Return(nil).Times(1)
		f.queue.EXPECT().Ack(gomock.Any(), "7-1").Return(nil).Times(1)
		f.queue.EXPECT().Ack(gomock.Any(), "7-0").DoAndReturn(func(context.Context, string) error {
			cancel()
			return nil
		}).Times(1)

		run(ctx, t, consumer)
	})

	t.Run("shutdown interrupts a blocked read", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())

		f.queue.EXPECT().ReadPending(gomock.Any()).Return(nil, nil).AnyTimes()
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ time.Duration) (*stream.Message, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).MinTimes(1)

		time.AfterFunc(20*time.Millisecond, cancel)
		run(ctx, t, f.consumer)
	})
}
