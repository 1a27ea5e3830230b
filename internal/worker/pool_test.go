//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seckill-voucher/internal/infra/stream"
	"seckill-voucher/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestPool(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("start runs every worker and stop waits for them", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Workers = 3
		pool := worker.NewPool(f.queue, worker.NewConsumer(f.queue, f.fulfillment, f.cfg, discard), f.cfg, discard)

		started := make(chan struct{}, f.cfg.Workers)
		f.queue.EXPECT().EnsureGroup(gomock.Any()).Return(nil).Times(1)
		f.queue.EXPECT().ReadPending(gomock.Any()).DoAndReturn(func(context.Context) (*stream.Message, error) {
			select {
			case started <- struct{}{}:
			default:
			}
			return nil, nil
		}).AnyTimes()
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).DoAndReturn(idle).AnyTimes()

		startCtx, cancelStart := context.WithCancel(context.Background())
		require.NoError(t, pool.Start(startCtx))
		// cancelling the start context must not stop the workers
		cancelStart()

		for i := 0; i < f.cfg.Workers; i++ {
			select {
			case <-started:
			case <-time.After(2 * time.Second):
				t.Fatal("worker did not start")
			}
		}

		err := pool.Start(context.Background())
		require.Error(t, err, "second start is rejected")

		stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		begin := time.Now()
		require.NoError(t, pool.Stop(stopCtx))
		assert.Less(t, time.Since(begin), time.Second, "stop returns once the workers exit, not at the deadline")
		require.NoError(t, pool.Stop(stopCtx), "stop is idempotent")
	})

	t.Run("restart after stop", func(t *testing.T) {
		f := newFixture(t)
		pool := worker.NewPool(f.queue, f.consumer, f.cfg, discard)

		f.queue.EXPECT().EnsureGroup(gomock.Any()).Return(nil).Times(2)
		f.queue.EXPECT().ReadPending(gomock.Any()).Return(nil, nil).AnyTimes()
		f.queue.EXPECT().ReadNew(gomock.Any(), gomock.Any()).DoAndReturn(idle).AnyTimes()

		for range 2 {
			require.NoError(t, pool.Start(context.Background()))
			stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			require.NoError(t, pool.Stop(stopCtx))
			cancel()
		}
	})

	t.Run("start fails when the group cannot be created", func(t *testing.T) {
		f := newFixture(t)
		pool := worker.NewPool(f.queue, f.consumer, f.cfg, discard)

		f.queue.EXPECT().EnsureGroup(gomock.Any()).Return(errors.New("redis down"))

		err := pool.Start(context.Background())
		require.Error(t, err)
		assert.NoError(t, pool.Stop(context.Background()))
	})
}
