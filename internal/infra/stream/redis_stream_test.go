//go:build unit

package stream_test

import (
	"context"
	"testing"
	"time"

	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/infra/stream"
	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/tests/common/redistest"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueue(t *testing.T) (*stream.Queue, *redis.Client, config.SeckillConfig) {
	t.Helper()
	_, client := redistest.NewMiniredis(t)
	cfg := config.NewTestConfig().Seckill
	q := stream.NewQueue(client, cfg)
	require.NoError(t, q.EnsureGroup(context.Background()))
	return q, client, cfg
}

func TestQueue_EnsureGroup(t *testing.T) {
	ctx := context.Background()
	_, client := redistest.NewMiniredis(t)
	cfg := config.NewTestConfig().Seckill
	q := stream.NewQueue(client, cfg)

	// entries admitted before any worker existed
	_, err := q.Append(ctx, order.PurchaseIntent{OrderID: 1, UserID: 2, VoucherID: 3}.Values())
	require.NoError(t, err)

	require.NoError(t, q.EnsureGroup(ctx))
	require.NoError(t, q.EnsureGroup(ctx), "BUSYGROUP is tolerated")

	msg, err := q.ReadNew(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, msg, "group starts at the beginning of the stream")
}

func TestQueue_ReadNew(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil when idle", func(t *testing.T) {
		q, _, _ := newQueue(t)
		msg, err := q.ReadNew(ctx, 0)
		require.NoError(t, err)
		assert.Nil(t, msg)
	})

	t.Run("sub-millisecond block times out instead of blocking forever", func(t *testing.T) {
		q, _, _ := newQueue(t)
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		begin := time.Now()
		msg, err := q.ReadNew(ctx, 500*time.Microsecond)
		require.NoError(t, err)
		assert.Nil(t, msg)
		assert.Less(t, time.Since(begin), time.Second)
	})

	t.Run("delivers entries once, oldest first", func(t *testing.T) {
		q, _, _ := newQueue(t)
		first := order.PurchaseIntent{OrderID: 10, UserID: 1, VoucherID: 7}
		second := order.PurchaseIntent{OrderID: 11, UserID: 2, VoucherID: 7}
		id1, err := q.Append(ctx, first.Values())
		require.NoError(t, err)
		_, err = q.Append(ctx, second.Values())
		require.NoError(t, err)

		msg, err := q.ReadNew(ctx, 0)
		require.NoError(t, err)
		require.NotNil(t, msg)
		assert.Equal(t, id1, msg.ID)
		got, err := order.ParseIntent(msg.Values)
		require.NoError(t, err)
		assert.Equal(t, first, got)

		msg, err = q.ReadNew(ctx, 0)
		require.NoError(t, err)
		require.NotNil(t, msg)
		got, err = order.ParseIntent(msg.Values)
		require.NoError(t, err)
		assert.Equal(t, second, got)

		msg, err = q.ReadNew(ctx, 0)
		require.NoError(t, err)
		assert.Nil(t, msg)
	})

	t.Run("blocking read times out with nil", func(t *testing.T) {
		q, _, _ := newQueue(t)
		start := time.Now()
		msg, err := q.ReadNew(ctx, 50*time.Millisecond)
		require.NoError(t, err)
		assert.Nil(t, msg)
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})
}

func TestQueue_PendingLifecycle(t *testing.T) {
	ctx := context.Background()
	q, _, _ := newQueue(t)

	id, err := q.Append(ctx, order.PurchaseIntent{OrderID: 10, UserID: 1, VoucherID: 7}.Values())
	require.NoError(t, err)

	msg, err := q.ReadNew(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, msg)

	// delivered but not acknowledged: visible to the sweep, not to ReadNew
	n, err := q.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	pending, err := q.ReadPending(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, id, pending.ID)

	again, err := q.ReadPending(ctx)
	require.NoError(t, err)
	require.NotNil(t, again, "pending reads do not consume the entry")
	assert.Equal(t, id, again.ID)

	require.NoError(t, q.Ack(ctx, id))
	require.NoError(t, q.Ack(ctx, id), "ack is idempotent")

	pending, err = q.ReadPending(ctx)
	require.NoError(t, err)
	assert.Nil(t, pending)

	n, err = q.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestQueue_DeadLetter(t *testing.T) {
	ctx := context.Background()
	q, client, cfg := newQueue(t)

	id, err := q.Append(ctx, map[string]any{"userId": "not-a-number"})
	require.NoError(t, err)
	msg, err := q.ReadNew(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, msg)

	require.NoError(t, q.DeadLetter(ctx, msg, "malformed"))

	pending, err := q.ReadPending(ctx)
	require.NoError(t, err)
	assert.Nil(t, pending, "dead-lettered entries are acknowledged")

	dlq, err := client.XRange(ctx, cfg.DeadLetter, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, dlq, 1)
	assert.Equal(t, "not-a-number", dlq[0].Values["userId"])
	assert.Equal(t, "malformed", dlq[0].Values["reason"])
	assert.Equal(t, id, dlq[0].Values["sourceId"])
}
