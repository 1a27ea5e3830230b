//go:build unit

package lock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"seckill-voucher/internal/infra"
	"seckill-voucher/internal/infra/lock"
	"seckill-voucher/tests/common/redistest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLock(t *testing.T) {
	ctx := context.Background()
	const key = "order-lock:42"

	t.Run("success: acquire and release", func(t *testing.T) {
		mr, client := redistest.NewMiniredis(t)
		l := lock.NewRedisLocker(client).NewLock(key)

		ok, err := l.TryLock(ctx, 10*time.Second)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, mr.Exists(key))
		assert.Equal(t, 10*time.Second, mr.TTL(key))

		released, err := l.Unlock(ctx)
		require.NoError(t, err)
		assert.True(t, released)
		assert.False(t, mr.Exists(key))
	})

	t.Run("contention: second holder is refused without waiting", func(t *testing.T) {
		_, client := redistest.NewMiniredis(t)
		locker := lock.NewRedisLocker(client)

		first := locker.NewLock(key)
		ok, err := first.TryLock(ctx, 10*time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		second := locker.NewLock(key)
		ok, err = second.TryLock(ctx, 10*time.Second)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("stale holder cannot release a retaken lock", func(t *testing.T) {
		mr, client := redistest.NewMiniredis(t)
		locker := lock.NewRedisLocker(client)

		stale := locker.NewLock(key)
		ok, err := stale.TryLock(ctx, time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		mr.FastForward(2 * time.Second)

		current := locker.NewLock(key)
		ok, err = current.TryLock(ctx, 10*time.Second)
		require.NoError(t, err)
		require.True(t, ok)
		owner, err := mr.Get(key)
		require.NoError(t, err)

		released, err := stale.Unlock(ctx)
		require.NoError(t, err)
		assert.False(t, released)

		stillOwner, err := mr.Get(key)
		require.NoError(t, err)
		assert.Equal(t, owner, stillOwner)
	})

	t.Run("concurrent attempts: exactly one wins", func(t *testing.T) {
		_, client := redistest.NewMiniredis(t)
		locker := lock.NewRedisLocker(client)

		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := locker.NewLock(key).TryLock(ctx, 10*time.Second)
				assert.NoError(t, err)
				if ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins.Load())
	})

	t.Run("key is the name verbatim", func(t *testing.T) {
		_, client := redistest.NewMiniredis(t)
		l := lock.NewRedisLocker(client).NewLock(key)
		rl, ok := l.(*lock.RedisLock)
		require.True(t, ok)
		assert.Equal(t, key, rl.Key())
	})

	t.Run("error: redis unavailable", func(t *testing.T) {
		mr, client := redistest.NewMiniredis(t)
		mr.Close()

		_, err := lock.NewRedisLocker(client).NewLock(key).TryLock(ctx, time.Second)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindCacheFailure))
	})
}
