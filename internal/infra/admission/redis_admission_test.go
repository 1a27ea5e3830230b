//go:build unit

package admission_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	domadmission "seckill-voucher/internal/domain/admission"
	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/infra"
	"seckill-voucher/internal/infra/admission"
	"seckill-voucher/tests/common/builder"
	"seckill-voucher/tests/common/redistest"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const streamKey = "stream.orders"

func setup(t *testing.T, stock int) (*miniredis.Miniredis, *redis.Client, *admission.Controller, *builder.VoucherBuilder) {
	t.Helper()
	mr, client := redistest.NewMiniredis(t)
	ctrl := admission.NewController(client, streamKey)

	b := builder.NewVoucherBuilder().WithStock(stock)
	v, err := b.BuildDomain()
	require.NoError(t, err)
	require.NoError(t, ctrl.Publish(context.Background(), v))

	return mr, client, ctrl, b
}

func onSale(b *builder.VoucherBuilder) time.Time {
	return b.BeginAt.Add(time.Minute)
}

func intent(orderID, userID int64) order.PurchaseIntent {
	return order.PurchaseIntent{OrderID: orderID, UserID: userID, VoucherID: 1001}
}

func TestController_Publish(t *testing.T) {
	mr, _, ctrl, _ := setup(t, 100)

	stock, err := mr.Get(admission.StockKey(1001))
	require.NoError(t, err)
	assert.Equal(t, "100", stock)
	assert.NotEmpty(t, mr.HGet(admission.WindowKey(1001), "begin"))
	assert.NotEmpty(t, mr.HGet(admission.WindowKey(1001), "end"))

	n, ok, err := ctrl.RemainingStock(context.Background(), 1001)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(100), n)

	_, ok, err = ctrl.RemainingStock(context.Background(), 9999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestController_Unpublish(t *testing.T) {
	mr, _, ctrl, b := setup(t, 1)
	ctx := context.Background()

	res, err := ctrl.TryAdmit(ctx, intent(1, 7), onSale(b))
	require.NoError(t, err)
	require.Equal(t, domadmission.Admitted, res)
	require.True(t, mr.Exists(admission.BuyersKey(1001)))

	require.NoError(t, ctrl.Unpublish(ctx, 1001))
	assert.False(t, mr.Exists(admission.StockKey(1001)))
	assert.False(t, mr.Exists(admission.WindowKey(1001)))
	assert.False(t, mr.Exists(admission.BuyersKey(1001)))

	_, ok, err := ctrl.RemainingStock(ctx, 1001)
	require.NoError(t, err)
	assert.False(t, ok)

	res, err = ctrl.TryAdmit(ctx, intent(2, 8), onSale(b))
	require.NoError(t, err)
	assert.Equal(t, domadmission.NotOnSale, res)

	// nothing left to drop
	require.NoError(t, ctrl.Unpublish(ctx, 1001))
}

func TestController_TryAdmit(t *testing.T) {
	ctx := context.Background()

	t.Run("admitted: mirror decremented, buyer recorded, intent enqueued", func(t *testing.T) {
		mr, client, ctrl, b := setup(t, 100)
		now := onSale(b)

		res, err := ctrl.TryAdmit(ctx, intent(555, 42), now)
		require.NoError(t, err)
		assert.Equal(t, domadmission.Admitted, res)

		stock, _ := mr.Get(admission.StockKey(1001))
		assert.Equal(t, "99", stock)
		ok, err := mr.SIsMember(admission.BuyersKey(1001), "42")
		require.NoError(t, err)
		assert.True(t, ok)

		entries, err := client.XRange(ctx, streamKey, "-", "+").Result()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		parsed, err := order.ParseIntent(entries[0].Values)
		require.NoError(t, err)
		assert.Equal(t, intent(555, 42), parsed)
	})

	t.Run("duplicate: second attempt by the same user leaves no trace", func(t *testing.T) {
		mr, client, ctrl, b := setup(t, 100)
		now := onSale(b)

		_, err := ctrl.TryAdmit(ctx, intent(1, 42), now)
		require.NoError(t, err)
		res, err := ctrl.TryAdmit(ctx, intent(2, 42), now)
		require.NoError(t, err)
		assert.Equal(t, domadmission.Duplicate, res)

		stock, _ := mr.Get(admission.StockKey(1001))
		assert.Equal(t, "99", stock)
		n, err := client.XLen(ctx, streamKey).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("out of stock: last unit goes to exactly one user", func(t *testing.T) {
		mr, _, ctrl, b := setup(t, 1)
		now := onSale(b)

		res, err := ctrl.TryAdmit(ctx, intent(1, 1), now)
		require.NoError(t, err)
		assert.Equal(t, domadmission.Admitted, res)

		res, err = ctrl.TryAdmit(ctx, intent(2, 2), now)
		require.NoError(t, err)
		assert.Equal(t, domadmission.OutOfStock, res)

		stock, _ := mr.Get(admission.StockKey(1001))
		assert.Equal(t, "0", stock)
		ok, _ := mr.SIsMember(admission.BuyersKey(1001), "2")
		assert.False(t, ok)
	})

	t.Run("duplicate wins over out of stock", func(t *testing.T) {
		_, _, ctrl, b := setup(t, 1)
		now := onSale(b)

		_, err := ctrl.TryAdmit(ctx, intent(1, 1), now)
		require.NoError(t, err)
		res, err := ctrl.TryAdmit(ctx, intent(2, 1), now)
		require.NoError(t, err)
		assert.Equal(t, domadmission.Duplicate, res)
	})

	t.Run("window: before begin and after end are rejected", func(t *testing.T) {
		_, client, ctrl, b := setup(t, 10)

		res, err := ctrl.TryAdmit(ctx, intent(1, 1), b.BeginAt.Add(-time.Second))
		require.NoError(t, err)
		assert.Equal(t, domadmission.NotStarted, res)

		res, err = ctrl.TryAdmit(ctx, intent(2, 1), b.EndAt.Add(time.Second))
		require.NoError(t, err)
		assert.Equal(t, domadmission.Ended, res)

		res, err = ctrl.TryAdmit(ctx, intent(3, 1), b.EndAt)
		require.NoError(t, err)
		assert.Equal(t, domadmission.Admitted, res)

		n, err := client.XLen(ctx, streamKey).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("not on sale: unpublished voucher", func(t *testing.T) {
		_, client := redistest.NewMiniredis(t)
		ctrl := admission.NewController(client, streamKey)

		res, err := ctrl.TryAdmit(ctx, intent(1, 1), time.Now())
		require.NoError(t, err)
		assert.Equal(t, domadmission.NotOnSale, res)
	})

	t.Run("concurrent burst never oversells", func(t *testing.T) {
		const stock, buyers = 10, 200
		mr, client, ctrl, b := setup(t, stock)
		now := onSale(b)

		results := make(chan domadmission.Result, buyers)
		var wg sync.WaitGroup
		for i := 1; i <= buyers; i++ {
			wg.Add(1)
			go func(userID int64) {
				defer wg.Done()
				res, err := ctrl.TryAdmit(ctx, intent(userID*10, userID), now)
				assert.NoError(t, err)
				results <- res
			}(int64(i))
		}
		wg.Wait()
		close(results)

		counts := map[domadmission.Result]int{}
		for r := range results {
			counts[r]++
		}
		assert.Equal(t, stock, counts[domadmission.Admitted])
		assert.Equal(t, buyers-stock, counts[domadmission.OutOfStock])

		left, _ := mr.Get(admission.StockKey(1001))
		assert.Equal(t, "0", left)
		members, err := mr.Members(admission.BuyersKey(1001))
		require.NoError(t, err)
		assert.Len(t, members, stock)
		n, err := client.XLen(ctx, streamKey).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(stock), n)
	})

	t.Run("same user racing: one admission", func(t *testing.T) {
		_, _, ctrl, b := setup(t, 100)
		now := onSale(b)

		var admitted int
		var mu sync.Mutex
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				res, err := ctrl.TryAdmit(ctx, intent(int64(100+i), 42), now)
				assert.NoError(t, err)
				if res.Admitted() {
					mu.Lock()
					admitted++
					mu.Unlock()
				}
			}(i)
		}
		wg.Wait()
		assert.Equal(t, 1, admitted)
	})

	t.Run("error: redis unavailable", func(t *testing.T) {
		mr, _, ctrl, b := setup(t, 10)
		now := onSale(b)
		mr.Close()

		_, err := ctrl.TryAdmit(ctx, intent(1, 1), now)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindCacheFailure))
	})
}

func TestKeys(t *testing.T) {
	id := int64(1001)
	assert.Equal(t, "seckill:stock:"+strconv.FormatInt(id, 10), admission.StockKey(id))
	assert.Equal(t, "seckill:order:1001", admission.BuyersKey(id))
	assert.Equal(t, "seckill:window:1001", admission.WindowKey(id))
}
