package admission

import (
	"context"
	_ "embed"
	"strconv"
	"time"

	domadmission "seckill-voucher/internal/domain/admission"
	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/domain/voucher"
	"seckill-voucher/internal/infra"
	"seckill-voucher/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

//go:embed seckill.lua
var seckillSource string

var seckillScript = redis.NewScript(seckillSource)

func StockKey(voucherID int64) string {
	return "seckill:stock:" + strconv.FormatInt(voucherID, 10)
}

func BuyersKey(voucherID int64) string {
	return "seckill:order:" + strconv.FormatInt(voucherID, 10)
}

func WindowKey(voucherID int64) string {
	return "seckill:window:" + strconv.FormatInt(voucherID, 10)
}

// Controller decides admission in one script run: window, duplicate and
// stock checks, then the mirror decrement, buyer record and enqueue.
type Controller struct {
	client redis.UniversalClient
	stream string
}

func NewController(client redis.UniversalClient, stream string) *Controller {
	return &Controller{client: client, stream: stream}
}

func (c *Controller) TryAdmit(ctx context.Context, intent order.PurchaseIntent, now time.Time) (domadmission.Result, error) {
	keys := []string{
		StockKey(intent.VoucherID),
		BuyersKey(intent.VoucherID),
		WindowKey(intent.VoucherID),
		c.stream,
	}
	code, err := seckillScript.Run(ctx, c.client, keys,
		intent.VoucherID,
		intent.UserID,
		intent.OrderID,
		now.Unix(),
	).Int64()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to run admission script", err, infra.KindCacheFailure)
	}

	result, err := domadmission.FromCode(code)
	if err != nil {
		return 0, errs.Wrap(err, "admission script returned unexpected code")
	}
	return result, nil
}

// Publish warms the mirror for a newly published voucher. It must run before
// any admission for that voucher.
func (c *Controller) Publish(ctx context.Context, v *voucher.SeckillVoucher) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, StockKey(v.ID()), v.Stock().Int(), 0)
		pipe.HSet(ctx, WindowKey(v.ID()),
			"begin", v.BeginAt().Unix(),
			"end", v.EndAt().Unix(),
		)
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr("failed to warm seckill mirror", err, infra.KindCacheFailure)
	}
	return nil
}

// Unpublish drops every mirror key of a voucher, undoing Publish. Deleting
// keys that do not exist is not an error.
func (c *Controller) Unpublish(ctx context.Context, voucherID int64) error {
	err := c.client.Del(ctx, StockKey(voucherID), WindowKey(voucherID), BuyersKey(voucherID)).Err()
	if err != nil {
		return infra.WrapRepoErr("failed to drop seckill mirror", err, infra.KindCacheFailure)
	}
	return nil
}

// RemainingStock reads the mirror; ok is false when the voucher was never published.
func (c *Controller) RemainingStock(ctx context.Context, voucherID int64) (int64, bool, error) {
	n, err := c.client.Get(ctx, StockKey(voucherID)).Int64()
	if errs.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, infra.WrapRepoErr("failed to read stock mirror", err, infra.KindCacheFailure)
	}
	return n, true, nil
}
