package commands

import (
	"context"
	"time"

	"seckill-voucher/internal/domain/admission"
	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/domain/voucher"
)

// AdmissionController is the fast-storage gate in front of fulfillment.
type AdmissionController interface {
	TryAdmit(ctx context.Context, intent order.PurchaseIntent, now time.Time) (admission.Result, error)
	Publish(ctx context.Context, v *voucher.SeckillVoucher) error
	Unpublish(ctx context.Context, voucherID int64) error
}
