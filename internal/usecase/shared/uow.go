package shared

import (
	"context"

	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/domain/voucher"
	sqlc "seckill-voucher/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Vouchers() VoucherRepository
	Orders() VoucherOrderRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	OrderExists(ctx context.Context, userID, voucherID int64) (bool, error)
}

type VoucherRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, v *voucher.SeckillVoucher) (*voucher.SeckillVoucher, error)
	// DecrementStock reports false when the authoritative stock is already zero.
	DecrementStock(ctx context.Context, tx sqlc.DBTX, voucherID int64) (bool, error)
}

type VoucherOrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.VoucherOrder) error
}
