package repository

import (
	"context"

	"seckill-voucher/internal/domain/voucher"
	"seckill-voucher/internal/infra"
	"seckill-voucher/internal/infra/repository/converter"
	sqlc "seckill-voucher/internal/infra/sqlc/generated"
)

type VoucherWriteQueries interface {
	CreateSeckillVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSeckillVoucherParams) (sqlc.SeckillVouchers, error)
	DecrementSeckillStock(ctx context.Context, db sqlc.DBTX, voucherID int64) (int64, error)
}

type VoucherRepository struct {
	queries VoucherWriteQueries
}

func NewVoucherRepository(queries VoucherWriteQueries) *VoucherRepository {
	return &VoucherRepository{queries: queries}
}

func (r *VoucherRepository) Create(ctx context.Context, tx sqlc.DBTX, v *voucher.SeckillVoucher) (*voucher.SeckillVoucher, error) {
	row, err := r.queries.CreateSeckillVoucher(ctx, tx, converter.VoucherToCreateParams(v))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create seckill voucher", err)
	}
	return converter.VoucherFromRow(row), nil
}

// DecrementStock takes one unit of authoritative stock. The stock > 0 guard
// lives in the UPDATE itself, so concurrent callers can never drive it negative.
func (r *VoucherRepository) DecrementStock(ctx context.Context, tx sqlc.DBTX, voucherID int64) (bool, error) {
	n, err := r.queries.DecrementSeckillStock(ctx, tx, voucherID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement seckill stock", err)
	}
	return n == 1, nil
}
