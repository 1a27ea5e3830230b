package repository

import (
	"context"

	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/infra"
	"seckill-voucher/internal/infra/repository/converter"
	sqlc "seckill-voucher/internal/infra/sqlc/generated"
)

type VoucherOrderWriteQueries interface {
	CreateVoucherOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVoucherOrderParams) error
}

type VoucherOrderRepository struct {
	queries VoucherOrderWriteQueries
}

func NewVoucherOrderRepository(queries VoucherOrderWriteQueries) *VoucherOrderRepository {
	return &VoucherOrderRepository{queries: queries}
}

// Create fails with KindDuplicateKey when the user already holds an order for the voucher.
func (r *VoucherOrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.VoucherOrder) error {
	if err := r.queries.CreateVoucherOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create voucher order", err)
	}
	return nil
}
