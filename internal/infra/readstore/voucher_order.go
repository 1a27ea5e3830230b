package readstore

import (
	"context"

	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/infra"
	sqlc "seckill-voucher/internal/infra/sqlc/generated"
	"seckill-voucher/internal/pkg/pgconv"
	"seckill-voucher/internal/usecase/queries"
)

type VoucherOrderViewQueries interface {
	GetVoucherOrderByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.VoucherOrders, error)
	VoucherOrderExists(ctx context.Context, db sqlc.DBTX, arg sqlc.VoucherOrderExistsParams) (bool, error)
}

type VoucherOrderReadStore struct {
	queries VoucherOrderViewQueries
	db      sqlc.DBTX
}

func NewVoucherOrderReadStore(queries VoucherOrderViewQueries, db sqlc.DBTX) *VoucherOrderReadStore {
	return &VoucherOrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherOrderReadStore) FindByID(ctx context.Context, id int64) (*queries.OrderView, error) {
	row, err := r.queries.GetVoucherOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get voucher order", err)
	}
	return &queries.OrderView{
		ID:        row.ID,
		UserID:    row.UserID,
		VoucherID: row.VoucherID,
		Status:    order.Status(row.Status).String(),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *VoucherOrderReadStore) Exists(ctx context.Context, userID, voucherID int64) (bool, error) {
	ok, err := r.queries.VoucherOrderExists(ctx, r.db, sqlc.VoucherOrderExistsParams{
		UserID:    userID,
		VoucherID: voucherID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check voucher order", err)
	}
	return ok, nil
}
