package readstore

import (
	"context"

	"seckill-voucher/internal/infra"
	sqlc "seckill-voucher/internal/infra/sqlc/generated"
	"seckill-voucher/internal/pkg/pgconv"
	"seckill-voucher/internal/usecase/queries"
)

type VoucherViewQueries interface {
	GetSeckillVoucher(ctx context.Context, db sqlc.DBTX, voucherID int64) (sqlc.SeckillVouchers, error)
	CountVoucherOrders(ctx context.Context, db sqlc.DBTX, voucherID int64) (int64, error)
}

type VoucherReadStore struct {
	queries VoucherViewQueries
	db      sqlc.DBTX
}

func NewVoucherReadStore(queries VoucherViewQueries, db sqlc.DBTX) *VoucherReadStore {
	return &VoucherReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherReadStore) FindByID(ctx context.Context, voucherID int64) (*queries.VoucherView, error) {
	row, err := r.queries.GetSeckillVoucher(ctx, r.db, voucherID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get seckill voucher", err)
	}
	sold, err := r.queries.CountVoucherOrders(ctx, r.db, voucherID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count voucher orders", err)
	}
	return &queries.VoucherView{
		ID:        row.VoucherID,
		Title:     row.Title,
		Stock:     int(row.Stock),
		Sold:      sold,
		BeginAt:   pgconv.TimeFromPgtype(row.BeginTime),
		EndAt:     pgconv.TimeFromPgtype(row.EndTime),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
