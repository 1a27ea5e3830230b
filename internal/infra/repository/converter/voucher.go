package converter

import (
	"math"

	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/domain/voucher"
	sqlc "seckill-voucher/internal/infra/sqlc/generated"
	"seckill-voucher/internal/pkg/pgconv"
)

func VoucherToCreateParams(v *voucher.SeckillVoucher) sqlc.CreateSeckillVoucherParams {
	return sqlc.CreateSeckillVoucherParams{
		VoucherID: v.ID(),
		Title:     v.Title().String(),
		Stock:     clampInt32(v.Stock().Int()),
		BeginTime: pgconv.TimeToPgtype(v.BeginAt()),
		EndTime:   pgconv.TimeToPgtype(v.EndAt()),
	}
}

func VoucherFromRow(row sqlc.SeckillVouchers) *voucher.SeckillVoucher {
	return voucher.Rehydrate(
		row.VoucherID,
		row.Title,
		int(row.Stock),
		pgconv.TimeFromPgtype(row.BeginTime),
		pgconv.TimeFromPgtype(row.EndTime),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func OrderToCreateParams(o *order.VoucherOrder) sqlc.CreateVoucherOrderParams {
	return sqlc.CreateVoucherOrderParams{
		ID:        o.ID(),
		UserID:    o.UserID(),
		VoucherID: o.VoucherID(),
		Status:    int16(o.Status()),
	}
}

func clampInt32(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	// #nosec G115 -- bounded above
	return int32(n)
}
