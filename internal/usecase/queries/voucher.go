package queries

import (
	"context"

	"seckill-voucher/internal/infra"
	"seckill-voucher/internal/pkg/errs"
)

var ErrVoucherNotFound = errs.New("voucher not found")

type VoucherQueries interface {
	GetVoucher(ctx context.Context, voucherID int64) (*VoucherView, error)
}

type VoucherReadStore interface {
	FindByID(ctx context.Context, voucherID int64) (*VoucherView, error)
}

type StockMirror interface {
	RemainingStock(ctx context.Context, voucherID int64) (int64, bool, error)
}

type voucherQueriesImpl struct {
	readStore VoucherReadStore
	mirror    StockMirror
}

func NewVoucherQueries(readStore VoucherReadStore, mirror StockMirror) VoucherQueries {
	return &voucherQueriesImpl{
		readStore: readStore,
		mirror:    mirror,
	}
}

func (q *voucherQueriesImpl) GetVoucher(ctx context.Context, voucherID int64) (*VoucherView, error) {
	v, err := q.readStore.FindByID(ctx, voucherID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVoucherNotFound)
		}
		return nil, err
	}

	// mirror errors degrade to the authoritative view only
	if n, ok, err := q.mirror.RemainingStock(ctx, voucherID); err == nil && ok {
		v.Available = &n
	}
	return v, nil
}
