//go:build unit || e2e

package builder

import (
	"time"

	"seckill-voucher/internal/domain/order"
	domvoucher "seckill-voucher/internal/domain/voucher"
	reqdto "seckill-voucher/internal/handler/dto/request"
	sqlc "seckill-voucher/internal/infra/sqlc/generated"
	"seckill-voucher/internal/usecase/commands"
	"seckill-voucher/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type VoucherBuilder struct {
	ID        int64
	Title     string
	Stock     int
	BeginAt   time.Time
	EndAt     time.Time
	CreatedAt time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &VoucherBuilder{
		ID:        1001,
		Title:     "100 off 500",
		Stock:     100,
		BeginAt:   now.Add(-time.Hour),
		EndAt:     now.Add(time.Hour),
		CreatedAt: now,
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

func (b *VoucherBuilder) WithStock(n int) *VoucherBuilder {
	b.Stock = n
	return b
}

func (b *VoucherBuilder) WithWindow(beginAt, endAt time.Time) *VoucherBuilder {
	b.BeginAt, b.EndAt = beginAt, endAt
	return b
}

// Build methods
func (b *VoucherBuilder) BuildDomain() (*domvoucher.SeckillVoucher, error) {
	return domvoucher.NewSeckillVoucher(b.ID, b.Title, b.Stock, b.BeginAt, b.EndAt)
}

func (b *VoucherBuilder) BuildInfra() sqlc.SeckillVouchers {
	return sqlc.SeckillVouchers{
		VoucherID: b.ID,
		Title:     b.Title,
		Stock:     int32(b.Stock),
		BeginTime: pgtype.Timestamptz{Time: b.BeginAt, Valid: true},
		EndTime:   pgtype.Timestamptz{Time: b.EndAt, Valid: true},
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *VoucherBuilder) BuildPublishRequestDTO() reqdto.PublishVoucherRequest {
	return reqdto.PublishVoucherRequest{
		Title:     b.Title,
		Stock:     b.Stock,
		BeginTime: b.BeginAt,
		EndTime:   b.EndAt,
	}
}

func (b *VoucherBuilder) BuildParams() commands.PublishVoucherParams {
	return commands.PublishVoucherParams{
		Title:   b.Title,
		Stock:   b.Stock,
		BeginAt: b.BeginAt,
		EndAt:   b.EndAt,
	}
}

func (b *VoucherBuilder) BuildViewQuery() *queries.VoucherView {
	return &queries.VoucherView{
		ID:        b.ID,
		Title:     b.Title,
		Stock:     b.Stock,
		BeginAt:   b.BeginAt,
		EndAt:     b.EndAt,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

type IntentBuilder struct {
	intent order.PurchaseIntent
}

func NewIntentBuilder() *IntentBuilder {
	return &IntentBuilder{intent: order.PurchaseIntent{OrderID: 7_000_001, UserID: 42, VoucherID: 1001}}
}

func (b *IntentBuilder) WithUserID(id int64) *IntentBuilder {
	b.intent.UserID = id
	return b
}

func (b *IntentBuilder) Build() order.PurchaseIntent {
	return b.intent
}

func (b *IntentBuilder) BuildInfra() sqlc.VoucherOrders {
	now := time.Now().UTC()
	return sqlc.VoucherOrders{
		ID:        b.intent.OrderID,
		UserID:    b.intent.UserID,
		VoucherID: b.intent.VoucherID,
		Status:    int16(order.StatusUnpaid),
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
}
