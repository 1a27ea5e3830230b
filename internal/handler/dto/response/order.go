package response

import (
	"strconv"
	"time"

	"seckill-voucher/internal/usecase/commands"
	"seckill-voucher/internal/usecase/queries"
)

type PurchaseResponse struct {
	OrderID string `json:"orderId"`
}

func FromPurchaseResult(r *commands.PurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{OrderID: strconv.FormatInt(r.OrderID, 10)}
}

type OrderResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	VoucherID string    `json:"voucherId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromOrderView(o *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:        strconv.FormatInt(o.ID, 10),
		UserID:    strconv.FormatInt(o.UserID, 10),
		VoucherID: strconv.FormatInt(o.VoucherID, 10),
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
