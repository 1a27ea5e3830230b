package response

import (
	"strconv"
	"time"

	"seckill-voucher/internal/usecase/queries"
)

// Ids are strings: 64-bit ids exceed the safe integer range of JSON clients.
type VoucherResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Stock     int       `json:"stock"`
	Available *int64    `json:"available,omitempty"`
	Sold      int64     `json:"sold"`
	BeginTime time.Time `json:"beginTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromVoucherView(v *queries.VoucherView) *VoucherResponse {
	return &VoucherResponse{
		ID:        strconv.FormatInt(v.ID, 10),
		Title:     v.Title,
		Stock:     v.Stock,
		Available: v.Available,
		Sold:      v.Sold,
		BeginTime: v.BeginAt,
		EndTime:   v.EndAt,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
