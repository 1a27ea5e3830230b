package queries

import "time"

// VoucherView represents read-optimized seckill voucher data. Stock is the
// authoritative remaining stock; Available is the admission mirror, which
// runs ahead of Stock while admitted orders wait for fulfillment.
type VoucherView struct {
	ID        int64     `json:"id,string"`
	Title     string    `json:"title"`
	Stock     int       `json:"stock"`
	Available *int64    `json:"available,omitempty"`
	Sold      int64     `json:"sold"`
	BeginAt   time.Time `json:"begin_at"`
	EndAt     time.Time `json:"end_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderView represents a persisted voucher order
type OrderView struct {
	ID        int64     `json:"id,string"`
	UserID    int64     `json:"user_id,string"`
	VoucherID int64     `json:"voucher_id,string"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
