package order

import (
	"errors"
	"time"
)

var ErrInvalidOrder = errors.New("invalid voucher order")

type Status int16

const (
	StatusUnpaid    Status = 1
	StatusPaid      Status = 2
	StatusConsumed  Status = 3
	StatusCancelled Status = 4
	StatusRefunding Status = 5
	StatusRefunded  Status = 6
)

func (s Status) String() string {
	switch s {
	case StatusUnpaid:
		return "unpaid"
	case StatusPaid:
		return "paid"
	case StatusConsumed:
		return "consumed"
	case StatusCancelled:
		return "cancelled"
	case StatusRefunding:
		return "refunding"
	case StatusRefunded:
		return "refunded"
	default:
		return "unknown"
	}
}

// VoucherOrder is a persisted purchase. At most one exists per (user, voucher).
type VoucherOrder struct {
	id        int64
	userID    int64
	voucherID int64
	status    Status
	createdAt time.Time
}

// FromIntent builds the order a fulfilled intent becomes.
func FromIntent(in PurchaseIntent) (*VoucherOrder, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &VoucherOrder{
		id:        in.OrderID,
		userID:    in.UserID,
		voucherID: in.VoucherID,
		status:    StatusUnpaid,
	}, nil
}

func Rehydrate(id, userID, voucherID int64, status Status, createdAt time.Time) *VoucherOrder {
	return &VoucherOrder{id: id, userID: userID, voucherID: voucherID, status: status, createdAt: createdAt}
}

func (o *VoucherOrder) ID() int64            { return o.id }
func (o *VoucherOrder) UserID() int64        { return o.userID }
func (o *VoucherOrder) VoucherID() int64     { return o.voucherID }
func (o *VoucherOrder) Status() Status       { return o.status }
func (o *VoucherOrder) CreatedAt() time.Time { return o.createdAt }
