package order

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrMalformedIntent = errors.New("malformed purchase intent")

// Queue entry field names. The admission script writes the same names.
const (
	FieldOrderID   = "orderId"
	FieldUserID    = "userId"
	FieldVoucherID = "voucherId"
)

// PurchaseIntent is an admitted purchase waiting to be persisted.
type PurchaseIntent struct {
	OrderID   int64
	UserID    int64
	VoucherID int64
}

func (in PurchaseIntent) Validate() error {
	if in.OrderID <= 0 || in.UserID <= 0 || in.VoucherID <= 0 {
		return ErrMalformedIntent
	}
	return nil
}

// LockKey names the per-user lock serializing this user's fulfilments.
func (in PurchaseIntent) LockKey() string {
	return "order-lock:" + strconv.FormatInt(in.UserID, 10)
}

func (in PurchaseIntent) Values() map[string]any {
	return map[string]any{
		FieldOrderID:   strconv.FormatInt(in.OrderID, 10),
		FieldUserID:    strconv.FormatInt(in.UserID, 10),
		FieldVoucherID: strconv.FormatInt(in.VoucherID, 10),
	}
}

// ParseIntent decodes a stream entry. Values arrive as strings from Redis.
func ParseIntent(values map[string]any) (PurchaseIntent, error) {
	orderID, err := parseField(values, FieldOrderID)
	if err != nil {
		return PurchaseIntent{}, err
	}
	userID, err := parseField(values, FieldUserID)
	if err != nil {
		return PurchaseIntent{}, err
	}
	voucherID, err := parseField(values, FieldVoucherID)
	if err != nil {
		return PurchaseIntent{}, err
	}
	in := PurchaseIntent{OrderID: orderID, UserID: userID, VoucherID: voucherID}
	if err := in.Validate(); err != nil {
		return PurchaseIntent{}, err
	}
	return in, nil
}

func parseField(values map[string]any, field string) (int64, error) {
	raw, ok := values[field]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedIntent, field)
	}
	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %T", ErrMalformedIntent, field, raw)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformedIntent, field, s)
	}
	return v, nil
}
