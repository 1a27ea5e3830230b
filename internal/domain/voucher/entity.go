package voucher

import (
	"errors"
	"time"
)

var (
	ErrSaleNotStarted = errors.New("sale has not started")
	ErrSaleEnded      = errors.New("sale has ended")
)

// SeckillVoucher is the authoritative record of a flash-sale voucher. Its
// stock only ever moves down after publishing.
type SeckillVoucher struct {
	id        int64
	title     Title
	stock     Stock
	window    Window
	createdAt time.Time
	updatedAt time.Time
}

func NewSeckillVoucher(id int64, title string, stock int, beginAt, endAt time.Time) (*SeckillVoucher, error) {
	if id <= 0 {
		return nil, ErrInvalidVoucherID
	}
	t, err := NewTitle(title)
	if err != nil {
		return nil, err
	}
	s, err := NewStock(stock)
	if err != nil {
		return nil, err
	}
	w, err := NewWindow(beginAt, endAt)
	if err != nil {
		return nil, err
	}
	return &SeckillVoucher{id: id, title: t, stock: s, window: w}, nil
}

// Rehydrate rebuilds a voucher from storage without re-running publish validation.
func Rehydrate(id int64, title string, stock int, beginAt, endAt, createdAt, updatedAt time.Time) *SeckillVoucher {
	return &SeckillVoucher{
		id:        id,
		title:     Title(title),
		stock:     Stock(stock),
		window:    Window{beginAt: beginAt, endAt: endAt},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (v *SeckillVoucher) IsOnSaleAt(t time.Time) bool {
	return v.window.Contains(t)
}

func (v *SeckillVoucher) ValidatePurchaseTime(t time.Time) error {
	switch {
	case t.Before(v.window.beginAt):
		return ErrSaleNotStarted
	case t.After(v.window.endAt):
		return ErrSaleEnded
	}
	return nil
}

func (v *SeckillVoucher) ID() int64            { return v.id }
func (v *SeckillVoucher) Title() Title         { return v.title }
func (v *SeckillVoucher) Stock() Stock         { return v.stock }
func (v *SeckillVoucher) Window() Window       { return v.window }
func (v *SeckillVoucher) BeginAt() time.Time   { return v.window.beginAt }
func (v *SeckillVoucher) EndAt() time.Time     { return v.window.endAt }
func (v *SeckillVoucher) CreatedAt() time.Time { return v.createdAt }
func (v *SeckillVoucher) UpdatedAt() time.Time { return v.updatedAt }
