package voucher

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidVoucherID = errors.New("voucher id must be positive")
	ErrInvalidTitle     = errors.New("title must be between 1 and 255 characters")
	ErrInvalidStock     = errors.New("stock must be at least 1")
	ErrInvalidWindow    = errors.New("begin time must be before end time")
)

const maxTitleLength = 255

type Title string

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n == 0 || n > maxTitleLength {
		return "", ErrInvalidTitle
	}
	return Title(s), nil
}

func (t Title) String() string {
	return string(t)
}

type Stock int

func NewStock(n int) (Stock, error) {
	if n < 1 {
		return 0, ErrInvalidStock
	}
	return Stock(n), nil
}

func (s Stock) Int() int {
	return int(s)
}

// Window is the closed interval during which purchases are admitted.
type Window struct {
	beginAt time.Time
	endAt   time.Time
}

func NewWindow(beginAt, endAt time.Time) (Window, error) {
	if !beginAt.Before(endAt) {
		return Window{}, ErrInvalidWindow
	}
	return Window{beginAt: beginAt, endAt: endAt}, nil
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.beginAt) && !t.After(w.endAt)
}

func (w Window) BeginAt() time.Time { return w.beginAt }
func (w Window) EndAt() time.Time   { return w.endAt }
