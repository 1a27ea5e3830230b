package user

import "errors"

var (
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidUserID = errors.New("invalid user id")
)

// ID identifies a purchaser. Identities are issued outside this service, so
// the only local rule is positivity.
type ID int64

func NewID(v int64) (ID, error) {
	if v <= 0 {
		return 0, ErrInvalidUserID
	}
	return ID(v), nil
}

func (id ID) Int64() int64 {
	return int64(id)
}
