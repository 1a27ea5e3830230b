package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Voucher errors
	ErrVoucherExists = errors.New("voucher already exists")

	// Purchase (admission) errors
	ErrOutOfStock        = errors.New("out of stock")
	ErrDuplicatePurchase = errors.New("duplicate purchase")
	ErrSaleNotStarted    = errors.New("sale not started")
	ErrSaleEnded         = errors.New("sale ended")
	ErrNotOnSale         = errors.New("voucher not on sale")

	// Queue errors
	ErrMalformedIntent = errors.New("malformed purchase intent")

	// Auth errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrCacheOperationFailed = errors.New("cache operation failed")
)
