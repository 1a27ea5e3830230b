package api

import (
	"net/http"

	"seckill-voucher/internal/handler/httperr"
	"seckill-voucher/internal/pkg/errs"
	"seckill-voucher/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

var useCaseErrors = []errorMapping{
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
	{errs.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrOutOfStock, http.StatusConflict, "Voucher is sold out"},
	{errs.ErrDuplicatePurchase, http.StatusConflict, "Voucher already purchased"},
	{errs.ErrSaleNotStarted, http.StatusUnprocessableEntity, "Sale has not started"},
	{errs.ErrSaleEnded, http.StatusUnprocessableEntity, "Sale has ended"},
	{errs.ErrNotOnSale, http.StatusNotFound, "Voucher is not on sale"},
	{errs.ErrVoucherExists, http.StatusConflict, "Voucher already exists"},
	{queries.ErrVoucherNotFound, http.StatusNotFound, "Voucher not found"},
	{queries.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{errs.ErrCacheOperationFailed, http.StatusServiceUnavailable, "Service temporarily unavailable"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range useCaseErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
