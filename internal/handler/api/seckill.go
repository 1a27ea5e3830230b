package api

import (
	"net/http"

	resdto "seckill-voucher/internal/handler/dto/response"
	"seckill-voucher/internal/handler/httperr"
	"seckill-voucher/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SeckillHandler struct {
	cmds commands.SeckillCommands
}

func NewSeckillHandler(cmds commands.SeckillCommands) *SeckillHandler {
	return &SeckillHandler{cmds: cmds}
}

// @Summary Purchase seckill voucher
// @Description Request one unit of a flash-sale voucher. An admitted order is persisted asynchronously; poll the order to see it.
// @Tags voucher-orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/voucher-orders/seckill/{id} [post]
func (h *SeckillHandler) Purchase(c *gin.Context) {
	voucherID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher id", nil)
		return
	}

	result, err := h.cmds.RequestPurchase(c.Request.Context(), voucherID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if rejected := result.Err(); rejected != nil {
		abortWithUseCaseError(c, rejected)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchaseResult(result))
}
