package api

import (
	"net/http"
	"strconv"

	reqdto "seckill-voucher/internal/handler/dto/request"
	resdto "seckill-voucher/internal/handler/dto/response"
	"seckill-voucher/internal/handler/httperr"
	"seckill-voucher/internal/pkg/errs"
	"seckill-voucher/internal/usecase/commands"
	"seckill-voucher/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	cmds commands.VoucherCommands
	q    queries.VoucherQueries
}

func NewVoucherHandler(cmds commands.VoucherCommands, q queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{cmds: cmds, q: q}
}

// @Summary Publish seckill voucher
// @Description Create a flash-sale voucher and open it for admission
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PublishVoucherRequest true "Publish voucher request"
// @Success 201 {object} resdto.VoucherResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/vouchers/seckill [post]
func (h *VoucherHandler) Publish(c *gin.Context) {
	var req reqdto.PublishVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.PublishSeckillVoucher(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromVoucherView(view))
}

// @Summary Get seckill voucher
// @Description Get a flash-sale voucher with its remaining stock
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/vouchers/seckill/{id} [get]
func (h *VoucherHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid voucher id", nil)
		return
	}

	view, err := h.q.GetVoucher(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherView(view))
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.Wrap(err, "parse id")
	}
	if id <= 0 {
		return 0, errs.Newf("id must be positive: %d", id)
	}
	return id, nil
}
