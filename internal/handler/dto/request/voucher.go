package request

import (
	"strings"
	"time"

	"seckill-voucher/internal/usecase/commands"
)

type PublishVoucherRequest struct {
	Title     string    `json:"title" binding:"required,max=255"`
	Stock     int       `json:"stock" binding:"required,min=1"`
	BeginTime time.Time `json:"beginTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required,gtfield=BeginTime"`
}

func (r PublishVoucherRequest) ToParams() commands.PublishVoucherParams {
	return commands.PublishVoucherParams{
		Title:   strings.TrimSpace(r.Title),
		Stock:   r.Stock,
		BeginAt: r.BeginTime,
		EndAt:   r.EndTime,
	}
}
