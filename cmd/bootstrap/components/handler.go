package components

import (
	"seckill-voucher/internal/handler"
	"seckill-voucher/internal/handler/api"
	"seckill-voucher/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSeckillHandler,
		api.NewVoucherHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(s *api.SeckillHandler, v *api.VoucherHandler, o *api.OrderHandler) handler.Handlers {
	return handler.Handlers{Seckill: s, Voucher: v, Order: o}
}
