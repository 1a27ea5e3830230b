package bootstrap

import (
	"seckill-voucher/internal/usecase/commands"

	"go.uber.org/fx"
)

type consumerDeps struct {
	fx.In

	Fulfillment commands.FulfillmentCommands
}
