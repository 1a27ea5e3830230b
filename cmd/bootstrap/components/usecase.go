package components

import (
	"log/slog"

	"seckill-voucher/internal/pkg/clock"
	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/internal/usecase"
	"seckill-voucher/internal/usecase/commands"
	"seckill-voucher/internal/usecase/queries"
	"seckill-voucher/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		newSeckillCommands,
		commands.NewVoucherUseCase,
		newFulfillmentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVoucherQueries,
		queries.NewOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newSeckillCommands(adm commands.AdmissionController, ids shared.IDGenerator, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.SeckillCommands {
	return commands.NewSeckillUseCase(adm, ids, clk, cfg.Seckill, logger)
}

func newFulfillmentCommands(uow shared.UnitOfWork, locker shared.Locker, cfg config.Config, logger *slog.Logger) commands.FulfillmentCommands {
	return commands.NewFulfillmentUseCase(uow, locker, cfg.Seckill, logger)
}
