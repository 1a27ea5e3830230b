package components

import (
	"log/slog"

	"seckill-voucher/internal/infra/admission"
	"seckill-voucher/internal/infra/idgen"
	"seckill-voucher/internal/infra/lock"
	"seckill-voucher/internal/pkg/clock"
	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/internal/usecase/commands"
	"seckill-voucher/internal/usecase/queries"
	"seckill-voucher/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			NewIDGenerator,
			fx.As(new(shared.IDGenerator)),
		),
		fx.Annotate(
			lock.NewRedisLocker,
			fx.As(new(shared.Locker)),
		),
		fx.Annotate(
			NewAdmissionController,
			fx.As(new(commands.AdmissionController)),
			fx.As(new(queries.StockMirror)),
		),
	),
)

func NewIDGenerator(client redis.Cmdable, clk clock.Clock, logger *slog.Logger) *idgen.RedisIDGenerator {
	return idgen.NewRedisIDGenerator(client, clk, logger)
}

func NewAdmissionController(client redis.UniversalClient, cfg config.Config) *admission.Controller {
	return admission.NewController(client, cfg.Seckill.Stream)
}
