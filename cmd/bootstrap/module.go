package bootstrap

import (
	"seckill-voucher/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.CacheModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
