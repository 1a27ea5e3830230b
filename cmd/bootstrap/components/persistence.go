package components

import (
	"seckill-voucher/internal/infra/readstore"
	sqlc "seckill-voucher/internal/infra/sqlc/generated"
	"seckill-voucher/internal/infra/uow"
	"seckill-voucher/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Voucher
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VoucherViewQueries)),
		),
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReadStore)),
		),
		// Voucher order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VoucherOrderViewQueries)),
		),
		fx.Annotate(
			readstore.NewVoucherOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

// Write repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
