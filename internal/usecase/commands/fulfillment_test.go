//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/infra"
	sqlc "seckill-voucher/internal/infra/sqlc/generated"
	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/internal/pkg/errs"
	"seckill-voucher/internal/usecase/commands"
	"seckill-voucher/internal/usecase/shared"
	"seckill-voucher/tests/common/builder"
	sharedmock "seckill-voucher/tests/mock/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fulfillmentMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	vouchers *sharedmock.MockVoucherRepository
	orders   *sharedmock.MockVoucherOrderRepository
	locker   *sharedmock.MockLocker
	lock     *sharedmock.MockLock
	db       sqlc.DBTX
}

func newFulfillmentMocks(t *testing.T) *fulfillmentMocks {
	ctrl := gomock.NewController(t)
	m := &fulfillmentMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		vouchers: sharedmock.NewMockVoucherRepository(ctrl),
		orders:   sharedmock.NewMockVoucherOrderRepository(ctrl),
		locker:   sharedmock.NewMockLocker(ctrl),
		lock:     sharedmock.NewMockLock(ctrl),
		db:       &mockDBTX{},
	}
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Vouchers().Return(m.vouchers).AnyTimes()
	m.tx.EXPECT().Orders().Return(m.orders).AnyTimes()
	m.tx.EXPECT().DB().Return(m.db).AnyTimes()
	return m
}

// expectWithin runs the transaction body against the mocked Tx and returns
// whatever it returns, as the real unit of work would after rollback or commit.
func (m *fulfillmentMocks) expectWithin() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

func (m *fulfillmentMocks) expectLock(in order.PurchaseIntent, lease time.Duration) {
	m.locker.EXPECT().NewLock(in.LockKey()).Return(m.lock)
	m.lock.EXPECT().TryLock(gomock.Any(), lease).Return(true, nil)
	m.lock.EXPECT().Unlock(gomock.Any()).Return(true, nil)
}

func TestFulfillment_Handle(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig().Seckill
	in := builder.NewIntentBuilder().Build()

	t.Run("success: stock decremented and order inserted", func(t *testing.T) {
		m := newFulfillmentMocks(t)
		m.expectLock(in, cfg.LockLease)
		m.expectWithin()

		gomock.InOrder(
			m.reads.EXPECT().OrderExists(gomock.Any(), in.UserID, in.VoucherID).Return(false, nil),
			m.vouchers.EXPECT().DecrementStock(gomock.Any(), m.db, in.VoucherID).Return(true, nil),
			m.orders.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, o *order.VoucherOrder) error {
					assert.Equal(t, in.OrderID, o.ID())
					assert.Equal(t, in.UserID, o.UserID())
					assert.Equal(t, in.VoucherID, o.VoucherID())
					assert.Equal(t, order.StatusUnpaid, o.Status())
					return nil
				}),
		)

		uc := commands.NewFulfillmentUseCase(m.uow, m.locker, cfg, discard)
		require.NoError(t, uc.Handle(ctx, in))
	})

	t.Run("replay: existing order is a successful no-op", func(t *testing.T) {
		m := newFulfillmentMocks(t)
		m.expectLock(in, cfg.LockLease)
		m.expectWithin()

		m.reads.EXPECT().OrderExists(gomock.Any(), in.UserID, in.VoucherID).Return(true, nil)
		m.vouchers.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		uc := commands.NewFulfillmentUseCase(m.uow, m.locker, cfg, discard)
		require.NoError(t, uc.Handle(ctx, in))
	})

	t.Run("authoritative stock exhausted: intent dropped without order", func(t *testing.T) {
		m := newFulfillmentMocks(t)
		m.expectLock(in, cfg.LockLease)
		m.expectWithin()

		m.reads.EXPECT().OrderExists(gomock.Any(), in.UserID, in.VoucherID).Return(false, nil)
		m.vouchers.EXPECT().DecrementStock(gomock.Any(), m.db, in.VoucherID).Return(false, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		uc := commands.NewFulfillmentUseCase(m.uow, m.locker, cfg, discard)
		require.NoError(t, uc.Handle(ctx, in))
	})

	t.Run("unique violation on insert is treated as already fulfilled", func(t *testing.T) {
		m := newFulfillmentMocks(t)
		m.expectLock(in, cfg.LockLease)

		var txErr error
		m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				txErr = fn(ctx, m.tx)
				return txErr
			})
		m.reads.EXPECT().OrderExists(gomock.Any(), in.UserID, in.VoucherID).Return(false, nil)
		m.vouchers.EXPECT().DecrementStock(gomock.Any(), m.db, in.VoucherID).Return(true, nil)
		dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		m.orders.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).Return(infra.WrapRepoErr("failed to create voucher order", dup))

		uc := commands.NewFulfillmentUseCase(m.uow, m.locker, cfg, discard)
		require.NoError(t, uc.Handle(ctx, in))
		require.Error(t, txErr, "the transaction must roll back the decrement")
	})

	t.Run("database failure is returned so the entry stays pending", func(t *testing.T) {
		m := newFulfillmentMocks(t)
		m.expectLock(in, cfg.LockLease)
		m.expectWithin()

		m.reads.EXPECT().OrderExists(gomock.Any(), in.UserID, in.VoucherID).Return(false, nil)
		m.vouchers.EXPECT().DecrementStock(gomock.Any(), m.db, in.VoucherID).
			Return(false, infra.WrapRepoErr("failed to decrement seckill stock", errors.New("connection reset")))

		uc := commands.NewFulfillmentUseCase(m.uow, m.locker, cfg, discard)
		err := uc.Handle(ctx, in)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("lock contended: abandoned without touching the database", func(t *testing.T) {
		m := newFulfillmentMocks(t)
		m.locker.EXPECT().NewLock(in.LockKey()).Return(m.lock)
		m.lock.EXPECT().TryLock(gomock.Any(), cfg.LockLease).Return(false, nil)
		m.lock.EXPECT().Unlock(gomock.Any()).Times(0)
		m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Times(0)

		uc := commands.NewFulfillmentUseCase(m.uow, m.locker, cfg, discard)
		err := uc.Handle(ctx, in)
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrFulfillmentInFlight))
	})

	t.Run("lock error is returned", func(t *testing.T) {
		m := newFulfillmentMocks(t)
		m.locker.EXPECT().NewLock(in.LockKey()).Return(m.lock)
		m.lock.EXPECT().TryLock(gomock.Any(), cfg.LockLease).Return(false, errors.New("redis down"))
		m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Times(0)

		uc := commands.NewFulfillmentUseCase(m.uow, m.locker, cfg, discard)
		require.Error(t, uc.Handle(ctx, in))
	})

	t.Run("lock is released even when fulfillment fails", func(t *testing.T) {
		m := newFulfillmentMocks(t)
		m.expectLock(in, cfg.LockLease)
		m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(errors.New("begin failed"))

		uc := commands.NewFulfillmentUseCase(m.uow, m.locker, cfg, discard)
		require.Error(t, uc.Handle(ctx, in))
	})

	t.Run("expired lease on release is only logged", func(t *testing.T) {
		m := newFulfillmentMocks(t)
		m.locker.EXPECT().NewLock(in.LockKey()).Return(m.lock)
		m.lock.EXPECT().TryLock(gomock.Any(), cfg.LockLease).Return(true, nil)
		m.lock.EXPECT().Unlock(gomock.Any()).Return(false, nil)
		m.expectWithin()
		m.reads.EXPECT().OrderExists(gomock.Any(), in.UserID, in.VoucherID).Return(true, nil)

		uc := commands.NewFulfillmentUseCase(m.uow, m.locker, cfg, discard)
		require.NoError(t, uc.Handle(ctx, in))
	})

	t.Run("malformed intent is rejected before locking", func(t *testing.T) {
		m := newFulfillmentMocks(t)
		m.locker.EXPECT().NewLock(gomock.Any()).Times(0)

		uc := commands.NewFulfillmentUseCase(m.uow, m.locker, cfg, discard)
		err := uc.Handle(ctx, builder.NewIntentBuilder().WithUserID(0).Build())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrMalformedIntent))
	})
}
