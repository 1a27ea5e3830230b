package commands

import (
	"context"
	"log/slog"
	"time"

	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/infra"
	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/internal/pkg/errs"
	"seckill-voucher/internal/usecase/shared"
)

// ErrFulfillmentInFlight reports that another fulfillment holds the user's
// lock. The attempt was abandoned without side effects.
var ErrFulfillmentInFlight = errs.New("fulfillment already in flight for user")

var (
	errAlreadyFulfilled = errs.New("order already fulfilled")
	errStockExhausted   = errs.New("authoritative stock exhausted")
)

type FulfillmentCommands interface {
	// Handle persists an admitted intent. It is idempotent: replaying an
	// intent whose order exists is a successful no-op.
	Handle(ctx context.Context, intent order.PurchaseIntent) error
}

type fulfillmentUseCaseImpl struct {
	uow    shared.UnitOfWork
	locker shared.Locker
	lease  time.Duration
	logger *slog.Logger
}

func NewFulfillmentUseCase(uow shared.UnitOfWork, locker shared.Locker, cfg config.SeckillConfig, logger *slog.Logger) FulfillmentCommands {
	return &fulfillmentUseCaseImpl{
		uow:    uow,
		locker: locker,
		lease:  cfg.LockLease,
		logger: logger,
	}
}

func (uc *fulfillmentUseCaseImpl) Handle(ctx context.Context, intent order.PurchaseIntent) error {
	if err := intent.Validate(); err != nil {
		return errs.Mark(err, errs.ErrMalformedIntent)
	}

	lock := uc.locker.NewLock(intent.LockKey())
	acquired, err := lock.TryLock(ctx, uc.lease)
	if err != nil {
		return err
	}
	if !acquired {
		uc.logger.Warn("fulfillment lock contended",
			"order_id", intent.OrderID,
			"user_id", intent.UserID)
		return ErrFulfillmentInFlight
	}
	defer func() {
		released, uerr := lock.Unlock(context.WithoutCancel(ctx))
		switch {
		case uerr != nil:
			uc.logger.Warn("failed to release fulfillment lock", "user_id", intent.UserID, "error", uerr)
		case !released:
			uc.logger.Warn("fulfillment lock lease expired before release", "user_id", intent.UserID)
		}
	}()

	err = uc.fulfil(ctx, intent)
	switch {
	case errs.Is(err, errAlreadyFulfilled):
		uc.logger.Info("order already fulfilled",
			"order_id", intent.OrderID,
			"user_id", intent.UserID,
			"voucher_id", intent.VoucherID)
		return nil
	case errs.Is(err, errStockExhausted):
		uc.logger.Warn("authoritative stock exhausted, dropping admitted intent",
			"order_id", intent.OrderID,
			"user_id", intent.UserID,
			"voucher_id", intent.VoucherID)
		return nil
	case err != nil:
		return errs.Wrapf(err, "fulfil order %d", intent.OrderID)
	}

	uc.logger.Info("order fulfilled",
		"order_id", intent.OrderID,
		"user_id", intent.UserID,
		"voucher_id", intent.VoucherID)
	return nil
}

// fulfil runs with the user's lock held. The two sentinels roll the
// transaction back, undoing any stock decrement.
func (uc *fulfillmentUseCaseImpl) fulfil(ctx context.Context, intent order.PurchaseIntent) error {
	o, err := order.FromIntent(intent)
	if err != nil {
		return errs.Mark(err, errs.ErrMalformedIntent)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Reads().OrderExists(ctx, intent.UserID, intent.VoucherID)
		if err != nil {
			return err
		}
		if exists {
			return errAlreadyFulfilled
		}

		decremented, err := tx.Vouchers().DecrementStock(ctx, tx.DB(), intent.VoucherID)
		if err != nil {
			return err
		}
		if !decremented {
			return errStockExhausted
		}

		if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errAlreadyFulfilled)
			}
			return err
		}
		return nil
	})
}
