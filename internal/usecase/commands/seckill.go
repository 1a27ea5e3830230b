package commands

import (
	"context"
	"log/slog"

	"seckill-voucher/internal/domain/admission"
	"seckill-voucher/internal/domain/order"
	"seckill-voucher/internal/pkg/clock"
	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/internal/pkg/errs"
	"seckill-voucher/internal/usecase/shared"
)

type PurchaseResult struct {
	Status  admission.Result
	OrderID int64 // set only when Status is admission.Admitted
}

// Err maps a rejected admission onto the sentinel handlers translate to HTTP.
func (r *PurchaseResult) Err() error {
	switch r.Status {
	case admission.Admitted:
		return nil
	case admission.OutOfStock:
		return errs.ErrOutOfStock
	case admission.Duplicate:
		return errs.ErrDuplicatePurchase
	case admission.NotStarted:
		return errs.ErrSaleNotStarted
	case admission.Ended:
		return errs.ErrSaleEnded
	default:
		return errs.ErrNotOnSale
	}
}

type SeckillCommands interface {
	// RequestPurchase admits or rejects the caller's purchase without touching
	// the relational store. An admitted order id is not yet persisted.
	RequestPurchase(ctx context.Context, voucherID int64) (*PurchaseResult, error)
}

type seckillUseCaseImpl struct {
	admission AdmissionController
	ids       shared.IDGenerator
	clock     clock.Clock
	prefix    string
	logger    *slog.Logger
}

func NewSeckillUseCase(
	admission AdmissionController,
	ids shared.IDGenerator,
	clk clock.Clock,
	cfg config.SeckillConfig,
	logger *slog.Logger,
) SeckillCommands {
	return &seckillUseCaseImpl{
		admission: admission,
		ids:       ids,
		clock:     clk,
		prefix:    cfg.OrderIDPrefix,
		logger:    logger,
	}
}

func (uc *seckillUseCaseImpl) RequestPurchase(ctx context.Context, voucherID int64) (*PurchaseResult, error) {
	actor, ok := shared.ActorFrom(ctx)
	if !ok {
		return nil, errs.ErrUnauthenticated
	}
	if voucherID <= 0 {
		return nil, errs.Mark(errs.Newf("invalid voucher id %d", voucherID), errs.ErrDomainValidation)
	}

	orderID, err := uc.ids.NextID(ctx, uc.prefix)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCacheOperationFailed)
	}

	intent := order.PurchaseIntent{OrderID: orderID, UserID: actor.UserID, VoucherID: voucherID}
	result, err := uc.admission.TryAdmit(ctx, intent, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCacheOperationFailed)
	}

	if !result.Admitted() {
		uc.logger.Debug("purchase rejected",
			"voucher_id", voucherID,
			"user_id", actor.UserID,
			"result", result.String())
		return &PurchaseResult{Status: result}, nil
	}

	uc.logger.Info("purchase admitted",
		"voucher_id", voucherID,
		"user_id", actor.UserID,
		"order_id", orderID)
	return &PurchaseResult{Status: result, OrderID: orderID}, nil
}
