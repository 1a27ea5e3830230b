package commands

import (
	"context"
	"log/slog"
	"time"

	"seckill-voucher/internal/domain/voucher"
	"seckill-voucher/internal/infra"
	"seckill-voucher/internal/pkg/errs"
	"seckill-voucher/internal/usecase/queries"
	"seckill-voucher/internal/usecase/shared"
)

const voucherIDPrefix = "voucher"

type PublishVoucherParams struct {
	Title   string
	Stock   int
	BeginAt time.Time
	EndAt   time.Time
}

type VoucherCommands interface {
	PublishSeckillVoucher(ctx context.Context, params PublishVoucherParams) (*queries.VoucherView, error)
}

type voucherUseCaseImpl struct {
	uow       shared.UnitOfWork
	admission AdmissionController
	ids       shared.IDGenerator
	logger    *slog.Logger
}

func NewVoucherUseCase(uow shared.UnitOfWork, admission AdmissionController, ids shared.IDGenerator, logger *slog.Logger) VoucherCommands {
	return &voucherUseCaseImpl{
		uow:       uow,
		admission: admission,
		ids:       ids,
		logger:    logger,
	}
}

// PublishSeckillVoucher stores the voucher and warms the admission mirror.
// The mirror is written inside the transaction, so a failed warm-up leaves
// no voucher row behind. If the transaction fails after the mirror was
// written, the mirror is dropped again so no voucher is on sale without a row.
func (uc *voucherUseCaseImpl) PublishSeckillVoucher(ctx context.Context, params PublishVoucherParams) (*queries.VoucherView, error) {
	actor, ok := shared.ActorFrom(ctx)
	if !ok {
		return nil, errs.ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	id, err := uc.ids.NextID(ctx, voucherIDPrefix)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCacheOperationFailed)
	}

	v, err := voucher.NewSeckillVoucher(id, params.Title, params.Stock, params.BeginAt, params.EndAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var (
		created *voucher.SeckillVoucher
		warmed  bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, derr := tx.Vouchers().Create(ctx, tx.DB(), v)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrVoucherExists)
			}
			return derr
		}
		// a failed EXEC may still have applied, so any attempt counts
		warmed = true
		if derr = uc.admission.Publish(ctx, row); derr != nil {
			return errs.Mark(derr, errs.ErrCacheOperationFailed)
		}
		created = row
		return nil
	})
	if err != nil {
		if warmed {
			if uerr := uc.admission.Unpublish(context.WithoutCancel(ctx), id); uerr != nil {
				uc.logger.Error("failed to drop mirror of unpublished voucher",
					"voucher_id", id, "error", uerr)
			}
		}
		return nil, err
	}

	uc.logger.Info("seckill voucher published",
		"voucher_id", created.ID(),
		"stock", created.Stock().Int(),
		"begin_at", created.BeginAt(),
		"end_at", created.EndAt())

	available := int64(created.Stock().Int())
	return &queries.VoucherView{
		ID:        created.ID(),
		Title:     created.Title().String(),
		Stock:     created.Stock().Int(),
		Available: &available,
		BeginAt:   created.BeginAt(),
		EndAt:     created.EndAt(),
		CreatedAt: created.CreatedAt(),
		UpdatedAt: created.UpdatedAt(),
	}, nil
}
