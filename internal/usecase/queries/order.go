package queries

import (
	"context"

	"seckill-voucher/internal/infra"
	"seckill-voucher/internal/pkg/errs"
	"seckill-voucher/internal/usecase/shared"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderQueries interface {
	// GetOrder returns a persisted order owned by the caller. Admitted orders
	// not yet fulfilled are reported as not found.
	GetOrder(ctx context.Context, orderID int64) (*OrderView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id int64) (*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, orderID int64) (*OrderView, error) {
	actor, ok := shared.ActorFrom(ctx)
	if !ok {
		return nil, errs.ErrUnauthenticated
	}

	o, err := q.readStore.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}

	// other users' orders are indistinguishable from missing ones
	if o.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrOrderNotFound
	}
	return o, nil
}
