//go:build unit

package stream

import (
	"context"

	"seckill-voucher/internal/infra"

	"github.com/redis/go-redis/v9"
)

// Pending reports how many delivered entries still await acknowledgement.
func (q *Queue) Pending(ctx context.Context) (int64, error) {
	res, err := q.client.XPending(ctx, q.stream, q.group).Result()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read pending summary", err, infra.KindCacheFailure)
	}
	return res.Count, nil
}

// Append enqueues values outside the admission script.
func (q *Queue) Append(ctx context.Context, values map[string]any) (string, error) {
	id, err := q.client.XAdd(ctx, &redis.XAddArgs{Stream: q.stream, Values: values}).Result()
	if err != nil {
		return "", infra.WrapRepoErr("failed to append to order stream", err, infra.KindCacheFailure)
	}
	return id, nil
}
