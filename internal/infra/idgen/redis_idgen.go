package idgen

import (
	"context"
	"log/slog"
	"time"

	"seckill-voucher/internal/infra"
	"seckill-voucher/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
)

const (
	// 2024-10-25T00:00:00Z
	EpochSeconds int64 = 1729814400
	countBits          = 32

	counterTTL = 48 * time.Hour
)

// RedisIDGenerator issues 64-bit ids: seconds since EpochSeconds in the high
// bits, a per-prefix per-day Redis counter in the low 32 bits. More than 2^32
// ids for one prefix in one day overflow into the timestamp bits.
type RedisIDGenerator struct {
	client redis.Cmdable
	clock  clock.Clock
	logger *slog.Logger
}

func NewRedisIDGenerator(client redis.Cmdable, clk clock.Clock, logger *slog.Logger) *RedisIDGenerator {
	return &RedisIDGenerator{client: client, clock: clk, logger: logger}
}

func (g *RedisIDGenerator) NextID(ctx context.Context, prefix string) (int64, error) {
	now := g.clock.Now().UTC()
	timestamp := now.Unix() - EpochSeconds

	key := CounterKey(prefix, now)
	count, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment id counter", err, infra.KindCacheFailure)
	}
	if count == 1 {
		if err := g.client.Expire(ctx, key, counterTTL).Err(); err != nil {
			g.logger.Warn("failed to set id counter ttl", "key", key, "error", err)
		}
	}

	return timestamp<<countBits | count, nil
}

func CounterKey(prefix string, t time.Time) string {
	return "icr:" + prefix + ":" + t.UTC().Format("2006:01:02")
}
