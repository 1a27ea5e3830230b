//go:build unit || e2e

package redistest

import (
	"testing"
	"time"

	"seckill-voucher/internal/infra/redisclient"
	"seckill-voucher/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// NewMiniredis starts an in-process Redis and a client configured the way
// production builds one. Both are closed on test cleanup.
func NewMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redisclient.NewClient(config.RedisConfig{
		Addr:         mr.Addr(),
		PoolSize:     32,
		MinIdleConns: 1,
		DialTimeout:  time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: time.Second,
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}
