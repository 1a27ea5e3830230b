package lock

import (
	"context"
	_ "embed"
	"time"

	"seckill-voucher/internal/infra"
	"seckill-voucher/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:embed unlock.lua
var unlockSource string

var unlockScript = redis.NewScript(unlockSource)

type RedisLocker struct {
	client redis.UniversalClient
}

func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client}
}

// NewLock returns an unacquired lock on name. The key is name verbatim.
func (l *RedisLocker) NewLock(name string) shared.Lock {
	return &RedisLock{
		client: l.client,
		key:    name,
		token:  uuid.NewString(),
	}
}

type RedisLock struct {
	client redis.UniversalClient
	key    string
	token  string
}

// TryLock does not wait: contention is reported as false with a nil error.
func (l *RedisLock) TryLock(ctx context.Context, lease time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key, l.token, lease).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to acquire lock "+l.key, err, infra.KindCacheFailure)
	}
	return ok, nil
}

// Unlock deletes the key only while it still holds this lock's token. It
// reports false when the lease had expired and the key was lost or retaken.
func (l *RedisLock) Unlock(ctx context.Context) (bool, error) {
	n, err := unlockScript.Run(ctx, l.client, []string{l.key}, l.token).Int64()
	if err != nil {
		return false, infra.WrapRepoErr("failed to release lock "+l.key, err, infra.KindCacheFailure)
	}
	return n == 1, nil
}
