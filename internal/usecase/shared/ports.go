package shared

import (
	"context"
	"time"
)

type IDGenerator interface {
	NextID(ctx context.Context, prefix string) (int64, error)
}

// Lock is a single acquisition attempt on a named resource. Each value owns
// a private token, so only the holder that acquired it can release it.
type Lock interface {
	TryLock(ctx context.Context, lease time.Duration) (bool, error)
	Unlock(ctx context.Context) (bool, error)
}

type Locker interface {
	NewLock(name string) Lock
}
