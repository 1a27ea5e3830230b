package shared

import (
	"context"

	"seckill-voucher/internal/domain/user"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID int64
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom returns the caller attached by the auth middleware.
func ActorFrom(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	if !ok || a.UserID <= 0 {
		return Actor{}, false
	}
	return a, true
}
