//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"seckill-voucher/internal/domain/user"
	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity service would. This service
// only validates them.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID int64, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CustomerToken(t *testing.T, userID int64) string {
	t.Helper()
	return h.GenerateToken(t, userID, user.RoleCustomer)
}

func (h *JWTHelper) AdminToken(t *testing.T, userID int64) string {
	t.Helper()
	return h.GenerateToken(t, userID, user.RoleAdmin)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID int64, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, -time.Minute)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
