//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"seckill-voucher/internal/domain/user"
	"seckill-voucher/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService(secret, time.Hour)

	token, err := svc.GenerateToken(42, user.RoleCustomer)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "customer", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	svc := jwt.NewService(secret, time.Hour)

	expired, err := jwt.NewService(secret, -time.Minute).GenerateToken(42, user.RoleCustomer)
	require.NoError(t, err)

	foreign, err := jwt.NewService("another-secret", time.Hour).GenerateToken(42, user.RoleCustomer)
	require.NoError(t, err)

	zeroUser, err := svc.GenerateToken(0, user.RoleCustomer)
	require.NoError(t, err)

	noneAlg, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{
		UserID: 42,
		Role:   "admin",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"expired", expired, jwt.ErrExpiredToken},
		{"wrong secret", foreign, jwt.ErrInvalidToken},
		{"non-positive user id", zeroUser, jwt.ErrInvalidToken},
		{"unsigned token", noneAlg, jwt.ErrInvalidToken},
		{"garbage", "not-a-jwt", jwt.ErrInvalidToken},
		{"empty", "", jwt.ErrInvalidToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tc.token)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, claims)
		})
	}
}
