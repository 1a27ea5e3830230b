package bootstrap

import (
	"time"

	"seckill-voucher/internal/pkg/config"
	"seckill-voucher/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessTokenDuration, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, err
	}

	return jwt.NewService(cfg.JWT.Secret, accessTokenDuration), nil
}
