package bootstrap

import (
	"repair-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	RedisModule,
	SessionModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
