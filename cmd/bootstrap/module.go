package bootstrap

import (
	"castle-rentals/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	SessionModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
