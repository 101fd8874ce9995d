package bootstrap

import (
	"fairway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.PersistenceModule,
	components.ProviderModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
