package fx

import "go.uber.org/fx"

// AppModule wires the whole application together.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	RoutesModule,
	ServerModule,
)
